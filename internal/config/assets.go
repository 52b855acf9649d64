package config

import (
	"fmt"
	"strings"

	"github.com/bornholm/upline/pkg/assets"
	"github.com/bornholm/upline/pkg/assets/local"
	"github.com/bornholm/upline/pkg/assets/s3"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Assets struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultAssetsConfig() Assets {
	return Assets{
		Type: InterpolatedString(fmt.Sprintf("${UPLINE_ASSETS_TYPE:-%s}", local.Type)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"dir": "${UPLINE_ASSETS_DIR:-./public}",
			},
		},
	}
}

func NewAssetsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":      []*yaml.Comment{yaml.HeadComment(" Static assets source")},
		".type": []*yaml.Comment{yaml.HeadComment(" Source type", fmt.Sprintf(" Available: %v", assets.Registered()))},
		".options": []*yaml.Comment{
			yaml.HeadComment(" Source options"),
			getAssetsOptionComment("S3 source", s3.Options{}),
		},
	}
}

func getAssetsOptionComment(message string, opts any) *yaml.Comment {
	rawOpts, err := yaml.Marshal(opts)
	if err != nil {
		panic(errors.WithStack(err))
	}

	comments := []string{message, "options:"}
	for _, line := range strings.Split(strings.TrimRight(string(rawOpts), "\n"), "\n") {
		comments = append(comments, "  "+line)
	}

	return yaml.FootComment(comments...)
}
