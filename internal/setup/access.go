package setup

import (
	"context"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/authz/expr"
	"github.com/bornholm/upline/internal/config"
	"github.com/pkg/errors"
)

func NewAccessRulesFromConfig(ctx context.Context, conf *config.Config) ([]authz.AccessRule, error) {
	rules := make([]authz.AccessRule, 0, len(conf.Auth.Access))

	for idx, r := range conf.Auth.Access {
		rule := expr.NewRule(string(r.Rule))

		if err := rule.Compile(); err != nil {
			return nil, errors.Wrapf(err, "could not compile access rule #%d ('%s')", idx, r.Prefix)
		}

		rules = append(rules, authz.AccessRule{
			Prefix: string(r.Prefix),
			Rule:   rule,
		})
	}

	return rules, nil
}
