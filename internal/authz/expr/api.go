package expr

import (
	"path"

	"github.com/bornholm/upline/internal/constants"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/conf"
	"github.com/pkg/errors"
)

// WithRuleAPI declares the variables and functions available to access rules.
func WithRuleAPI() expr.Option {
	return func(c *conf.Config) {
		for _, opt := range ruleAPI {
			opt(c)
		}
	}
}

var ruleAPI = []expr.Option{
	expr.Env(withRoles(map[string]any{
		"authenticated": false,
		"role":          "",
		"path":          "",
		"method":        "",
	})),
	expr.Function(
		"glob",
		func(params ...any) (any, error) {
			pattern, _ := params[0].(string)
			name, _ := params[1].(string)

			matched, err := path.Match(pattern, name)
			if err != nil {
				return false, errors.WithStack(err)
			}

			return matched, nil
		},
		new(func(pattern string, name string) bool),
	),
}

func withRoles(env map[string]any) map[string]any {
	env["ROLE_GUEST"] = string(constants.RoleGuest)
	env["ROLE_MEMBER"] = string(constants.RoleMember)
	env["ROLE_ADMIN"] = string(constants.RoleAdmin)

	return env
}
