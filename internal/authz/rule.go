package authz

import (
	"net/http"
	"strings"
)

type Rule interface {
	Exec(env map[string]any) (bool, error)
}

type RuleFunc func(env map[string]any) (bool, error)

func (fn RuleFunc) Exec(env map[string]any) (bool, error) {
	return fn(env)
}

// AccessRule applies Rule to the requests whose path is Prefix or lies under it.
type AccessRule struct {
	Prefix string
	Rule   Rule
}

func (r AccessRule) Match(path string) bool {
	prefix := strings.TrimSuffix(r.Prefix, "/")
	if prefix == "" {
		return true
	}

	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func NewEnv(r *http.Request) map[string]any {
	_, authenticated := ContextUser(r.Context())

	return map[string]any{
		"authenticated": authenticated,
		"role":          string(ContextRole(r.Context())),
		"path":          r.URL.Path,
		"method":        r.Method,
	}
}
