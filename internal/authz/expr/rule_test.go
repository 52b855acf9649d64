package expr

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRule(t *testing.T) {
	type testCase struct {
		Script     string
		Env        map[string]any
		Expected   bool
		ShouldFail bool
	}

	testCases := []testCase{
		{
			Script:   `authenticated && role in ["member", "admin"]`,
			Env:      map[string]any{"authenticated": true, "role": "member", "path": "/dashboard", "method": "GET"},
			Expected: true,
		},
		{
			Script:   `authenticated && role in ["member", "admin"]`,
			Env:      map[string]any{"authenticated": false, "role": "guest", "path": "/dashboard", "method": "GET"},
			Expected: false,
		},
		{
			Script:   `role == ROLE_ADMIN || !glob("/dashboard/admin*", path)`,
			Env:      map[string]any{"authenticated": true, "role": "member", "path": "/dashboard/admin", "method": "GET"},
			Expected: false,
		},
		{
			Script:   `role == ROLE_ADMIN || !glob("/dashboard/admin*", path)`,
			Env:      map[string]any{"authenticated": true, "role": "admin", "path": "/dashboard/admin", "method": "GET"},
			Expected: true,
		},
		{
			Script:     `role ==`,
			Env:        map[string]any{},
			ShouldFail: true,
		},
		{
			Script:     `"not a boolean"`,
			Env:        map[string]any{},
			ShouldFail: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Script, func(t *testing.T) {
			rule := NewRule(tc.Script)

			allowed, err := rule.Exec(tc.Env)
			if tc.ShouldFail {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, allowed; e != g {
				t.Errorf("allowed: expected %v, got %v", e, g)
			}
		})
	}
}
