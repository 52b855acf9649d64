package oauth2

import (
	"testing"

	"github.com/markbates/goth"
	"github.com/pkg/errors"
)

func TestNewUser(t *testing.T) {
	type testCase struct {
		Name             string
		GothUser         goth.User
		ExpectedNickname string
		ExpectedErr      error
	}

	testCases := []testCase{
		{
			Name:             "preferred username",
			GothUser:         goth.User{UserID: "1", Provider: "openid-connect", Name: "Jane Doe", Email: "jane@example.com", RawData: map[string]any{"preferred_username": "jane"}},
			ExpectedNickname: "jane",
		},
		{
			Name:             "nickname fallback",
			GothUser:         goth.User{UserID: "2", Provider: "github", NickName: "octocat", Email: "octo@example.com"},
			ExpectedNickname: "octocat",
		},
		{
			Name:        "missing email",
			GothUser:    goth.User{UserID: "3", Provider: "github"},
			ExpectedErr: errMissingEmail,
		},
		{
			Name:        "missing provider",
			GothUser:    goth.User{UserID: "4", Email: "john@example.com"},
			ExpectedErr: errMissingProvider,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			user, err := newUser(tc.GothUser)
			if tc.ExpectedErr != nil {
				if !errors.Is(err, tc.ExpectedErr) {
					t.Fatalf("expected error '%v', got '%+v'", tc.ExpectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedNickname, user.Nickname; e != g {
				t.Errorf("user.Nickname: expected '%s', got '%s'", e, g)
			}
		})
	}
}
