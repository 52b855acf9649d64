package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

type testUser struct {
	subject string
}

func (u *testUser) UserSubject() string  { return u.subject }
func (u *testUser) UserProvider() string { return "test" }

func TestChain(t *testing.T) {
	anonymous := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return nil, nil
	})

	identified := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		if r.Header.Get("X-Test-User") == "" {
			return nil, nil
		}

		return &testUser{subject: r.Header.Get("X-Test-User")}, nil
	})

	cancel := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		w.WriteHeader(http.StatusTeapot)
		return nil, errors.WithStack(ErrCancel)
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := ContextUser(r.Context())
		if err != nil {
			if !errors.Is(err, ErrUnauthenticated) {
				t.Errorf("unexpected error: %+v", err)
			}

			w.Write([]byte("anonymous"))
			return
		}

		w.Write([]byte(user.UserSubject()))
	})

	type testCase struct {
		Name           string
		Options        []MiddlewareOptionFunc
		User           string
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []testCase{
		{
			Name:           "identified",
			Options:        []MiddlewareOptionFunc{WithAuthenticators(anonymous, identified)},
			User:           "jane",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "jane",
		},
		{
			Name:           "unauthorized",
			Options:        []MiddlewareOptionFunc{WithAuthenticators(anonymous, identified)},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "anonymous",
			Options:        []MiddlewareOptionFunc{WithAuthenticators(identified), WithAnonymous(true)},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "anonymous",
		},
		{
			Name:           "cancel",
			Options:        []MiddlewareOptionFunc{WithAuthenticators(cancel, identified)},
			User:           "jane",
			ExpectedStatus: http.StatusTeapot,
		},
		{
			Name: "rejected",
			Options: []MiddlewareOptionFunc{
				WithAuthenticators(identified),
				WithOnAuthenticated(func(r *http.Request, user User) (*http.Request, error) {
					return nil, errors.New("rejected")
				}),
			},
			User:           "jane",
			ExpectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			handler := Chain(tc.Options...)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.User != "" {
				req.Header.Set("X-Test-User", tc.User)
			}

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected %d, got %d", e, g)
			}

			if tc.ExpectedBody == "" {
				return
			}

			if e, g := tc.ExpectedBody, res.Body.String(); e != g {
				t.Errorf("res.Body: expected '%s', got '%s'", e, g)
			}
		})
	}
}
