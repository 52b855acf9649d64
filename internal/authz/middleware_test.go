package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/upline/internal/constants"
)

type testUser struct {
	role constants.Role
}

func (u *testUser) UserSubject() string      { return "jane@example.com" }
func (u *testUser) UserProvider() string     { return "test" }
func (u *testUser) UserRole() constants.Role { return u.role }

func TestMiddleware(t *testing.T) {
	membersOnly := RuleFunc(func(env map[string]any) (bool, error) {
		role, _ := env["role"].(string)
		return env["authenticated"] == true && role != string(constants.RoleGuest), nil
	})

	handler := Middleware(AccessRule{Prefix: constants.RouteDashboard, Rule: membersOnly})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	type testCase struct {
		Name             string
		Path             string
		User             User
		HTMX             bool
		ExpectedStatus   int
		ExpectedLocation string
	}

	testCases := []testCase{
		{Name: "public", Path: "/about", ExpectedStatus: http.StatusOK},
		{Name: "prefix lookalike", Path: "/dashboards", ExpectedStatus: http.StatusOK},
		{Name: "anonymous", Path: "/dashboard/referrals", ExpectedStatus: http.StatusSeeOther, ExpectedLocation: "/login?next=%2Fdashboard%2Freferrals"},
		{Name: "anonymous htmx", Path: "/dashboard", HTMX: true, ExpectedStatus: http.StatusUnauthorized},
		{Name: "guest", Path: "/dashboard", User: &testUser{role: constants.RoleGuest}, ExpectedStatus: http.StatusForbidden},
		{Name: "member", Path: "/dashboard", User: &testUser{role: constants.RoleMember}, ExpectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
			if tc.User != nil {
				req = req.WithContext(WithContextUser(req.Context(), tc.User))
			}

			if tc.HTMX {
				req.Header.Set("HX-Request", "true")
			}

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected %d, got %d", e, g)
			}

			if tc.ExpectedLocation != "" {
				if e, g := tc.ExpectedLocation, res.Header().Get("Location"); e != g {
					t.Errorf("Location: expected '%s', got '%s'", e, g)
				}
			}

			if tc.HTMX {
				if g := res.Header().Get("HX-Location"); g == "" {
					t.Errorf("HX-Location: expected header to be set")
				}
			}
		})
	}
}
