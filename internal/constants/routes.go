package constants

const (
	// RouteHome is the public landing page.
	RouteHome = "/"
	// RouteAbout presents the organization.
	RouteAbout = "/about"
	// RoutePlan presents the income distribution plan.
	RoutePlan = "/plan"
	// RouteContact exposes the contact form.
	RouteContact = "/contact"
	// RouteLogin is the login page and the primary call-to-action of the navigation.
	RouteLogin = "/login"
	// RouteLogout clears the member session.
	RouteLogout = "/logout"
	// RouteRegister lets a visitor join with a sponsor referral code.
	RouteRegister = "/register"
	// RouteDashboard is the member area landing page.
	RouteDashboard = "/dashboard"
	// RouteReferrals lists the direct referrals of the authenticated member.
	RouteReferrals = "/dashboard/referrals"

	// RouteMenu is the prefix of the mobile menu fragment endpoints.
	RouteMenu = "/ui/menu"
	// RouteAssets is the prefix under which static assets are served.
	RouteAssets = "/assets/"
	// RouteMetrics exposes prometheus metrics.
	RouteMetrics = "/metrics"
	// RouteAuth is the prefix of the OAuth2 login endpoints.
	RouteAuth = "/auth"
	// RouteAdmin is the prefix of the administration area.
	RouteAdmin = "/admin"
	// RouteDebug is the prefix of the runtime profiling endpoints.
	RouteDebug = "/debug/pprof"
)

// ReferralQueryParam is the query parameter carrying a sponsor referral code on the registration page.
const ReferralQueryParam = "ref"

// NextQueryParam carries the page to return to after login.
const NextQueryParam = "next"

// Routes returns every page route served by the application shell.
func Routes() []string {
	return []string{
		RouteHome,
		RouteAbout,
		RoutePlan,
		RouteContact,
		RouteLogin,
		RouteLogout,
		RouteRegister,
		RouteDashboard,
		RouteReferrals,
	}
}

// IsKnownRoute reports whether the given path is a page route of the application shell.
func IsKnownRoute(path string) bool {
	for _, r := range Routes() {
		if r == path {
			return true
		}
	}

	return false
}
