package constants

const (
	SiteName    = "Upline"
	SiteTagline = "Grow your network, share the rewards."

	LabelHome     = "Home"
	LabelAbout    = "About"
	LabelPlan     = "Income plan"
	LabelContact  = "Contact"
	LabelLogin    = "Login"
	LabelLogout   = "Logout"
	LabelRegister = "Join"

	// Accessible names of the mobile menu controls. They must stay distinct.
	AriaOpenMobileMenu  = "Open mobile menu"
	AriaCloseMobileMenu = "Close mobile menu"
	AriaMainNavigation  = "Main navigation"

	TitleHome      = "Welcome"
	TitleAbout     = "About us"
	TitlePlan      = "Income distribution plan"
	TitleContact   = "Contact us"
	TitleLogin     = "Login"
	TitleRegister  = "Create your account"
	TitleDashboard = "Dashboard"
	TitleReferrals = "My referrals"
	TitleNotFound  = "Page not found"
)
