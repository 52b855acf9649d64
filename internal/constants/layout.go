package constants

// WideBreakpoint is the viewport width, in CSS pixels, from which the login button
// is shown and the mobile menu trigger is hidden.
const WideBreakpoint = 768

const (
	// ClassWideOnly hides an element below WideBreakpoint.
	ClassWideOnly = "wide-only"
	// ClassNarrowOnly hides an element at or above WideBreakpoint.
	ClassNarrowOnly = "narrow-only"
)
