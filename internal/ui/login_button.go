package ui

import "github.com/bornholm/upline/internal/constants"

// LoginButton is the wide viewport link to the login destination.
// It holds no state; activating it performs a client-side route transition.
type LoginButton struct {
	Path  string
	Label string
	Class string
}

func NewLoginButton(dest Destination) LoginButton {
	return LoginButton{
		Path:  dest.Path,
		Label: dest.Label,
		Class: constants.ClassWideOnly,
	}
}
