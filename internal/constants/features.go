package constants

// Features toggles optional parts of the application.
type Features struct {
	Registration bool `mapstructure:"registration"`
	OAuth2Login  bool `mapstructure:"oauth2Login"`
	ContactForm  bool `mapstructure:"contactForm"`
	Metrics      bool `mapstructure:"metrics"`
	Profiling    bool `mapstructure:"profiling"`
}

func DefaultFeatures() Features {
	return Features{
		Registration: true,
		OAuth2Login:  false,
		ContactForm:  true,
		Metrics:      true,
		Profiling:    false,
	}
}
