package menu

type TransitionFunc func(event EventType, from State, to State)

type NavigateFunc func(path string)

type Options struct {
	OnTransition TransitionFunc
	OnNavigate   NavigateFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		OnTransition: func(event EventType, from, to State) {},
		OnNavigate:   func(path string) {},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithOnTransition registers a hook called after every dispatched event,
// including the ones leaving the state unchanged.
func WithOnTransition(fn TransitionFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnTransition = fn
	}
}

// WithOnNavigate registers a hook called after every navigation triggered by the menu.
func WithOnNavigate(fn NavigateFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnNavigate = fn
	}
}
