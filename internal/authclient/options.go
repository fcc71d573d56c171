package authclient

import "github.com/skratchdot/open-golang/open"

type config struct {
	open func(rawURL string) error
}

// An Option customizes the AuthClient.
type Option func(*config)

// WithBrowserCommand overrides how the browser is opened. Used by tests to
// drive the flow without a real browser.
func WithBrowserCommand(open func(rawURL string) error) Option {
	return func(cfg *config) {
		cfg.open = open
	}
}

func getConfig(options ...Option) *config {
	cfg := &config{
		open: open.Run,
	}
	for _, o := range options {
		o(cfg)
	}
	return cfg
}
