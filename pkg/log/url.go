package log

import (
	"log/slog"
	"net/url"
)

// ScrubbedURL returns an attribute holding the given URL with its credentials redacted.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return slog.String(name, rawURL)
	}

	scrubbed := *u
	scrubbed.User = url.UserPassword(u.User.Username(), "xxx")

	return slog.String(name, scrubbed.Redacted())
}
