package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Slug records a generated slug under the key "slug".
func Slug(s string) slog.Attr {
	return slog.String("slug", s)
}

// Base records the undisambiguated slug under the key "base".
func Base(s string) slog.Attr {
	return slog.String("base", s)
}

// Attempt records a probe number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Names records the input names under the key "names".
func Names(names []string) slog.Attr {
	return slog.Any("names", names)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
