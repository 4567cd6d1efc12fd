package slug

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/urislug/pkg/logger"
	"github.com/dmitrymomot/urislug/pkg/randomname"
)

// Default option values.
const (
	DefaultSpace     = "-"
	DefaultSeparator = "/"
	DefaultEncoding  = "UTF-8"
)

// MaxAttempts is the number of disambiguated candidates probed after the base slug.
const MaxAttempts = 100

// Option configures slug generation.
type Option func(*config)

// config holds the configuration for a single generation call.
type config struct {
	space      string
	separator  string
	modifier   string
	encoding   string
	multiplier Multiplier
	fallback   func() string
	strict     bool
	log        *slog.Logger
}

// defaultConfig returns the default configuration.
// A fresh value is built per call so options never leak between calls.
func defaultConfig() *config {
	return &config{
		space:      DefaultSpace,
		separator:  DefaultSeparator,
		encoding:   DefaultEncoding,
		multiplier: Numeric(1),
		fallback:   randomname.Token,
		log:        logger.Nop(),
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.space == "" {
		return invalidOption("space must not be empty")
	}
	if c.separator == "" {
		return invalidOption("separator must not be empty")
	}
	if strings.Contains(c.space, "%") {
		return invalidOption("space %q collides with percent-encoding", c.space)
	}
	if strings.Contains(c.separator, "%") {
		return invalidOption("separator %q collides with percent-encoding", c.separator)
	}
	if c.fallback == nil {
		return invalidOption("fallback generator must not be nil")
	}
	return c.multiplier.validate()
}

func invalidOption(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidOptions}, args...)...)
}

// Space sets the string that replaces whitespace and path separators
// inside each name. Default is "-".
func Space(s string) Option {
	return func(c *config) {
		c.space = s
	}
}

// Separator sets the string placed between escaped names. Default is "/".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Modifier appends "{space}({escaped modifier})" to the slug.
// An empty modifier is ignored.
func Modifier(s string) Option {
	return func(c *config) {
		c.modifier = s
	}
}

// WithMultiplier sets how collisions are disambiguated. Default is Numeric(1).
func WithMultiplier(m Multiplier) Option {
	return func(c *config) {
		c.multiplier = m
	}
}

// Encoding sets the IANA charset name names are converted to before escaping.
// Default is "UTF-8".
func Encoding(name string) Option {
	return func(c *config) {
		c.encoding = name
	}
}

// Fallback sets the generator used when no names are supplied.
// Default is randomname.Token.
func Fallback(fn func() string) Option {
	return func(c *config) {
		c.fallback = fn
	}
}

// StrictExhaustion makes Resolve return ErrExhausted instead of the base slug
// when every probe is rejected.
func StrictExhaustion(enabled bool) Option {
	return func(c *config) {
		c.strict = enabled
	}
}

// WithLogger sets a logger for resolver diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
