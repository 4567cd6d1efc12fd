package slug

// Config is the declarative form of the generation options.
// Fields are tagged for github.com/caarlos0/env so defaults can be
// loaded from the environment with pkg/config.
type Config struct {
	Space      string `env:"SLUG_SPACE" envDefault:"-"`
	Separator  string `env:"SLUG_SEPARATOR" envDefault:"/"`
	Modifier   string `env:"SLUG_MODIFIER"`
	Multiplier string `env:"SLUG_MULTIPLIER" envDefault:"1"`
	Encoding   string `env:"SLUG_ENCODING" envDefault:"UTF-8"`
	Strict     bool   `env:"SLUG_STRICT_EXHAUSTION" envDefault:"false"`
}

// Options converts the config into options. Empty fields keep the package defaults.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 6)
	if c.Space != "" {
		opts = append(opts, Space(c.Space))
	}
	if c.Separator != "" {
		opts = append(opts, Separator(c.Separator))
	}
	if c.Modifier != "" {
		opts = append(opts, Modifier(c.Modifier))
	}
	if c.Multiplier != "" {
		opts = append(opts, WithMultiplier(ParseMultiplier(c.Multiplier)))
	}
	if c.Encoding != "" {
		opts = append(opts, Encoding(c.Encoding))
	}
	if c.Strict {
		opts = append(opts, StrictExhaustion(true))
	}
	return opts
}
