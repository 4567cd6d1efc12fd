package randomname

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Words returns a memorable name built from the pattern in opts, for example
// "brave otter" or "calm teal heron 4829". Nil options use the defaults.
func Words(opts *Options) string {
	o := opts.merge(defaultOptions())

	parts := make([]string, 0, len(o.Pattern)+1)
	for _, wt := range o.Pattern {
		words := getWords(wt, o.Words)
		parts = append(parts, words[rand.IntN(len(words))])
	}

	switch o.Suffix {
	case Hex6:
		parts = append(parts, fmt.Sprintf("%06x", rand.IntN(1<<24)))
	case Numeric4:
		parts = append(parts, fmt.Sprintf("%04d", rand.IntN(10000)))
	}

	return strings.Join(parts, o.Separator)
}

// Simple returns an "adjective noun" name. Its signature matches the
// fallback generator expected by slug.Fallback.
func Simple() string {
	return Words(nil)
}
