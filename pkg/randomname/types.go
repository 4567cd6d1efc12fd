package randomname

// WordType represents the type of word in a name pattern.
type WordType int

// Word types available for name generation.
const (
	Adjective WordType = iota
	Noun
	Color
)

// SuffixType represents the type of suffix appended to generated names.
type SuffixType int

// Suffix types for collision avoidance.
const (
	NoSuffix SuffixType = iota
	Hex6                // 6-character hexadecimal (e.g., a3f21b)
	Numeric4            // 4-digit number (e.g., 4829)
)

// Options configures word-based name generation.
type Options struct {
	// Pattern defines the word types to use in order.
	// Default: [Adjective, Noun]
	Pattern []WordType

	// Separator between words.
	// Default: " " so the name reads naturally before it is escaped into a slug.
	Separator string

	// Suffix type for collision avoidance.
	// Default: NoSuffix
	Suffix SuffixType

	// Words replaces the built-in dictionary for the given word types.
	Words map[WordType][]string
}

func defaultOptions() *Options {
	return &Options{
		Pattern:   []WordType{Adjective, Noun},
		Separator: " ",
		Suffix:    NoSuffix,
	}
}

// merge fills unset fields from defaults.
func (o *Options) merge(defaults *Options) *Options {
	if o == nil {
		return defaults
	}

	result := *o
	if len(result.Pattern) == 0 {
		result.Pattern = defaults.Pattern
	}
	if result.Separator == "" {
		result.Separator = defaults.Separator
	}
	return &result
}
