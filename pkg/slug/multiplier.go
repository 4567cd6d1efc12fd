package slug

import (
	"math"
	"strconv"
	"strings"
)

// Multiplier derives the disambiguator appended to a colliding slug.
// It is either numeric (the attempt number times a step, rendered in decimal)
// or a repeater (a unit string repeated once per attempt).
type Multiplier struct {
	unit string
	step int
	kind multiplierKind
}

type multiplierKind uint8

const (
	numericMultiplier multiplierKind = iota
	repeatMultiplier
)

// Numeric returns a multiplier producing step*i for attempt i.
// Numeric(1) yields "1", "2", "3"...; Numeric(10) yields "10", "20", "30"...
func Numeric(step int) Multiplier {
	return Multiplier{kind: numericMultiplier, step: step}
}

// Repeater returns a multiplier producing unit repeated i times for attempt i.
// Repeater("*") yields "*", "**", "***"...
func Repeater(unit string) Multiplier {
	return Multiplier{kind: repeatMultiplier, unit: unit}
}

// ParseMultiplier turns textual input into a Multiplier: decimal integers
// become Numeric, anything else becomes a Repeater.
func ParseMultiplier(s string) Multiplier {
	if n, err := strconv.Atoi(s); err == nil {
		return Numeric(n)
	}
	return Repeater(s)
}

// IsNumeric reports whether the multiplier renders decimal numbers.
func (m Multiplier) IsNumeric() bool {
	return m.kind == numericMultiplier
}

// Disambiguator returns the suffix for the given attempt (1-based).
func (m Multiplier) Disambiguator(attempt int) string {
	if m.kind == repeatMultiplier {
		return strings.Repeat(m.unit, attempt)
	}
	return strconv.Itoa(m.step * attempt)
}

// String returns the textual form accepted by ParseMultiplier.
func (m Multiplier) String() string {
	if m.kind == repeatMultiplier {
		return m.unit
	}
	return strconv.Itoa(m.step)
}

func (m Multiplier) validate() error {
	switch m.kind {
	case numericMultiplier:
		if m.step <= 0 {
			return invalidOption("multiplier must be a positive integer, got %d", m.step)
		}
		if m.step > math.MaxInt/MaxAttempts {
			return invalidOption("multiplier %d overflows at attempt %d", m.step, MaxAttempts)
		}
	case repeatMultiplier:
		if m.unit == "" {
			return invalidOption("multiplier unit must not be empty")
		}
	}
	return nil
}
