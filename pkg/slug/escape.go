package slug

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// unreserved lists every byte that passes through escaping untouched.
// Space and '/' are kept here and substituted after escaping.
const unreserved = " abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_.-!~*'()/"

const upperhex = "0123456789ABCDEF"

var unreservedTable = func() (t [256]bool) {
	for i := range len(unreserved) {
		t[unreserved[i]] = true
	}
	return t
}()

// encodings caches resolved target encodings by name.
var encodings sync.Map

// Escape percent-encodes every run of characters outside the unreserved set
// using the bytes of the configured encoding, then replaces literal spaces
// and slashes with the configured space string.
//
// Only the Space and Encoding options are consulted.
//
//	slug.Escape("Träd, Gräs")                       // "Tr%C3%A4d%2C-Gr%C3%A4s"
//	slug.Escape("Träd", slug.Encoding("ISO-8859-1")) // "Tr%E4d"
func Escape(s string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}
	enc, err := lookupEncoding(cfg.encoding)
	if err != nil {
		return "", err
	}
	return escape(s, cfg.space, enc)
}

func escape(s, space string, enc encoding.Encoding) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: input is not valid UTF-8", ErrEncoding)
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if unreservedTable[s[i]] {
			b.WriteByte(s[i])
			i++
			continue
		}

		// Unreserved bytes are ASCII, so run boundaries are always rune boundaries.
		j := i + 1
		for j < len(s) && !unreservedTable[s[j]] {
			j++
		}

		raw, err := enc.NewEncoder().String(s[i:j])
		if err != nil {
			return "", errors.Join(ErrEncoding, fmt.Errorf("encode %q: %w", s[i:j], err))
		}
		for k := range len(raw) {
			b.WriteByte('%')
			b.WriteByte(upperhex[raw[k]>>4])
			b.WriteByte(upperhex[raw[k]&0x0F])
		}
		i = j
	}

	// Percent escapes never contain ' ' or '/', so this pass cannot touch them.
	return strings.NewReplacer(" ", space, "/", space).Replace(b.String()), nil
}

// lookupEncoding resolves an IANA charset name. Only encodings that keep the
// unreserved ASCII characters byte-identical are accepted.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if cached, ok := encodings.Load(name); ok {
		return cached.(encoding.Encoding), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidOptions, ErrUnknownEncoding, name)
	}

	probe, err := enc.NewEncoder().String(unreserved)
	if err != nil || probe != unreserved {
		return nil, invalidOption("encoding %q is not ASCII compatible", name)
	}

	encodings.Store(name, enc)
	return enc, nil
}
