package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/urislug/pkg/slug"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		m        slug.Multiplier
		attempt  int
		expected string
		numeric  bool
	}{
		{"numeric one", slug.Numeric(1), 3, "3", true},
		{"numeric step", slug.Numeric(10), 100, "1000", true},
		{"repeater", slug.Repeater("*"), 3, "***", false},
		{"repeater word", slug.Repeater("ab"), 2, "abab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.m.Disambiguator(tt.attempt))
			assert.Equal(t, tt.numeric, tt.m.IsNumeric())
		})
	}
}

func TestParseMultiplier(t *testing.T) {
	assert.Equal(t, slug.Numeric(5), slug.ParseMultiplier("5"))
	assert.Equal(t, slug.Repeater("*"), slug.ParseMultiplier("*"))
	assert.Equal(t, slug.Repeater("x1"), slug.ParseMultiplier("x1"))
	assert.Equal(t, "7", slug.ParseMultiplier("7").String())
	assert.Equal(t, "~", slug.ParseMultiplier("~").String())
}
