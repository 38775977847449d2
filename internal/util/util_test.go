package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"Central Perk Coffee", "central-perk-coffee"},
		{"  Leading & trailing  ", "leading-trailing"},
		{"Already-slugged", "already-slugged"},
		{"Multiple   spaces!!", "multiple-spaces"},
		{"UPPER case 42", "upper-case-42"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input), "input: %q", tt.input)
	}
}
