package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain text", text: "bakery", want: "bakery"},
		{name: "percent", text: "100% organic", want: `100\% organic`},
		{name: "underscore", text: "corner_bakery", want: `corner\_bakery`},
		{name: "backslash", text: `back\slash`, want: `back\\slash`},
		{name: "mixed", text: `a%b_c\d`, want: `a\%b\_c\\d`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.text))
		})
	}
}
