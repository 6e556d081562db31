package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"disabled":      {text: "one two three", width: 0, exp: "one two three"},
		"negative":      {text: "one two three", width: -1, exp: "one two three"},
		"fits":          {text: "one two three", width: 80, exp: "one two three"},
		"breaks words":  {text: "one two three", width: 7, exp: "one two\nthree"},
		"keeps newline": {text: "one\ntwo", width: 80, exp: "one\ntwo"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "wrapped", Wrap(tt.text, tt.width), tt.exp)
		})
	}
}
