package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestExpandTemplate(t *testing.T) {
	tests := map[string]struct {
		tmpl   string
		data   any
		exp    string
		expErr string
	}{
		"room item line": {
			tmpl: msgRoomItem,
			data: ItemRef{ID: "12", Name: "i-card"},
			exp:  "There is a i-card <sub>12</sub> here.",
		},
		"journey": {
			tmpl: msgJourney,
			data: struct{ Direction string }{"north"},
			exp:  "$journey north",
		},
		"sprig function": {
			tmpl: "{{ .Name | upper }}",
			data: ItemRef{Name: "crown"},
			exp:  "CROWN",
		},
		"bad template": {
			tmpl:   "{{ .Name",
			data:   ItemRef{},
			expErr: "parsing template",
		},
		"missing field": {
			tmpl:   "{{ .Nope }}",
			data:   ItemRef{},
			expErr: "executing template",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ExpandTemplate(tt.tmpl, tt.data)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", got, tt.exp)
		})
	}
}
