package commands

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Command is a parsed player command: the first token is the verb, the rest
// are its objects.
type Command struct {
	Verb    string
	Objects []string
}

// Parse lowercases and trims the hub's tokens. Empty tokens are skipped.
func Parse(tokens []string) Command {
	// Casers keep internal state and must not be shared across goroutines.
	lower := cases.Lower(language.Und)

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(lower.String(tok))
		if tok != "" {
			words = append(words, tok)
		}
	}

	if len(words) == 0 {
		return Command{}
	}
	return Command{Verb: words[0], Objects: words[1:]}
}

// Empty reports whether the command had no usable tokens.
func (c Command) Empty() bool {
	return c.Verb == ""
}

// Is reports whether the command is exactly the given token sequence.
func (c Command) Is(tokens ...string) bool {
	if len(tokens) == 0 || tokens[0] != c.Verb {
		return false
	}
	return slices.Equal(tokens[1:], c.Objects)
}

// Object returns the first object, or "" if there is none.
func (c Command) Object() string {
	if len(c.Objects) == 0 {
		return ""
	}
	return c.Objects[0]
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Verb}, c.Objects...), " ")
}
