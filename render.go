package stripxss

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Replacement defines what removed tags are replaced with.
type Replacement int

const (
	// Symbol replaces every removed tag by a placeholder character.
	Symbol Replacement = iota

	// Entities replaces every removed tag by its own text with HTML special
	// characters escaped, so the tag is shown to users instead of being
	// rendered. Handy for users sharing code examples.
	Entities
)

// DefaultPlaceholder is the placeholder used by Symbol replacement unless
// configured otherwise: "␡".
const DefaultPlaceholder = '␡'

// SafePlaceholder reports whether r may replace removed tags. HTML special
// characters can't: with '<' as the placeholder, removing "<x>" from
// "<x>script>" leaves "<script>".
func SafePlaceholder(r rune) bool {
	switch r {
	case '<', '>', '&', '"', '\'':
		return false
	}
	return true
}

func (self Replacement) String() string {
	switch self {
	case Symbol:
		return "symbol"
	case Entities:
		return "entities"
	}
	return fmt.Sprintf("Replacement(%d)", int(self))
}

// ParseReplacement returns Replacement by its name, as returned by
// [Replacement.String].
func ParseReplacement(s string) (Replacement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "symbol":
		return Symbol, nil
	case "entities":
		return Entities, nil
	}
	return Symbol, fmt.Errorf("unknown replacement %q", s)
}

// render writes doc to w with every removed tag replaced. It returns raw text
// of removed tags in document order.
func (self *Policy) render(doc string, w io.StringWriter) ([]string, error) {
	var removed []string
	var last int

	for c := range self.Classify(doc) {
		if c.Verdict != Removed {
			continue
		}

		t := &c.Token
		if _, err := w.WriteString(doc[last:t.Start]); err != nil {
			return removed, fmt.Errorf(genericErrMsg, err)
		}
		if _, err := w.WriteString(self.replace(t)); err != nil {
			return removed, fmt.Errorf(genericErrMsg, err)
		}
		last = t.End
		removed = append(removed, t.Raw)
	}

	if _, err := w.WriteString(doc[last:]); err != nil {
		return removed, fmt.Errorf(genericErrMsg, err)
	}
	return removed, nil
}

// replace returns replacement of removed tag t. Only the tag itself is
// escaped in Entities mode, never the rest of the document.
func (self *Policy) replace(t *TagToken) string {
	if self.replacement == Entities {
		return html.EscapeString(t.Raw)
	}
	return self.placeholder
}
