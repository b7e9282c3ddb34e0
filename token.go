package stripxss

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TagToken is one tag found by [Scan].
type TagToken struct {
	// Raw is the tag text exactly as it appears in the document, so
	// doc[Start:End] == Raw.
	Raw        string
	Start, End int

	// Name is the lower-cased tag name, without '<', '</' and anything after
	// the first whitespace, '/' or '>'.
	Name string

	// DataAtom is the atom for Name, or zero if Name is not a known HTML
	// element or attribute name.
	DataAtom atom.Atom

	// Closing is true for tags starting with "</".
	Closing bool

	lower, decoded, compact string
}

func newTagToken(doc string, start, end int) TagToken {
	raw := doc[start:end]
	t := TagToken{
		Raw:     raw,
		Start:   start,
		End:     end,
		Closing: strings.HasPrefix(raw, "</"),
		lower:   strings.ToLower(raw),
	}

	i, _ := nameStart(raw, 0)
	j := i
	for j < len(raw) && !isSpace(raw[j]) && raw[j] != '/' && raw[j] != '>' {
		j++
	}

	name := strings.ToLower(raw[i:j])
	if a := atom.Lookup([]byte(name)); a != 0 {
		t.DataAtom, t.Name = a, a.String()
	} else {
		t.DataAtom, t.Name = 0, name
	}
	return t
}

// Lower returns Raw lower-cased. Attack signatures match against it.
func (self *TagToken) Lower() string {
	if self.lower == "" && self.Raw != "" {
		self.lower = strings.ToLower(self.Raw)
	}
	return self.lower
}

// Decoded returns Raw with character references decoded, as browsers do for
// attribute values, and lower-cased.
func (self *TagToken) Decoded() string {
	if self.decoded == "" {
		self.decoded = strings.ToLower(html.UnescapeString(self.Raw))
	}
	return self.decoded
}

// Compact returns Decoded without whitespace and control characters, which
// browsers skip inside URL schemes, like "jav&#x09;ascript:".
func (self *TagToken) Compact() string {
	if self.compact == "" {
		self.compact = strings.Map(func(r rune) rune {
			if r <= ' ' || r == 0x7f {
				return -1
			}
			return r
		}, self.Decoded())
	}
	return self.compact
}

// Len returns the length of the tag in bytes.
func (self *TagToken) Len() int { return self.End - self.Start }

// TagName extracts the tag name from raw tag text: one leading "<" or "</" is
// stripped, then a trailing "/>" or ">", and the first whitespace separated
// field is returned lower-cased.
//
// For tokens returned by [Scan] prefer [TagToken.Name], which also stops at
// '/'.
func TagName(raw string) string {
	s := strings.TrimPrefix(raw, "<")
	s = strings.TrimPrefix(s, "/")
	if before, ok := strings.CutSuffix(s, "/>"); ok {
		s = before
	} else {
		s = strings.TrimSuffix(s, ">")
	}

	if f := strings.Fields(s); len(f) > 0 {
		return strings.ToLower(f[0])
	}
	return ""
}
