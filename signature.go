package stripxss

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// SignaturesVersion is the version of DefaultSignatures. It changes every time
// a signature is added to or removed from the default set.
const SignaturesVersion = 1

// Matcher reports whether a tag carries a known attack vector.
type Matcher func(t *TagToken) bool

// Signature is a named attack vector. A tag matching any signature is removed,
// even if its name is whitelisted.
type Signature struct {
	Name  string
	Match Matcher
}

// Contains returns a Signature matching tags whose lower-cased text contains
// substr. The text is checked as is and also in its compact form, see
// [TagToken.Compact].
//
// The compact form drops whitespace anywhere in the tag, so substr may also
// match across attribute boundaries or inside harmless text, like
// title="java script:". Such tags are removed even if whitelisted.
func Contains(name, substr string) Signature {
	substr = strings.ToLower(substr)
	return Signature{
		Name: name,
		Match: func(t *TagToken) bool {
			return strings.Contains(t.Lower(), substr) ||
				strings.Contains(t.Compact(), substr)
		},
	}
}

// Pattern returns a Signature matching tags whose lower-cased text matches
// regular expression expr.
func Pattern(name, expr string) (Signature, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Signature{}, fmt.Errorf("signature %q: %w", name, err)
	}
	return Regexp(name, re), nil
}

// MustPattern is like Pattern but panics if expr can't be compiled.
func MustPattern(name, expr string) Signature {
	sig, err := Pattern(name, expr)
	if err != nil {
		panic(err)
	}
	return sig
}

// Regexp returns a Signature matching tags whose lower-cased text matches re,
// before or after character references are decoded.
func Regexp(name string, re *regexp.Regexp) Signature {
	return Signature{
		Name: name,
		Match: func(t *TagToken) bool {
			return re.MatchString(t.Lower()) || re.MatchString(t.Decoded())
		},
	}
}

// Signatures is an ordered set of attack signatures.
type Signatures []Signature

// DefaultSignatures returns a new set of signatures of version
// SignaturesVersion:
//
//   - javascript: and vbscript: URLs
//   - inline event handlers, like onmouseover=
//   - flash fscommand and seeksegmenttime of HTML+TIME
//
// Substring signatures also match the tag with character references decoded
// and whitespace removed, which catches "jav&#x09;ascript:" but also removes
// some benign tags, see [Contains].
func DefaultSignatures() Signatures {
	return Signatures{
		Contains("javascript", "javascript:"),
		Regexp("event-handler", eventHandler),
		Contains("fscommand", "fscommand"),
		Contains("seeksegmenttime", "seeksegmenttime"),
		Contains("vbscript", "vbscript:"),
	}
}

// ExtendedSignatures returns DefaultSignatures followed by StyleExpression.
func ExtendedSignatures() Signatures {
	return append(DefaultSignatures(), StyleExpression())
}

// Match returns name of the first signature matching t.
func (self Signatures) Match(t *TagToken) (string, bool) {
	for _, sig := range self {
		if sig.Match(t) {
			return sig.Name, true
		}
	}
	return "", false
}

// Names returns names of all signatures in order.
func (self Signatures) Names() []string {
	names := make([]string, len(self))
	for i, sig := range self {
		names[i] = sig.Name
	}
	return names
}

// Without returns a copy of the set without signatures with given names.
func (self Signatures) Without(names ...string) Signatures {
	return slices.DeleteFunc(slices.Clone(self), func(sig Signature) bool {
		return slices.Contains(names, sig.Name)
	})
}
