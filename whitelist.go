package stripxss

import (
	"maps"
	"slices"
	"strings"
)

// Whitelist is a set of tag names permitted to pass through. Names are
// compared case-insensitively. A Whitelist is never modified once built: With
// and Without return new values.
type Whitelist struct {
	names map[string]struct{}
}

// NewWhitelist returns a Whitelist of given tag names.
func NewWhitelist(names ...string) Whitelist {
	w := Whitelist{names: make(map[string]struct{}, len(names))}
	w.add(names)
	return w
}

// DefaultWhitelist returns a new Whitelist of tags safe for formatting text and
// sharing media, listed in defaultWhitelist.
func DefaultWhitelist() Whitelist {
	return NewWhitelist(defaultWhitelist[:]...)
}

func (self *Whitelist) add(names []string) {
	for _, name := range names {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			self.names[name] = struct{}{}
		}
	}
}

// Permitted reports whether tag name is in the Whitelist.
func (self Whitelist) Permitted(name string) bool {
	_, ok := self.names[strings.ToLower(name)]
	return ok
}

// With returns a copy of the Whitelist with names added.
func (self Whitelist) With(names ...string) Whitelist {
	w := Whitelist{names: maps.Clone(self.names)}
	if w.names == nil {
		w.names = make(map[string]struct{}, len(names))
	}
	w.add(names)
	return w
}

// Without returns a copy of the Whitelist with names removed.
func (self Whitelist) Without(names ...string) Whitelist {
	w := Whitelist{names: maps.Clone(self.names)}
	for _, name := range names {
		delete(w.names, strings.ToLower(strings.TrimSpace(name)))
	}
	return w
}

// Names returns all names sorted.
func (self Whitelist) Names() []string {
	return slices.Sorted(maps.Keys(self.names))
}

func (self Whitelist) Len() int { return len(self.names) }
