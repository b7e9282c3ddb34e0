package stripxss

import "iter"

// Verdict is a decision made for a tag.
type Verdict int

const (
	Allowed Verdict = iota
	Removed
)

func (self Verdict) String() string {
	switch self {
	case Allowed:
		return "allowed"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// ReasonWhitelist is the Reason of tags removed because their name isn't
// whitelisted.
const ReasonWhitelist = "whitelist"

// Classified is a tag together with the decision made for it.
type Classified struct {
	Token   TagToken
	Verdict Verdict

	// Reason is ReasonWhitelist or the name of matched signature for removed
	// tags, empty otherwise.
	Reason string
}

// Classify scans doc and decides for every tag found, whether it must be
// removed. Tags are yielded in document order.
func (self *Policy) Classify(doc string) iter.Seq[Classified] {
	p := self.ready()
	return func(yield func(Classified) bool) {
		for t := range Scan(doc) {
			if !yield(p.classify(t)) {
				return
			}
		}
	}
}

// classify removes t, if its name isn't whitelisted or it matches any
// signature.
func (self *Policy) classify(t TagToken) Classified {
	c := Classified{Token: t}
	if !self.whitelist.Permitted(t.Name) {
		c.Verdict, c.Reason = Removed, ReasonWhitelist
	} else if name, ok := self.signatures.Match(&c.Token); ok {
		c.Verdict, c.Reason = Removed, name
	}
	return c
}
