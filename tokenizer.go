package stripxss

import (
	"iter"
	"strings"
)

type scanState uint8

const (
	stateName scanState = iota
	stateBeforeAttr
	stateAttrName
	stateAfterAttrName
	stateBeforeValue
	stateDoubleQuoted
	stateSingleQuoted
	stateUnquoted
	stateAfterQuoted
	stateEnd
)

// Scan returns every tag-shaped substring of doc, first to last. The sequence
// is lazy and may be ranged over any number of times.
//
// A tag is '<', an optional '/', a name starting with an ASCII letter,
// attributes and a closing '>'. Quoted attribute values may contain '>'. Any
// '<' which doesn't open a complete tag is plain text, including a tag left
// open at the end of doc.
func Scan(doc string) iter.Seq[TagToken] {
	return func(yield func(TagToken) bool) {
		s := newScanner(doc)
		for {
			t, ok := s.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// scanner walks the document byte by byte. Every attempt to read a tag either
// ends on '>' or runs out of input. Attempts of the second kind mark the
// (position, state) pairs they passed through as dead, so any later attempt
// reaching one of them gives up immediately. Each pair is marked at most once
// and successful attempts never overlap, which keeps the whole scan linear.
type scanner struct {
	doc    string
	pos    int
	lastGT int

	dead []uint16
}

func newScanner(doc string) *scanner {
	return &scanner{doc: doc, lastGT: strings.LastIndexByte(doc, '>')}
}

func (self *scanner) Next() (TagToken, bool) {
	for self.pos < self.lastGT {
		i := strings.IndexByte(self.doc[self.pos:self.lastGT], '<')
		if i < 0 {
			break
		}

		start := self.pos + i
		if end, ok := self.tagAt(start); ok {
			self.pos = end
			return newTagToken(self.doc, start, end), true
		}
		self.pos = start + 1
	}
	self.pos = len(self.doc)
	return TagToken{}, false
}

// tagAt tries to read a tag starting at doc[start] == '<' and returns the
// offset just past its '>'.
func (self *scanner) tagAt(start int) (int, bool) {
	i, ok := nameStart(self.doc, start)
	if !ok {
		return 0, false
	}

	first := i + 1
	st := stateName
	for i = first; i < len(self.doc); i++ {
		if self.isDead(i, st) {
			break
		}
		if st = nextState(st, self.doc[i]); st == stateEnd {
			return i + 1, true
		}
	}

	self.markDead(first, i)
	return 0, false
}

// nameStart returns the offset of the first byte of the tag name of a
// candidate tag at doc[start].
func nameStart(doc string, start int) (int, bool) {
	i := start + 1
	if i < len(doc) && doc[i] == '/' {
		i++
	}
	if i >= len(doc) || !isLetter(doc[i]) {
		return 0, false
	}
	return i, true
}

func (self *scanner) isDead(i int, st scanState) bool {
	return self.dead != nil && self.dead[i]&(1<<st) != 0
}

// markDead replays a failed attempt from first up to stop, recording every
// pair it went through.
func (self *scanner) markDead(first, stop int) {
	if self.dead == nil {
		self.dead = make([]uint16, len(self.doc))
	}

	st := stateName
	for i := first; i < stop; i++ {
		self.dead[i] |= 1 << st
		st = nextState(st, self.doc[i])
	}
}

func nextState(st scanState, c byte) scanState {
	switch st {
	case stateName:
		switch {
		case isSpace(c), c == '/':
			return stateBeforeAttr
		case c == '>':
			return stateEnd
		}
		return stateName

	case stateBeforeAttr:
		switch {
		case isSpace(c), c == '/':
			return stateBeforeAttr
		case c == '>':
			return stateEnd
		}
		return stateAttrName

	case stateAttrName, stateAfterAttrName:
		switch {
		case isSpace(c):
			return stateAfterAttrName
		case c == '/':
			return stateBeforeAttr
		case c == '=':
			return stateBeforeValue
		case c == '>':
			return stateEnd
		}
		return stateAttrName

	case stateBeforeValue:
		switch {
		case isSpace(c):
			return stateBeforeValue
		case c == '"':
			return stateDoubleQuoted
		case c == '\'':
			return stateSingleQuoted
		case c == '>':
			return stateEnd
		}
		return stateUnquoted

	case stateDoubleQuoted:
		if c == '"' {
			return stateAfterQuoted
		}
		return stateDoubleQuoted

	case stateSingleQuoted:
		if c == '\'' {
			return stateAfterQuoted
		}
		return stateSingleQuoted

	case stateUnquoted:
		switch {
		case isSpace(c):
			return stateBeforeAttr
		case c == '>':
			return stateEnd
		}
		return stateUnquoted

	case stateAfterQuoted:
		switch {
		case isSpace(c), c == '/':
			return stateBeforeAttr
		case c == '>':
			return stateEnd
		}
		return stateAttrName
	}
	return stateEnd
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
