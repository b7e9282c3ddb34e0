package stripxss

import (
	"iter"
	"strings"
)

// Attrs returns attributes of the tag in the order they appear. Names are
// lower-cased, values are returned without surrounding quotes and with
// character references left as is. Attributes without a value yield an empty
// string.
func (self *TagToken) Attrs() iter.Seq2[string, string] {
	raw := self.Raw
	return func(yield func(string, string) bool) {
		first, ok := nameStart(raw, 0)
		if !ok {
			return
		}

		var pending string
		emit := func(val string) bool {
			if pending == "" {
				return true
			}
			name := pending
			pending = ""
			return yield(name, val)
		}

		var nameFrom, valueFrom int
		st := stateName
		for i := first + 1; i < len(raw) && st != stateEnd; i++ {
			prev := st
			if st = nextState(prev, raw[i]); st == prev {
				continue
			}

			ok := true
			switch prev {
			case stateAttrName:
				pending = strings.ToLower(raw[nameFrom:i])
				if st == stateBeforeAttr || st == stateEnd {
					ok = emit("")
				}
			case stateAfterAttrName:
				if st != stateBeforeValue {
					ok = emit("")
				}
			case stateBeforeValue:
				switch st {
				case stateDoubleQuoted, stateSingleQuoted:
					valueFrom = i + 1
				case stateUnquoted:
					valueFrom = i
				case stateEnd:
					ok = emit("")
				}
			case stateDoubleQuoted, stateSingleQuoted, stateUnquoted:
				ok = emit(raw[valueFrom:i])
			}

			if !ok {
				return
			}
			if st == stateAttrName {
				nameFrom = i
			}
		}
	}
}

// Attr returns the value of the first attribute with given name.
func (self *TagToken) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for key, val := range self.Attrs() {
		if key == name {
			return val, true
		}
	}
	return "", false
}
