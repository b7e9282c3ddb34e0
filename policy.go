// Copyright (c) 2014, David Kitchen <david@buro9.com>
//
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
//
// * Redistributions of source code must retain the above copyright notice, this
//   list of conditions and the following disclaimer.
//
// * Redistributions in binary form must reproduce the above copyright notice,
//   this list of conditions and the following disclaimer in the documentation
//   and/or other materials provided with the distribution.
//
// * Neither the name of the organisation (Microcosm) nor the names of its
//   contributors may be used to endorse or promote products derived from
//   this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
// FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
// DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
// SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
// CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
// OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package stripxss

import (
	"slices"
	"unicode/utf8"
)

// Policy encapsulates the whitelist of HTML tags, attack signatures and the way
// removed tags are replaced.
//
// You should use stripxss.NewPolicy() or stripxss.DefaultPolicy() to create a
// policy. A Policy must not be modified after its first use, after that it's
// safe for concurrent use by multiple goroutines.
type Policy struct {
	// Declares whether the defaults have been set, used as a cheap check to
	// ensure that those using Policy{} directly get a working policy.
	initialized bool

	// names of tags allowed to pass through
	whitelist Whitelist

	// any match of any signature removes the tag, even if it's whitelisted
	signatures Signatures

	replacement Replacement

	// Symbol replacement, a single character
	placeholder string
}

// init sets the defaults if this has not been done already
func (self *Policy) init() {
	if self.initialized {
		return
	}

	if self.whitelist.names == nil {
		self.whitelist = NewWhitelist()
	}
	if self.signatures == nil {
		self.signatures = DefaultSignatures()
	}
	if self.placeholder == "" {
		self.placeholder = string(DefaultPlaceholder)
	}
	self.initialized = true
}

// ready returns the policy itself, or an initialized copy if it was created
// as Policy{}. It never modifies the policy, so sanitizing stays safe for
// concurrent use.
func (self *Policy) ready() *Policy {
	if self.initialized {
		return self
	}
	p := *self
	p.init()
	return &p
}

// NewPolicy returns a blank policy with no tags allowed. Default signatures
// are active and removed tags are replaced with DefaultPlaceholder. Use
// AllowElements() or WithWhitelist() to construct the whitelist.
func NewPolicy() *Policy {
	p := Policy{}
	p.init()
	return &p
}

// DefaultPolicy returns a new policy with DefaultWhitelist and
// DefaultSignatures, which replaces removed tags with DefaultPlaceholder.
func DefaultPolicy() *Policy {
	return NewPolicy().WithWhitelist(DefaultWhitelist())
}

// WithWhitelist replaces the whitelist of the policy.
func (self *Policy) WithWhitelist(w Whitelist) *Policy {
	self.init()
	self.whitelist = w.With()
	return self
}

// AllowElements adds tag names to the whitelist.
func (self *Policy) AllowElements(names ...string) *Policy {
	self.init()
	self.whitelist = self.whitelist.With(names...)
	return self
}

// DisallowElements removes tag names from the whitelist.
func (self *Policy) DisallowElements(names ...string) *Policy {
	self.init()
	self.whitelist = self.whitelist.Without(names...)
	return self
}

// Whitelist returns the whitelist of the policy.
func (self *Policy) Whitelist() Whitelist { return self.ready().whitelist }

// WithSignatures replaces all signatures of the policy. An empty set disables
// signature checks, only the whitelist is used then.
func (self *Policy) WithSignatures(sigs Signatures) *Policy {
	self.init()
	self.signatures = slices.Clip(append(Signatures{}, sigs...))
	return self
}

// AddSignatures appends signatures to the policy.
func (self *Policy) AddSignatures(sigs ...Signature) *Policy {
	self.init()
	self.signatures = append(slices.Clip(self.signatures), sigs...)
	return self
}

// RemoveSignatures removes signatures with given names.
func (self *Policy) RemoveSignatures(names ...string) *Policy {
	self.init()
	self.signatures = self.signatures.Without(names...)
	return self
}

// Signatures returns a copy of signatures of the policy.
func (self *Policy) Signatures() Signatures {
	return slices.Clone(self.ready().signatures)
}

// ReplaceWithSymbol says removed tags must be replaced with r. An invalid rune
// is replaced by utf8.RuneError, and a rune rejected by SafePlaceholder by
// DefaultPlaceholder.
func (self *Policy) ReplaceWithSymbol(r rune) *Policy {
	self.init()
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	} else if !SafePlaceholder(r) {
		r = DefaultPlaceholder
	}
	self.replacement = Symbol
	self.placeholder = string(r)
	return self
}

// ReplaceWithEntities says removed tags must be HTML escaped, instead of
// replaced with a placeholder.
func (self *Policy) ReplaceWithEntities() *Policy {
	self.init()
	self.replacement = Entities
	return self
}

// Replacement returns how removed tags are replaced.
func (self *Policy) Replacement() Replacement { return self.replacement }

// Placeholder returns the character used by Symbol replacement.
func (self *Policy) Placeholder() rune {
	r, _ := utf8.DecodeRuneInString(self.ready().placeholder)
	return r
}
