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

import "regexp"

var (
	// eventHandler matches inline event handler attributes like
	// onmouseover=, when they start at an attribute boundary.
	eventHandler = regexp.MustCompile(`(?:^|[\s/"'])on[a-z]+\s*=`)

	// defaultWhitelist is the set of tags used by DefaultWhitelist. These are
	// all pretty safe and cover most of what users would want in terms of
	// formatting and sharing media (images, audio, video, etc).
	defaultWhitelist = [...]string{
		"a", "abbr", "aside", "audio", "bdi", "bdo", "blockquote", "canvas",
		"caption", "code", "col", "colgroup", "data", "dd", "del",
		"details", "div", "dl", "dt", "em", "figcaption", "figure",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hr", "i", "img", "ins", "kbd", "li",
		"mark", "ol", "p", "pre", "q", "rp", "rt", "ruby", "s", "samp",
		"small", "source", "span", "strong", "sub", "summary", "sup",
		"time", "track", "u", "ul", "var", "video", "wbr",
	}

	headings = [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}

	lists = [...]string{"dd", "dl", "dt", "li", "ol", "ul"}

	// table elements aren't in defaultWhitelist, a stray </table> in a chat
	// message breaks the layout it is rendered into.
	tables = [...]string{
		"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th",
		"thead", "tr",
	}

	media = [...]string{
		"audio", "canvas", "figcaption", "figure", "img", "picture", "source",
		"track", "video",
	}

	inlineFormatting = [...]string{
		"abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "del", "dfn",
		"em", "i", "ins", "kbd", "mark", "q", "rp", "rt", "ruby", "s", "samp",
		"small", "span", "strong", "sub", "sup", "time", "u", "var", "wbr",
	}
)

// AllowHeadings permits h1 to h6.
func (self *Policy) AllowHeadings() *Policy {
	return self.AllowElements(headings[:]...)
}

// AllowLists will enable ordered and unordered lists, as well as definition
// lists
func (self *Policy) AllowLists() *Policy {
	return self.AllowElements(lists[:]...)
}

// AllowTables will enable elements to describe HTML tables
func (self *Policy) AllowTables() *Policy {
	return self.AllowElements(tables[:]...)
}

// AllowMedia enables images, audio and video together with their source and
// track elements.
//
// NOTE: src of these elements still passes through attack signatures, so
// javascript: URLs get removed, but any other remote URL is kept.
func (self *Policy) AllowMedia() *Policy {
	return self.AllowElements(media[:]...)
}

// AllowInlineFormatting enables phrasing elements used for text formatting.
func (self *Policy) AllowInlineFormatting() *Policy {
	return self.AllowElements(inlineFormatting[:]...)
}
