// Package stripxss removes dangerous HTML tags from untrusted text, like chat
// messages or titles shared between users, before it's rendered in other
// users' browsers.
//
// # Overview
//
// stripxss is not an HTML parser. It finds tag-shaped substrings of the
// text and decides for every one of them separately, whether it's allowed or
// removed. Everything else, including broken markup, passes through
// untouched.
//
// A tag is removed if its name is not in the [Whitelist] of the [Policy], or
// if it matches any attack [Signature], even when its name is whitelisted:
//
//   - javascript: and vbscript: URLs
//   - inline event handlers, like onmouseover=
//   - flash fscommand and seeksegmenttime
//
// Removed tags are replaced either with a placeholder character ([Symbol],
// the default, "␡") or with their own text HTML escaped ([Entities]), so
// users see the tag instead of the browser executing it.
//
// # Performance
//
// Tags are found by a single pass state machine. Sanitizing takes time
// linear in the length of the input, whatever the input is.
//
// # Thread Safety
//
// Sanitizing is safe for concurrent use. Policies should not be modified
// after first use.
//
// # Example
//
//	r := stripxss.Sanitize(`<span>Hello, exploit: <img src="javascript:alert(1)"></span>`)
//	// r.Text: <span>Hello, exploit: ␡</span>
//	// r.Removed: [<img src="javascript:alert(1)">]
package stripxss
