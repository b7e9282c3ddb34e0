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
	"bytes"
	"fmt"
	"io"
	"strings"
)

const genericErrMsg = "stripxss: %w"

// Result is an outcome of sanitization.
type Result struct {
	// Text is the sanitized text.
	Text string

	// Removed contains raw text of every removed tag in the order they appear
	// in the original text. A tag occurring more than once is listed every
	// time.
	Removed []string
}

// Sanitize sanitizes s using DefaultPolicy.
func Sanitize(s string) Result { return DefaultPolicy().Sanitize(s) }

// Sanitize takes a string that contains a HTML fragment or any text with
// markup and replaces every tag, which isn't whitelisted or carries an attack
// signature.
//
// It never fails: text which doesn't look like a tag, including unbalanced
// '<' and '>', is kept as is.
func (self *Policy) Sanitize(s string) Result {
	if strings.IndexByte(s, '<') < 0 {
		return Result{Text: s}
	}

	var b strings.Builder
	b.Grow(len(s))
	// strings.Builder never returns an error
	removed, _ := self.ready().render(s, &b)
	return Result{Text: b.String(), Removed: removed}
}

// SanitizeBytes takes a []byte that contains a HTML fragment or any text with
// markup and applies the given policy.
//
// It returns a []byte containing the sanitized text and raw text of removed
// tags.
func (self *Policy) SanitizeBytes(b []byte) ([]byte, []string) {
	if bytes.IndexByte(b, '<') < 0 {
		return b, nil
	}
	r := self.Sanitize(string(b))
	return []byte(r.Text), r.Removed
}

// SanitizeReader takes an io.Reader that contains a HTML fragment or any text
// with markup and applies the given policy.
//
// It returns a bytes.Buffer containing the sanitized text. Errors during
// sanitization will merely return an empty result.
func (self *Policy) SanitizeReader(r io.Reader) (*bytes.Buffer, []string) {
	buff := new(bytes.Buffer)
	removed, err := self.SanitizeReaderToWriter(r, buff)
	if err != nil {
		return new(bytes.Buffer), nil
	}
	return buff, removed
}

// SanitizeReaderToWriter takes an io.Reader that contains a HTML fragment or
// any text with markup and applies the given policy and writes to the
// provided writer returning raw text of removed tags or an error if there is
// one.
func (self *Policy) SanitizeReaderToWriter(r io.Reader, w io.Writer,
) ([]string, error) {
	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf(genericErrMsg, err)
	}

	buff, ok := w.(io.StringWriter)
	if !ok {
		buff = &stringWriter{w}
	}
	return self.ready().render(string(doc), buff)
}

type stringWriter struct {
	io.Writer
}

var _ io.StringWriter = (*stringWriter)(nil)

func (a *stringWriter) WriteString(s string) (int, error) {
	return a.Write([]byte(s)) //nolint:wrapcheck // call forwarder
}
