package stripxss

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func scanRaw(doc string) []string {
	var raws []string
	for t := range Scan(doc) {
		raws = append(raws, t.Raw)
	}
	return raws
}

func TestScan(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{in: ``},
		{in: `plain text`},
		{in: `a < b > c`},
		{in: `I <3 you`},
		{in: `<b>bold</b>`, expected: []string{`<b>`, `</b>`}},
		{in: `<br/><br />`, expected: []string{`<br/>`, `<br />`}},
		{
			in:       `<a title=">">x</a>`,
			expected: []string{`<a title=">">`, `</a>`},
		},
		{
			in:       `<a title='say "hi"' href=x>`,
			expected: []string{`<a title='say "hi"' href=x>`},
		},
		{
			in:       `<img/src=x/onerror=alert(1)>`,
			expected: []string{`<img/src=x/onerror=alert(1)>`},
		},
		{
			in:       `<a b="1"c=2 d>`,
			expected: []string{`<a b="1"c=2 d>`},
		},
		{
			in:       "<a\n\thref=\"x\"\n>",
			expected: []string{"<a\n\thref=\"x\"\n>"},
		},
		{in: `<<b>>`, expected: []string{`<b>`}},
		{in: `<3>`},
		{in: `<_x>`},
		{in: `I <3 you <b>`, expected: []string{`<b>`}},
		{in: `</>`},
		{in: `< b>`},
		{in: `</ b>`},
		{in: `<-b>`},
		{in: `<a href="x`},
		{in: `<img src=x onerror=alert(1)`},
		{in: `<a href="x <b>`, expected: []string{`<b>`}},
		{in: `<a href='x <b>`, expected: []string{`<b>`}},
		{
			in:       `<SCRIPT a=">" SRC="http://ha.ckers.org/xss.js"></SCRIPT>`,
			expected: []string{`<SCRIPT a=">" SRC="http://ha.ckers.org/xss.js">`, `</SCRIPT>`},
		},
		{
			in:       `<SCRIPT "a='>'" SRC="http://ha.ckers.org/xss.js"></SCRIPT>`,
			expected: []string{`<SCRIPT "a='>'" SRC="http://ha.ckers.org/xss.js">`, `</SCRIPT>`},
		},
		{
			in:       "<SCRIPT a=`>` SRC=\"http://ha.ckers.org/xss.js\"></SCRIPT>",
			expected: []string{"<SCRIPT a=`>", `</SCRIPT>`},
		},
		{
			in:       `<<SCRIPT>alert("XSS");//<</SCRIPT>`,
			expected: []string{`<SCRIPT>`, `</SCRIPT>`},
		},
		{
			in:       `<IMG """><SCRIPT>alert("XSS")</SCRIPT>">`,
			expected: []string{`<IMG """>`, `<SCRIPT>`, `</SCRIPT>`},
		},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.expected, scanRaw(tt.in), "test %d: %q", i, tt.in)
	}
}

func TestScan_offsets(t *testing.T) {
	doc := `<span>Hello, exploit: <img src="javascript:alert(1)"></span> <3 <b>`
	var n int
	for tok := range Scan(doc) {
		assert.Equal(t, tok.Raw, doc[tok.Start:tok.End])
		assert.Equal(t, len(tok.Raw), tok.Len())
		n++
	}
	assert.Equal(t, 4, n)
}

func TestScan_restartable(t *testing.T) {
	seq := Scan(`<p>one</p><p>two</p>`)

	var first []string
	for tok := range seq {
		first = append(first, tok.Raw)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{`<p>`, `</p>`}, first)

	var all []string
	for tok := range seq {
		all = append(all, tok.Raw)
	}
	assert.Equal(t, []string{`<p>`, `</p>`, `<p>`, `</p>`}, all)
}

func TestTagToken_Name(t *testing.T) {
	tests := []struct {
		in       string
		name     string
		atom     atom.Atom
		closing  bool
		textName string
	}{
		{in: `<span>`, name: "span", atom: atom.Span, textName: "span"},
		{in: `</SPAN>`, name: "span", atom: atom.Span, closing: true, textName: "span"},
		{in: `<br/>`, name: "br", atom: atom.Br, textName: "br"},
		{in: `<IMG SRC=x>`, name: "img", atom: atom.Img, textName: "img"},
		{in: "<a\thref=x>", name: "a", atom: atom.A, textName: "a"},
		{in: `<custom-el>`, name: "custom-el", textName: "custom-el"},
		{in: `<img/src=x>`, name: "img", atom: atom.Img, textName: "img/src=x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var tokens []TagToken
			for tok := range Scan(tt.in) {
				tokens = append(tokens, tok)
			}
			require.Len(t, tokens, 1)
			tok := tokens[0]
			assert.Equal(t, tt.name, tok.Name)
			assert.Equal(t, tt.atom, tok.DataAtom)
			assert.Equal(t, tt.closing, tok.Closing)
			assert.Equal(t, tt.textName, TagName(tok.Raw))
		})
	}
}

func TestTagToken_Compact(t *testing.T) {
	tok := newTagToken(`<IMG SRC="jav&#x09;a&#83;cript:alert(1)">`, 0, 41)
	assert.Equal(t, `<img src="jav&#x09;a&#83;cript:alert(1)">`, tok.Lower())
	assert.Equal(t, "<img src=\"jav\tascript:alert(1)\">", tok.Decoded())
	assert.Equal(t, `<imgsrc="javascript:alert(1)">`, tok.Compact())
}

// Inputs below take quadratic time with a backtracking tag pattern or a
// scanner restarting from every '<'.
func TestScan_linear(t *testing.T) {
	const n = 1 << 15

	tests := []string{
		strings.Repeat("a", n*16),
		"<a" + strings.Repeat(" ", n*16),
		"<a" + strings.Repeat(" x=1", n*4),
		strings.Repeat("<a ", n*4),
		strings.Repeat(`<a x=">" `, n),
		strings.Repeat(`<a x='">' `, n),
		strings.Repeat(`<a "`, n*4) + ">",
		strings.Repeat("<a/", n*4) + strings.Repeat("x", n),
	}

	for i, doc := range tests {
		var raws []string
		for tok := range Scan(doc) {
			raws = append(raws, tok.Raw)
			if len(raws) > 1 {
				break
			}
		}
		assert.LessOrEqual(t, len(raws), 1, "test %d", i)
	}
}

// Scanning 4 times longer input of the same shape must take about 4 times
// longer, a quadratic scanner needs 16 times.
func TestScan_linearTime(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	const n = 1 << 13

	tests := []func(n int) string{
		func(n int) string { return strings.Repeat("<a ", n*4) + ">" },
		func(n int) string { return strings.Repeat(`<a x=">" `, n) + ">" },
		func(n int) string { return strings.Repeat(`<a "`, n*4) + "x>" },
		func(n int) string { return strings.Repeat("<a/", n*4) + ">" },
		func(n int) string {
			return strings.Repeat(`<p title="a > b">x</p> 1 < 2 <a x='`, n) + ">"
		},
	}

	for i, gen := range tests {
		small, large := gen(n), gen(4*n)
		ratio := float64(scanTime(large)) / float64(scanTime(small))
		assert.Less(t, ratio, 10.0, "test %d", i)
	}
}

// scanTime returns the best of a few runs, to cut off scheduler noise.
func scanTime(doc string) time.Duration {
	best := time.Duration(1<<63 - 1)
	for range 5 {
		start := time.Now()
		for range Scan(doc) {
		}
		best = min(best, time.Since(start))
	}
	return max(best, time.Microsecond)
}

func BenchmarkScan(b *testing.B) {
	doc := strings.Repeat(
		`<p>Hello, <b>world</b>! <a href="http://example.com" title="a > b">x</a> 1 < 2</p>`,
		1000)

	b.ReportAllocs()
	for b.Loop() {
		for range Scan(doc) {
		}
	}
}
