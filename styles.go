package stripxss

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

var (
	cssUnicodeChar = regexp.MustCompile(`\\[0-9a-f]{1,6} ?`)
	cssComment     = regexp.MustCompile(`/\*.*?\*/`)
	cssScriptURL   = regexp.MustCompile(`url\(['"]?(?:javascript|vbscript|livescript):`)

	vendorPrefixes = [...]string{
		"-webkit-", "-moz-", "-ms-", "-o-", "mso-", "-xv-", "-atsc-", "-wap-",
		"-khtml-", "prince-", "-ah-", "-hp-", "-ro-", "-rim-", "-tc-",
	}
)

// StyleExpression returns a Signature matching tags with a style attribute,
// which executes script: IE expression(), behavior, -moz-binding and url()
// with a script scheme. CSS escapes and character references are decoded
// first. A style attribute which can't be parsed matches too.
func StyleExpression() Signature {
	return Signature{
		Name: "style-expression",
		Match: func(t *TagToken) bool {
			for key, val := range t.Attrs() {
				if key == "style" && scriptableStyle(val) {
					return true
				}
			}
			return false
		},
	}
}

func scriptableStyle(style string) bool {
	style = strings.TrimRight(html.UnescapeString(style), " ")
	if style == "" {
		return false
	}

	// Add semi-colon to end to fix parsing issue
	if style[len(style)-1] != ';' {
		style += ";"
	}
	decs, err := parser.ParseDeclarations(style)
	if err != nil {
		return true
	}

	for _, dec := range decs {
		property := removeUnicode(strings.ToLower(dec.Property))
		for _, prefix := range vendorPrefixes {
			property = strings.TrimPrefix(property, prefix)
		}
		switch property {
		case "behavior", "binding":
			return true
		}

		value := compactCSS(removeUnicode(strings.ToLower(dec.Value)))
		if strings.Contains(value, "expression(") ||
			cssScriptURL.MatchString(value) {
			return true
		}
	}
	return false
}

// compactCSS removes comments and whitespace, which old browsers ignored
// inside expression( and url(.
func compactCSS(value string) string {
	value = cssComment.ReplaceAllString(value, "")
	return strings.Join(strings.Fields(value), "")
}

func removeUnicode(value string) string {
	substitutedValue := value
	currentLoc := cssUnicodeChar.FindStringIndex(substitutedValue)
	for currentLoc != nil {
		character := substitutedValue[currentLoc[0]+1 : currentLoc[1]]
		character = strings.TrimSpace(character)
		if len(character) < 4 {
			character = strings.Repeat("0", 4-len(character)) + character
		} else {
			for len(character) > 4 {
				if character[0] != '0' {
					character = ""
					break
				} else {
					character = character[1:]
				}
			}
		}
		character = "\\u" + character
		translatedChar, err := strconv.Unquote(`"` + character + `"`)
		translatedChar = strings.TrimSpace(translatedChar)
		if err != nil {
			return ""
		}
		substitutedValue = substitutedValue[0:currentLoc[0]] + translatedChar +
			substitutedValue[currentLoc[1]:]
		currentLoc = cssUnicodeChar.FindStringIndex(substitutedValue)
	}
	return substitutedValue
}
