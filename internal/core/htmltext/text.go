// Package htmltext turns upstream note HTML into readable plain text
package htmltext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// structural rewrites that keep line and paragraph breaks; order matters
var structural = []struct {
	re   *regexp.Regexp
	with string
}{
	{regexp.MustCompile(`(?i)<\s*br\s*/?>`), "\n"},
	{regexp.MustCompile(`(?i)</p\s*>`), "\n\n"},
	{regexp.MustCompile(`(?i)<p[^>]*>`), ""},
	{regexp.MustCompile(`(?i)</div\s*>`), "\n"},
	{regexp.MustCompile(`(?i)<div[^>]*>`), ""},
}

var (
	anyTag     = regexp.MustCompile(`<[^>]+>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// parse is swapped in tests to exercise the tag strip fallback
var parse = bodyText

// ToText converts note HTML to plain text
//
// br becomes a newline, a closing p a blank line, a closing div a newline;
// the rest of the markup is dropped by parsing the fragment and reading the
// body's text content, entities decoded. Runs of three or more newlines
// collapse to two and the result is trimmed
func ToText(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)
	for _, r := range structural {
		s = r.re.ReplaceAllString(s, r.with)
	}
	text, ok := parse(s)
	if !ok {
		text = anyTag.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}

// bodyText parses s as an HTML document and concatenates the text nodes under body
func bodyText(s string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", false
	}
	body := find(doc, "body")
	if body == nil {
		return "", false
	}
	var b strings.Builder
	collect(body, &b)
	return b.String(), true
}

func find(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, tag); f != nil {
			return f
		}
	}
	return nil
}

func collect(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, b)
	}
}
