package htmltext

import (
	"testing"

	kit "c4ctexts/internal/platform/testkit"
)

func TestToText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"paragraph then break", "<p>Hi</p><br>Bye", "Hi\n\nBye"},
		{"self closing breaks", "a<br/>b<BR />c< br>d", "a\nb\nc\nd"},
		{"div lines", "<div>one</div><div class=\"x\">two</div>", "one\ntwo"},
		{"paragraph attributes", `<p style="margin:0">Hello</p>`, "Hello"},
		{"blank lines collapse", "<p>a</p><p></p><p></p><p>b</p>", "a\n\nb"},
		{"entities decoded", "Tom &amp; Jerry &lt;3 &quot;q&quot; &#39;s&#39;", `Tom & Jerry <3 "q" 's'`},
		{"inline tags dropped", "<b>bold</b> and <a href=\"x\">link</a>", "bold and link"},
		{"full document", "<html><head><title>t</title></head><body><p>Body</p></body></html>", "Body"},
		{"control chars removed", "a\x00b\x07c\u0085d", "abcd"},
		{"trimmed", "  \n<p> x </p>\n  ", "x"},
		{"plain text", "no markup here", "no markup here"},
		{"nfc composed", "e\u0301", "\u00e9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ToText(c.in); got != c.want {
				t.Fatalf("ToText(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestToText_TagStripFallback(t *testing.T) {
	kit.Swap(t, &parse, func(string) (string, bool) { return "", false })

	got := ToText("<p>Hi</p><br><span>Bye</span><p></p><p></p><p>end</p>")
	if got != "Hi\n\nBye\n\nend" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"clean":            "clean",
		"keep\n\r\tws":     "keep\n\r\tws",
		"nul\x00del\x7f":   "nuldel",
		"bad\xffutf8":      "badutf8",
		"c1\u0080\u009fok": "c1ok",
		"A\u030a":          "\u00c5",
	}
	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Fatalf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}
