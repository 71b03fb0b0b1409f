package htmltext

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unwanted matches C0 and C1 controls and DEL, keeping \n \r \t
var unwanted = runes.Predicate(func(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return unicode.IsControl(r)
})

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(runes.Remove(unwanted), norm.NFC)
	},
}

// Sanitize drops invalid UTF-8 and control characters other than \n \r \t,
// then composes the result to NFC
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}
