package export

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"c4ctexts/internal/core/notes"
)

func TestQuote(t *testing.T) {
	cases := map[string]string{
		`He said "hi"`: `"He said ""hi"""`,
		"":             `""`,
		"00042":        `"00042"`,
		"a,b":          `"a,b"`,
		"line\nbreak":  "\"line\nbreak\"",
	}
	for in, want := range cases {
		if got := Quote(in); got != want {
			t.Fatalf("Quote(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCSV_HeaderOnly(t *testing.T) {
	got := CSV(nil)
	if strings.Count(got, ",") != 17 || strings.HasSuffix(got, "\n") {
		t.Fatalf("header = %q", got)
	}
	if !strings.HasPrefix(got, `"TicketID","ObjectID","ParentObjectID","HeaderObjectID","External_Key"`) ||
		!strings.HasSuffix(got, `"Language","Language_Text"`) {
		t.Fatalf("header = %q", got)
	}
}

func TestCSV_RowsRoundTripThroughReader(t *testing.T) {
	ns := []notes.Note{
		{TicketID: "TCK-1", ObjectID: "n1", Text: `He said "hi"`, HTML: "<p>ignored</p>", Language: "EN"},
		{TicketID: "TCK-1", Text: "two\nlines, with comma", CreatedOn: "2023-11-14T22:13:20.000Z"},
	}
	got := CSV(ns)
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("trailing newline: %q", got)
	}
	if !strings.Contains(got, `"He said ""hi"""`) {
		t.Fatalf("quote doubling missing: %q", got)
	}

	recs, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("rows = %d", len(recs))
	}
	for i, r := range recs {
		if len(r) != len(Header) {
			t.Fatalf("row %d has %d cells", i, len(r))
		}
	}
	if recs[1][7] != `He said "hi"` || recs[1][16] != "EN" || recs[2][7] != "two\nlines, with comma" || recs[2][12] != "2023-11-14T22:13:20.000Z" {
		t.Fatalf("cells out of place: %q", recs)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_PropagatesWriteError(t *testing.T) {
	if err := WriteCSV(failWriter{}, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestJSON_Indented(t *testing.T) {
	got, err := JSON(map[string]any{"objectId": "obj-9", "html": "<p>x</p>"})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want := "{\n  \"html\": \"<p>x</p>\",\n  \"objectId\": \"obj-9\"\n}\n"
	if string(got) != want {
		t.Fatalf("JSON = %q, want %q", got, want)
	}
	if _, err := JSON(func() {}); err == nil {
		t.Fatalf("expected unsupported type error")
	}
}
