// Package export encodes results for download as indented JSON or fully quoted CSV
package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"c4ctexts/internal/core/notes"
)

// Header is the fixed CSV column order
var Header = []string{
	"TicketID",
	"ObjectID",
	"ParentObjectID",
	"HeaderObjectID",
	"External_Key",
	"EMail_External_Key",
	"EMail_ID",
	"Text",
	"Type_Code",
	"Type_Code_Text",
	"Author_Name",
	"Author_UUID",
	"Created_On",
	"Created_By",
	"Updated_On",
	"Last_Updated_By",
	"Language",
	"Language_Text",
}

// Content types and file extensions per format
const (
	FormatJSON = "json"
	FormatCSV  = "csv"

	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

// JSON is a two-space indented dump of v with a trailing newline, HTML left unescaped
func JSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Row maps a note to the Header columns, text is the plain text form
func Row(n notes.Note) []string {
	return []string{
		n.TicketID,
		n.ObjectID,
		n.ParentObjectID,
		n.HeaderObjectID,
		n.ExternalKey,
		n.EmailExternalKey,
		n.EmailID,
		n.Text,
		n.TypeCode,
		n.TypeCodeText,
		n.AuthorName,
		n.AuthorUUID,
		n.CreatedOn,
		n.CreatedBy,
		n.UpdatedOn,
		n.LastUpdatedBy,
		n.Language,
		n.LanguageText,
	}
}

// CSV renders the header plus one row per note; see WriteCSV
func CSV(ns []notes.Note) string {
	var b strings.Builder
	_ = WriteCSV(&b, ns)
	return b.String()
}

// WriteCSV writes every cell double quoted with inner quotes doubled,
// cells joined by commas and rows by \n, with no trailing newline
func WriteCSV(w io.Writer, ns []notes.Note) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, Header)
	for _, n := range ns {
		bw.WriteByte('\n')
		writeRecord(bw, Row(n))
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteString(Quote(c))
	}
}

// Quote wraps s in double quotes, doubling any inside
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
