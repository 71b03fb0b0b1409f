package notes

import (
	"strings"

	"c4ctexts/internal/core/htmltext"
	"c4ctexts/internal/core/odata"
)

type origin uint8

const (
	fromNote origin = iota
	fromParent
	fromGroup
)

// candidate is one place a value may live
type candidate struct {
	from origin
	key  string
}

// field lists the candidates for one Note attribute, first non-blank wins
type field struct {
	dst   func(*Note) *string
	cands []candidate
	date  bool
}

func onNote(key string) candidate   { return candidate{fromNote, key} }
func onParent(key string) candidate { return candidate{fromParent, key} }

var onGroup = candidate{from: fromGroup}

// fields is the lookup table; a new upstream spelling is one more candidate
var fields = []field{
	{dst: func(n *Note) *string { return &n.TicketID }, cands: []candidate{onParent("TicketID")}},
	{dst: func(n *Note) *string { return &n.ObjectID }, cands: []candidate{onNote("ObjectID")}},
	{dst: func(n *Note) *string { return &n.ParentObjectID }, cands: []candidate{onNote("ParentObjectID")}},
	{dst: func(n *Note) *string { return &n.HeaderObjectID }, cands: []candidate{onNote("HeaderObjectID"), onNote("ParentObjectID")}},
	{dst: func(n *Note) *string { return &n.ExternalKey }, cands: []candidate{onNote("ExternalKey"), onNote("External_Key")}},
	{dst: func(n *Note) *string { return &n.EmailExternalKey }, cands: []candidate{onNote("EMailExternalKey"), onParent("ExternalKey")}},
	{dst: func(n *Note) *string { return &n.EmailID }, cands: []candidate{onNote("EMailID"), onParent("ID"), onGroup}},
	{dst: func(n *Note) *string { return &n.TypeCode }, cands: []candidate{onNote("TypeCode")}},
	{dst: func(n *Note) *string { return &n.TypeCodeText }, cands: []candidate{onNote("TypeCodeText")}},
	{dst: func(n *Note) *string { return &n.AuthorName }, cands: []candidate{onNote("AuthorName")}},
	{dst: func(n *Note) *string { return &n.AuthorUUID }, cands: []candidate{onNote("AuthorUUID")}},
	{dst: func(n *Note) *string { return &n.CreatedOn }, cands: []candidate{onNote("CreatedOn")}, date: true},
	{dst: func(n *Note) *string { return &n.CreatedBy }, cands: []candidate{onNote("CreatedBy")}},
	{dst: func(n *Note) *string { return &n.UpdatedOn }, cands: []candidate{onNote("UpdatedOn")}, date: true},
	{dst: func(n *Note) *string { return &n.LastUpdatedBy }, cands: []candidate{onNote("LastUpdatedBy")}},
	{dst: func(n *Note) *string { return &n.Language }, cands: []candidate{onNote("LanguageCode")}},
	{dst: func(n *Note) *string { return &n.LanguageText }, cands: []candidate{onNote("LanguageCodeText")}},
}

type sources struct {
	parent odata.Record
	note   odata.Record
	group  string
}

func (s sources) value(c candidate) any {
	switch c.from {
	case fromNote:
		return s.note[c.key]
	case fromParent:
		return s.parent[c.key]
	default:
		return s.group
	}
}

func (s sources) resolve(f field) string {
	for _, c := range f.cands {
		v := s.value(c)
		var str string
		if f.date {
			str = htmltext.Date(v)
		} else {
			str, _ = v.(string)
		}
		if strings.TrimSpace(str) != "" {
			return str
		}
	}
	return ""
}
