// Package notes flattens expanded e-mail and activity records into uniform note rows
package notes

import (
	"strings"

	"c4ctexts/internal/core/htmltext"
	"c4ctexts/internal/core/odata"
)

// Sub-collection names notes hang under
const (
	KeyEMailNotes   = "EMailNotes"
	KeyActivityText = "ActivityText"
)

// UnknownGroup labels notes whose group id is blank
const UnknownGroup = "unknown"

// Group is one fetched parent (e-mail or activity) collection
type Group struct {
	ID   string
	Data odata.Collection
	// NotesKey defaults to KeyEMailNotes
	NotesKey string
}

// Note is a single non-blank note with every attribute resolved to a string
type Note struct {
	TicketID         string `json:"ticketId"`
	EmailActivityID  string `json:"emailActivityId"`
	NoteIndex        int    `json:"noteIndex"`
	HTML             string `json:"html"`
	Text             string `json:"text"`
	ObjectID         string `json:"objectId"`
	ParentObjectID   string `json:"parentObjectId"`
	HeaderObjectID   string `json:"headerObjectId"`
	ExternalKey      string `json:"externalKey"`
	EmailExternalKey string `json:"emailExternalKey"`
	EmailID          string `json:"emailId"`
	TypeCode         string `json:"typeCode"`
	TypeCodeText     string `json:"typeCodeText"`
	AuthorName       string `json:"authorName"`
	AuthorUUID       string `json:"authorUuid"`
	CreatedOn        string `json:"createdOn"`
	CreatedBy        string `json:"createdBy"`
	UpdatedOn        string `json:"updatedOn"`
	LastUpdatedBy    string `json:"lastUpdatedBy"`
	Language         string `json:"language"`
	LanguageText     string `json:"languageText"`
}

// Normalize walks every group's results and their note sub-collections in order
//
// noteIndex is the 1-based position in the parent's raw note array, so it restarts
// per parent and blank notes still consume a position. Notes whose text is blank are
// dropped. Results without a usable sub-collection are skipped
func Normalize(groups []Group) []Note {
	out := make([]Note, 0)
	for _, g := range groups {
		groupID := g.ID
		if strings.TrimSpace(groupID) == "" {
			groupID = UnknownGroup
		}
		key := g.NotesKey
		if key == "" {
			key = KeyEMailNotes
		}
		for _, parent := range g.Data.Results {
			for i, raw := range subCollection(parent[key]) {
				note, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				n, keep := build(groupID, parent, odata.Record(note))
				if !keep {
					continue
				}
				n.NoteIndex = i + 1
				out = append(out, n)
			}
		}
	}
	return out
}

// subCollection accepts a bare array or an expanded {"results": [...]} object
func subCollection(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		if res, ok := t["results"].([]any); ok {
			return res
		}
	}
	return nil
}

func build(groupID string, parent, note odata.Record) (Note, bool) {
	text := note.String("Text")
	if strings.TrimSpace(text) == "" {
		return Note{}, false
	}
	n := Note{
		EmailActivityID: groupID,
		HTML:            text,
		Text:            htmltext.ToText(text),
	}
	src := sources{parent: parent, note: note, group: groupID}
	for _, f := range fields {
		*f.dst(&n) = src.resolve(f)
	}
	return n, true
}
