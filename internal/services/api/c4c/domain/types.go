// Package domain holds the ticket text types shared by the service, transport and CLI
package domain

import (
	"c4ctexts/internal/core/notes"
	"c4ctexts/internal/core/odata"
)

// TicketQuery addresses one ticket on one tenant
// blank fields fall back to the configured defaults
type TicketQuery struct {
	TenantURL string
	TicketID  string
	Username  string
	Password  string
}

// EmailNotesQuery optionally names one e-mail activity to expand
type EmailNotesQuery struct {
	TicketQuery
	EmailActivityID string
}

// TicketTexts is the ticket's raw text collection
type TicketTexts struct {
	ObjectID string           `json:"objectId"`
	Data     odata.Collection `json:"data"`
}

// InternalMemos holds the typed references, one activity collection per
// distinct reference id in reference order, and the flattened memo notes
type InternalMemos struct {
	ObjectID   string             `json:"objectId"`
	References odata.Collection   `json:"references"`
	Activities []odata.Collection `json:"activities"`
	Notes      []notes.Note       `json:"notes"`
}

// EmailNotes holds every reference of the ticket and, when asked for, one e-mail with its notes
type EmailNotes struct {
	ObjectID   string            `json:"objectId"`
	References odata.Collection  `json:"references"`
	EmailNotes *odata.Collection `json:"emailNotes,omitempty"`
}

// EmailNotesEntry is one fetched e-mail keyed by its reference id
type EmailNotesEntry struct {
	ID   string           `json:"id"`
	Data odata.Collection `json:"data"`
}

// EmailNotesCollection is every referenced e-mail expanded, plus the flattened notes
type EmailNotesCollection struct {
	TicketID   string            `json:"ticketId"`
	ObjectID   string            `json:"objectId"`
	References odata.Collection  `json:"references"`
	EmailNotes []EmailNotesEntry `json:"emailNotes"`
	Notes      []notes.Note      `json:"notes"`
}
