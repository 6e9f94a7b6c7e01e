package models

import (
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

// JournalEntry is a dated free-text entry, optionally written against a
// suggested prompt.
type JournalEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	Prompt    string `json:"prompt,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (e *JournalEntry) Doc() store.Document {
	doc := store.Document{
		"user_id":    e.UserID,
		"date":       e.Date,
		"content":    e.Content,
		"prompt":     e.Prompt,
		"created_at": e.CreatedAt,
	}
	if e.UpdatedAt != "" {
		doc["updated_at"] = e.UpdatedAt
	}
	return doc
}

func JournalEntryFromDoc(id string, doc store.Document) *JournalEntry {
	return &JournalEntry{
		ID:        id,
		UserID:    docString(doc, "user_id"),
		Date:      docString(doc, "date"),
		Content:   docString(doc, "content"),
		Prompt:    docString(doc, "prompt"),
		CreatedAt: docString(doc, "created_at"),
		UpdatedAt: docString(doc, "updated_at"),
	}
}
