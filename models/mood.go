package models

import (
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

// Mood is a self-reported emotional state.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodSad      Mood = "Sad"
	MoodAnxious  Mood = "Anxious"
	MoodCalm     Mood = "Calm"
	MoodStressed Mood = "Stressed"
	MoodTired    Mood = "Tired"
	MoodExcited  Mood = "Excited"
)

// Valid reports whether m is one of the known moods. Validation is
// advisory; storage itself accepts any string.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodAnxious, MoodCalm, MoodStressed, MoodTired, MoodExcited:
		return true
	}
	return false
}

// Energy is a self-reported energy level.
type Energy string

const (
	EnergyLow    Energy = "Low"
	EnergyMedium Energy = "Medium"
	EnergyHigh   Energy = "High"
)

func (e Energy) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// MoodEntry is one mood record for a user. There is no uniqueness
// constraint on date; a user may log several entries per day.
type MoodEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	Energy    string `json:"energy"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}

func (e *MoodEntry) Doc() store.Document {
	return store.Document{
		"user_id":    e.UserID,
		"date":       e.Date,
		"mood":       e.Mood,
		"energy":     e.Energy,
		"notes":      e.Notes,
		"created_at": e.CreatedAt,
	}
}

func MoodEntryFromDoc(id string, doc store.Document) *MoodEntry {
	return &MoodEntry{
		ID:        id,
		UserID:    docString(doc, "user_id"),
		Date:      docString(doc, "date"),
		Mood:      docString(doc, "mood"),
		Energy:    docString(doc, "energy"),
		Notes:     docString(doc, "notes"),
		CreatedAt: docString(doc, "created_at"),
	}
}
