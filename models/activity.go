package models

import (
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

// ActivityType classifies catalog activities.
type ActivityType string

const (
	ActivityPhysical  ActivityType = "Physical"
	ActivityMental    ActivityType = "Mental"
	ActivitySpiritual ActivityType = "Spiritual"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityPhysical, ActivityMental, ActivitySpiritual:
		return true
	}
	return false
}

// Activity is a global catalog entry, not scoped to a user.
type Activity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Duration    int    `json:"duration"` // minutes
	Description string `json:"description,omitempty"`
}

func (a *Activity) Doc() store.Document {
	return store.Document{
		"name":        a.Name,
		"type":        a.Type,
		"duration":    a.Duration,
		"description": a.Description,
	}
}

func ActivityFromDoc(id string, doc store.Document) *Activity {
	return &Activity{
		ID:          id,
		Name:        docString(doc, "name"),
		Type:        docString(doc, "type"),
		Duration:    docInt(doc, "duration"),
		Description: docString(doc, "description"),
	}
}

// UserActivityLog is a logged instance of an activity a user performed,
// distinct from the Activity catalog.
type UserActivityLog struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	ActivityName string `json:"activity_name"`
	Duration     int    `json:"duration"`
	Date         string `json:"date"`
	Timestamp    string `json:"timestamp"`
}

func (l *UserActivityLog) Doc() store.Document {
	return store.Document{
		"activity_name": l.ActivityName,
		"duration":      l.Duration,
		"date":          l.Date,
		"timestamp":     l.Timestamp,
	}
}

func UserActivityLogFromDoc(userID, id string, doc store.Document) *UserActivityLog {
	return &UserActivityLog{
		ID:           id,
		UserID:       userID,
		ActivityName: docString(doc, "activity_name"),
		Duration:     docInt(doc, "duration"),
		Date:         docString(doc, "date"),
		Timestamp:    docString(doc, "timestamp"),
	}
}
