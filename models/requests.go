package models

// Request payloads bound by the controllers. Required fields use
// binding:"required", which rejects zero values: a required field sent
// as 0 or "" is treated as missing.

// CreateUserRequest creates a profile after external auth signup.
type CreateUserRequest struct {
	UserID   string   `json:"user_id" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Age      int      `json:"age" binding:"required"`
	Goals    []string `json:"goals"`
}

// UpdateGoalsRequest replaces a user's goal list.
type UpdateGoalsRequest struct {
	Goals []string `json:"goals"`
}

// CreateMoodRequest logs a mood entry. Date defaults to today.
type CreateMoodRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Mood   string `json:"mood" binding:"required"`
	Energy string `json:"energy" binding:"required"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

// CreateJournalRequest writes a journal entry. Date defaults to today.
type CreateJournalRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required"`
	Date    string `json:"date"`
	Prompt  string `json:"prompt"`
}

// CreateActivityRequest adds a catalog activity.
type CreateActivityRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	Description string `json:"description"`
}

// LogActivityRequest records an activity a user performed.
type LogActivityRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	ActivityName string `json:"activity_name" binding:"required"`
	Duration     int    `json:"duration" binding:"required"`
	Date         string `json:"date" binding:"required"`
}

// CreateContentRequest adds a catalog content item.
type CreateContentRequest struct {
	Text     string   `json:"text" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
	Author   string   `json:"author"`
}

// TokenRequest issues a JWT for an already-created user id.
type TokenRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// ChatRequest asks the wellness coach for a reply.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Mood    string `json:"mood"`
}
