package models

import (
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

// User profile. The id is issued by the external auth provider, not
// generated here. Goals are stored but drive no filtering logic.
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Age       int      `json:"age"`
	Goals     []string `json:"goals"`
	CreatedAt string   `json:"created_at"`
}

func (u *User) Doc() store.Document {
	goals := u.Goals
	if goals == nil {
		goals = []string{}
	}
	return store.Document{
		"email":      u.Email,
		"username":   u.Username,
		"age":        u.Age,
		"goals":      goals,
		"created_at": u.CreatedAt,
	}
}

func UserFromDoc(id string, doc store.Document) *User {
	return &User{
		ID:        id,
		Email:     docString(doc, "email"),
		Username:  docString(doc, "username"),
		Age:       docInt(doc, "age"),
		Goals:     docStrings(doc, "goals"),
		CreatedAt: docString(doc, "created_at"),
	}
}
