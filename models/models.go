package models

import (
	"time"
)

// Entity shapes for the nine collections. The bson tags define the stored
// document layout, the json tags the inbound/outbound API layout, and the
// binding tags the validation applied before any store write.

type User struct {
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	PasswordHash string         `bson:"password_hash" json:"-"`
	Plan         string         `bson:"plan" json:"plan"`
	Preferences  map[string]any `bson:"preferences" json:"preferences"`
	Streak       int            `bson:"streak" json:"streak"`
	SessionToken string         `bson:"session_token,omitempty" json:"-"`
}

type ContentItem struct {
	Title           string   `bson:"title" json:"title" binding:"required"`
	Description     string   `bson:"description,omitempty" json:"description,omitempty"`
	Category        string   `bson:"category" json:"category" binding:"omitempty,oneof=art movement mindfulness"`
	Tags            []string `bson:"tags" json:"tags"`
	Tier            string   `bson:"tier" json:"tier" binding:"omitempty,oneof=free pro"`
	DurationMinutes int      `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	MediaURL        string   `bson:"media_url,omitempty" json:"media_url,omitempty"`
}

type Task struct {
	UserID   string `bson:"user_id" json:"user_id" binding:"required"`
	Week     string `bson:"week" json:"week" binding:"required"`
	TaskType string `bson:"task_type" json:"task_type" binding:"required"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
	// Tri-state on input so an omitted flag can default to true
	Completed *bool `bson:"completed" json:"completed"`
}

type Checkin struct {
	UserID string    `bson:"user_id" json:"user_id" binding:"required"`
	Mood   string    `bson:"mood" json:"mood" binding:"omitempty,oneof=great good ok low"`
	Note   string    `bson:"note,omitempty" json:"note,omitempty"`
	Date   time.Time `bson:"date" json:"date"`
}

type Squad struct {
	Name        string   `bson:"name" json:"name" binding:"required"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID     string   `bson:"owner_id" json:"owner_id" binding:"required"`
	Members     []string `bson:"members" json:"members"`
}

type Post struct {
	UserID    string    `bson:"user_id" json:"user_id" binding:"required"`
	SquadID   string    `bson:"squad_id,omitempty" json:"squad_id,omitempty"`
	Text      string    `bson:"text" json:"text" binding:"required"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Program struct {
	Title       string `bson:"title" json:"title" binding:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Weeks       int    `bson:"weeks" json:"weeks" binding:"omitempty,gte=1"`
	Tier        string `bson:"tier" json:"tier" binding:"omitempty,oneof=free pro"`
}

type Enrollment struct {
	UserID       string `bson:"user_id" json:"user_id" binding:"required"`
	ProgramID    string `bson:"program_id" json:"program_id" binding:"required"`
	ProgressWeek int    `bson:"progress_week" json:"progress_week" binding:"omitempty,gte=0"`
}

type Feedback struct {
	UserID  string `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Message string `bson:"message" json:"message" binding:"required"`
	// Pointer so an explicit 0 fails range validation instead of
	// looking like an omitted rating
	Rating *int `bson:"rating,omitempty" json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
}
