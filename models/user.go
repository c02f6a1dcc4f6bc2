package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // Hashed password (excluded from JSON)
	Age       int       `json:"age,omitempty"`
	Gender    string    `gorm:"size:50" json:"gender,omitempty"`
	Class     string    `gorm:"size:50" json:"class,omitempty"`
	Interests string    `json:"interests,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	QuizResults []QuizResult `gorm:"foreignKey:UserID" json:"quiz_results,omitempty"`
}

// PublicUser is the client-facing view of a user. The password hash never
// leaves the server.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
