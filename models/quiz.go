package models

import (
	"time"
)

// QuizResult records a single quiz submission. Answers and Recommendations
// are stored as JSON-encoded text, immutable once written.
type QuizResult struct {
	ID              string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizType        string    `gorm:"size:50;not null" json:"quiz_type"`
	Answers         string    `gorm:"not null" json:"answers"`
	Score           int       `json:"score"`
	Recommendations string    `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// StudyMaterial mirrors the study_materials table. Nothing serves it yet;
// it is migrated so the schema stays complete.
type StudyMaterial struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Subject     string  `gorm:"size:100;not null" json:"subject"`
	Type        string  `gorm:"size:50;not null" json:"type"`
	FilePath    string  `gorm:"size:500" json:"file_path,omitempty"`
	Description string  `json:"description,omitempty"`
	CourseID    *string `gorm:"type:uuid" json:"course_id,omitempty"`

	// Relationships
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
