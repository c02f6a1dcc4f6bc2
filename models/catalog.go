package models

// College is static reference data seeded at startup and served read-only.
type College struct {
	ID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	Location   string  `gorm:"size:255;not null" json:"location"`
	Type       string  `gorm:"size:50;not null" json:"type"`
	Courses    string  `gorm:"not null" json:"courses"`
	Facilities string  `json:"facilities,omitempty"`
	Cutoff     float64 `json:"cutoff,omitempty"`
	Contact    string  `gorm:"size:100" json:"contact,omitempty"`
	Website    string  `gorm:"size:255" json:"website,omitempty"`
}

// Course is static reference data seeded at startup and served read-only.
type Course struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Stream      string `gorm:"size:50;not null" json:"stream"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	CareerPaths string `json:"career_paths,omitempty"`
	Subjects    string `json:"subjects,omitempty"`
}
