package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobMatch is a candidate role triggered by keyword clusters. MatchPercentage
// is a fixed per-rule label, not a computed confidence.
type JobMatch struct {
	Title           string `json:"title"`
	MatchPercentage string `json:"matchPercentage"`
	Reason          string `json:"reason"`
}

// AnalysisResult is the full outcome of one resume analysis. It is stored
// as a single jsonb column on the resume record.
type AnalysisResult struct {
	Score           int        `json:"score"`
	Summary         string     `json:"summary"`
	Pros            []string   `json:"pros"`
	Cons            []string   `json:"cons"`
	Recommendations []string   `json:"recommendations"`
	Jobs            []JobMatch `json:"jobs"`
}

func (a AnalysisResult) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnalysisResult) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported analysis column type %T", value)
	}
	return json.Unmarshal(raw, a)
}

type Resume struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName  string         `gorm:"type:text" json:"file_name"`
	Score     int            `gorm:"not null" json:"score"`
	Analysis  AnalysisResult `gorm:"type:jsonb" json:"analysis"`
	CreatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
