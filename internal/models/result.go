package models

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AnalyzeResponse echoes the analysis back to the caller together with the
// identifier of the persisted record.
type AnalyzeResponse struct {
	ID              string     `json:"id"`
	FileName        string     `json:"file_name"`
	Score           int        `json:"score"`
	Summary         string     `json:"summary"`
	Pros            []string   `json:"pros"`
	Cons            []string   `json:"cons"`
	Recommendations []string   `json:"recommendations"`
	Jobs            []JobMatch `json:"jobs"`
}

type ResumeListItem struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
