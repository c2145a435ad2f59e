// internal/domain/models/feedback.go
package models

// Feedback is the AI-generated semester retrospective. The backend
// stores the three parts as opaque text blocks; the client renders
// them as-is.
type Feedback struct {
	Achievements    string `json:"achievements,omitempty"`
	Analysis        string `json:"analysis,omitempty"`
	Recommendations string `json:"recommendations,omitempty"`
}
