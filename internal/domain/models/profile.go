// internal/domain/models/profile.go
package models

// Profile is the user-entered roadmap profile, persisted server-side.
//
// NOTE:
//   - The backend stores the generated plan collection and analysis as
//     opaque JSON strings on the same record (RoadmapJSON / AnalysisResult).
//     Parsing those strings into typed values happens in the roadmap
//     feature, not here.
//   - The record is replaced wholesale on re-submission; there is no
//     field-level patching.
type Profile struct {
	Name          string `json:"name,omitempty"`
	Major         string `json:"major"`
	Grade         string `json:"grade"`
	Semester      string `json:"semester"`
	TargetJob     string `json:"targetJob"`
	TargetCompany string `json:"targetCompany,omitempty"`
	TechStacks    string `json:"techStacks,omitempty"`
	CurrentSpecs  string `json:"currentSpecs,omitempty"`
	Courses       string `json:"courses,omitempty"`
	Projects      string `json:"projects,omitempty"`
	GPA           string `json:"gpa,omitempty"`
	Language      string `json:"language,omitempty"`

	RoadmapJSON    string `json:"roadmapJson,omitempty"`
	AnalysisResult string `json:"analysisResult,omitempty"`
}
