// internal/domain/models/portfolio.go
package models

// Portfolio section names, matching the backend's section parameter.
const (
	SectionIntro      = "intro"
	SectionStack      = "stack"
	SectionProjects   = "projects"
	SectionActivities = "activities"
)

// Portfolio holds the four free-text sections. Each section is edited
// and reset independently, but the backend persists the record whole.
type Portfolio struct {
	Intro      string `json:"intro"`
	Stack      string `json:"stack"`
	Projects   string `json:"projects"`
	Activities string `json:"activities"`
}

// Section returns a pointer to the named section, or nil if the name
// is unknown.
func (p *Portfolio) Section(name string) *string {
	switch name {
	case SectionIntro:
		return &p.Intro
	case SectionStack:
		return &p.Stack
	case SectionProjects:
		return &p.Projects
	case SectionActivities:
		return &p.Activities
	}
	return nil
}
