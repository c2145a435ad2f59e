// internal/domain/models/plan.go
package models

import "encoding/json"

// ChecklistItem is one entry of a semester plan's goal, course, or
// activity list.
//
// The backend serializes items in two historical shapes: a bare string
// (legacy, implicitly incomplete) or an object {content, isCompleted}.
// An item stays in whichever shape it arrived in until its first toggle;
// once normalized to the object shape it never reverts to a string.
type ChecklistItem struct {
	Content   string
	Completed bool

	// normalized reports whether the item carries an explicit
	// completion flag on the wire.
	normalized bool
}

// NewChecklistItem returns an item already in the object shape.
func NewChecklistItem(content string, completed bool) ChecklistItem {
	return ChecklistItem{Content: content, Completed: completed, normalized: true}
}

// Normalized reports whether the item has been promoted to the object
// shape (either on the wire or by a toggle).
func (c ChecklistItem) Normalized() bool { return c.normalized }

// Toggle flips the completion state. A bare-string item has no prior
// "false" state to invert, so its first toggle always completes it and
// promotes it to the object shape.
func (c *ChecklistItem) Toggle() {
	if !c.normalized {
		c.normalized = true
		c.Completed = true
		return
	}
	c.Completed = !c.Completed
}

func (c *ChecklistItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ChecklistItem{Content: s}
		return nil
	}
	var obj struct {
		Content   string `json:"content"`
		Completed bool   `json:"isCompleted"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*c = ChecklistItem{Content: obj.Content, Completed: obj.Completed, normalized: true}
	return nil
}

func (c ChecklistItem) MarshalJSON() ([]byte, error) {
	if !c.normalized {
		return json.Marshal(c.Content)
	}
	return json.Marshal(struct {
		Content   string `json:"content"`
		Completed bool   `json:"isCompleted"`
	}{c.Content, c.Completed})
}

// SemesterPlan is one unit of the generated roadmap, finishable exactly
// once. Items inside it are addressed positionally (semester index,
// category, item index); they carry no stable identifiers.
type SemesterPlan struct {
	Grade      string          `json:"grade"`
	Goal       []ChecklistItem `json:"goal"`
	Courses    []ChecklistItem `json:"courses"`
	Activities []ChecklistItem `json:"activities"`
	IsFinished bool            `json:"isFinished,omitempty"`
}

// Analysis is the strengths/gaps/mission payload the backend attaches
// to a generated roadmap.
type Analysis struct {
	OverallReview        string     `json:"overallReview,omitempty"`
	Strengths            []string   `json:"strengths,omitempty"`
	Gaps                 GapReport  `json:"gaps"`
	TopMissions          []string   `json:"topMissions,omitempty"`
	RecommendedResources []Resource `json:"recommendedResources,omitempty"`
}

// GapReport compares owned against missing competencies.
type GapReport struct {
	Owned      []string       `json:"owned,omitempty"`
	Missing    []MissingSkill `json:"missing,omitempty"`
	AIFeedback string         `json:"aiFeedback,omitempty"`
}

// MissingSkill names a gap and how to close it.
type MissingSkill struct {
	Name   string `json:"name"`
	Method string `json:"method"`
}

// Resource is a recommended book, lecture, or similar.
type Resource struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}
