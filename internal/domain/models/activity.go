// internal/domain/models/activity.go
package models

// Activity categories as the backend reports them. Anything else is
// treated as a generic extracurricular.
const (
	CategoryContest = "CONTEST"
	CategoryIntern  = "INTERN"
	CategoryLicense = "LICENSE"
)

// ActivityRecommendation is one suggested contest, internship, license,
// or extracurricular. Read-mostly: the client never mutates these.
type ActivityRecommendation struct {
	ID          int64    `json:"id,omitempty"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Link        string   `json:"link,omitempty"`
}
