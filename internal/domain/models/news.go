// internal/domain/models/news.go
package models

// NewsItem is one article from the backend's keyword news search.
// Titles and summaries may arrive with residual HTML from the upstream
// feed; they are cleaned at the display boundary, not here.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Summary     string `json:"summary,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}
