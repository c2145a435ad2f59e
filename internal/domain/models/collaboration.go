// internal/domain/models/collaboration.go
package models

import "time"

// Group kinds.
const (
	GroupProject = "PROJECT"
	GroupStudy   = "STUDY"
)

// Message senders/kinds.
const (
	MessageSystem = "system"
)

// Group is a collaboration space (project or study group).
//
// NOTE:
//   - Groups live exclusively in device-local storage; there is no
//     backend counterpart and no cross-device sync.
//   - The ID is the unix-millisecond creation timestamp. Insertion
//     order is recoverable from it, which the list projections rely on.
type Group struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Members   int        `json:"members"`
	Tags      []string   `json:"tags,omitempty"`
	Messages  []Message  `json:"messages"`
	Schedules []Schedule `json:"schedules"`
	Documents []Document `json:"documents"`
	Notice    string     `json:"notice"`
}

// Message is one chat entry; append-only within its group.
type Message struct {
	ID     string    `json:"id"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
	IsMe   bool      `json:"isMe"`
	Type   string    `json:"type,omitempty"` // "system" or empty
}

// Schedule is a dated milestone. DDay is the whole-day countdown
// computed once at creation and intentionally never refreshed.
type Schedule struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"`
	DDay  int    `json:"dday"`
}

// Document is a shared link or local file reference.
type Document struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Uploader string `json:"uploader"`
	Date     string `json:"date"` // YYYY-MM-DD
	Type     string `json:"type"` // "link" or "file"
	Link     string `json:"link,omitempty"`
	Size     string `json:"size,omitempty"`
}
