// internal/domain/models/note.go
package models

// Note is a study note with markdown content.
//
// NOTE:
//   - ID is the canonical identifier resolved from whichever field the
//     backend happened to use on the wire (id, noteId, note_id, or no).
//     The resolution lives in the notes feature; everything else in the
//     client only ever sees this one field.
type Note struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	CreatedDate string `json:"createdDate,omitempty"`
}
