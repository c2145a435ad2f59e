// internal/app/features/notes/controller.go
package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"careermate/internal/app/system/api"
	"careermate/internal/app/system/validate"
	"careermate/internal/domain/models"
)

// ErrNoSelection means an operation needed a selected note and none
// was selected (or the selection vanished server-side).
var ErrNoSelection = errors.New("no note selected")

// Sort orders for the note list.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortTitle  = "title"
)

// Controller is the study-note CRUD surface. It is deliberately
// pessimistic, the opposite of the roadmap feature: notes have a real
// server identifier, so every mutation refetches the authoritative
// list and re-resolves the selection from it instead of patching local
// state.
type Controller struct {
	API *api.Client
	Log *zap.Logger

	mu       sync.Mutex
	notes    []models.Note
	selected int64
}

// noteWire tolerates every identifier spelling the backend has used.
// Exactly one of the four is set per deployment, but nothing guarantees
// which.
type noteWire struct {
	ID          *int64 `json:"id"`
	NoteID      *int64 `json:"noteId"`
	NoteID2     *int64 `json:"note_id"`
	No          *int64 `json:"no"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	CreatedDate string `json:"createdDate"`
}

// canonical resolves the identifier and returns the internal Note. A
// record with no recognizable identifier is dropped by the caller.
func (w noteWire) canonical() (models.Note, bool) {
	var id int64
	switch {
	case w.ID != nil:
		id = *w.ID
	case w.NoteID != nil:
		id = *w.NoteID
	case w.NoteID2 != nil:
		id = *w.NoteID2
	case w.No != nil:
		id = *w.No
	default:
		return models.Note{}, false
	}
	return models.Note{
		ID:          id,
		Title:       w.Title,
		Category:    w.Category,
		Content:     w.Content,
		CreatedDate: w.CreatedDate,
	}, true
}

// Load fetches the full note list.
func (c *Controller) Load(ctx context.Context) error {
	return c.refresh(ctx)
}

// Create adds a note, then refetches the list and selects the created
// note in it (matched by title and content, since the create reply's
// identifier field is as unreliable as everything else).
func (c *Controller) Create(ctx context.Context, title, category, content string) error {
	if err := validate.FirstRequired("title", title, "content", content); err != nil {
		return err
	}
	body := map[string]string{
		"title":    title,
		"category": category,
		"content":  content,
	}
	var reply json.RawMessage
	if err := c.API.Post(ctx, "/api/notes", body, &reply); err != nil {
		return err
	}
	if err := c.refresh(ctx); err != nil {
		return err
	}

	if id, ok := wireID(reply); ok {
		c.reselect(id)
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.notes) - 1; i >= 0; i-- {
		if c.notes[i].Title == title && c.notes[i].Content == content {
			c.selected = c.notes[i].ID
			break
		}
	}
	return nil
}

// Update rewrites the selected note, refetches, and re-resolves the
// selection by canonical id.
func (c *Controller) Update(ctx context.Context, title, category, content string) error {
	c.mu.Lock()
	id := c.selected
	c.mu.Unlock()
	if id == 0 {
		return ErrNoSelection
	}
	if err := validate.FirstRequired("title", title, "content", content); err != nil {
		return err
	}
	body := map[string]string{
		"title":    title,
		"category": category,
		"content":  content,
	}
	if err := c.API.Put(ctx, fmt.Sprintf("/api/notes/%d", id), body, nil); err != nil {
		return err
	}
	if err := c.refresh(ctx); err != nil {
		return err
	}
	c.reselect(id)
	return nil
}

// Delete removes the selected note and refetches. The selection is
// cleared; the deleted id cannot re-resolve.
func (c *Controller) Delete(ctx context.Context) error {
	c.mu.Lock()
	id := c.selected
	c.mu.Unlock()
	if id == 0 {
		return ErrNoSelection
	}
	if err := c.API.Delete(ctx, fmt.Sprintf("/api/notes/%d", id)); err != nil {
		return err
	}
	if err := c.refresh(ctx); err != nil {
		return err
	}
	c.reselect(id)
	return nil
}

// Select picks a note by canonical id.
func (c *Controller) Select(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.notes {
		if n.ID == id {
			c.selected = id
			return nil
		}
	}
	return fmt.Errorf("note %d not in list", id)
}

// Selected returns the selected note, if any.
func (c *Controller) Selected() (models.Note, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.notes {
		if n.ID == c.selected {
			return n, true
		}
	}
	return models.Note{}, false
}

// List returns notes sorted by the given order, optionally filtered by
// category ("" for all).
func (c *Controller) List(category, order string) []models.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.Note
	for _, n := range c.notes {
		if category == "" || n.Category == category {
			out = append(out, n)
		}
	}
	switch order {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

// Categories returns the distinct category names present in the list,
// sorted. There is no fixed category enum; the set is whatever the
// user's notes use.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, n := range c.notes {
		if n.Category != "" && !seen[n.Category] {
			seen[n.Category] = true
			out = append(out, n.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Ask sends the selected note's content plus a question to the AI
// endpoint. The reply is either {"answer": ...} or a bare string.
func (c *Controller) Ask(ctx context.Context, question string) (string, error) {
	note, ok := c.Selected()
	if !ok {
		return "", ErrNoSelection
	}
	if err := validate.Required("question", question); err != nil {
		return "", err
	}
	var raw json.RawMessage
	err := c.API.Post(ctx, "/api/ai/ask", map[string]string{
		"noteContent": note.Content,
		"question":    question,
	}, &raw)
	if err != nil {
		return "", err
	}

	var wrapped struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Answer != "" {
		return wrapped.Answer, nil
	}
	var bare string
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	return "", fmt.Errorf("unrecognized answer payload")
}

// refresh refetches the authoritative list, dropping records whose
// identifier cannot be resolved.
func (c *Controller) refresh(ctx context.Context) error {
	var wire []noteWire
	if err := c.API.Get(ctx, "/api/notes", &wire); err != nil {
		return err
	}
	notes := make([]models.Note, 0, len(wire))
	for _, w := range wire {
		n, ok := w.canonical()
		if !ok {
			c.Log.Warn("note without identifier dropped", zap.String("title", w.Title))
			continue
		}
		notes = append(notes, n)
	}
	c.mu.Lock()
	c.notes = notes
	c.mu.Unlock()
	return nil
}

// reselect keeps the selection only if the id still resolves in the
// fresh list.
func (c *Controller) reselect(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.notes {
		if n.ID == id {
			c.selected = id
			return
		}
	}
	c.selected = 0
}

// wireID pulls a canonical id out of a single-note reply body.
func wireID(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var w noteWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return 0, false
	}
	n, ok := w.canonical()
	return n.ID, ok
}
