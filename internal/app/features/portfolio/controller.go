// internal/app/features/portfolio/controller.go
package portfolio

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"careermate/internal/app/system/api"
	"careermate/internal/domain/models"
)

// Controller manages the four free-text portfolio sections. Sections
// edit independently but the backend persists the record whole, so
// every save sends the full document.
type Controller struct {
	API *api.Client
	Log *zap.Logger

	mu      sync.Mutex
	content models.Portfolio
}

// Load fetches the stored portfolio. A user who has never saved one
// gets the empty document, not an error.
func (c *Controller) Load(ctx context.Context) error {
	var content models.Portfolio
	if err := c.API.Get(ctx, "/api/portfolio", &content); err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			content = models.Portfolio{}
		} else {
			return err
		}
	}
	c.mu.Lock()
	c.content = content
	c.mu.Unlock()
	return nil
}

// SaveSection updates one section and persists the whole document,
// mirroring the auto-save-on-blur behavior of the edit form.
func (c *Controller) SaveSection(ctx context.Context, name, text string) error {
	return c.mutate(ctx, name, func(section *string) { *section = text })
}

// ResetSection empties one section and persists.
func (c *Controller) ResetSection(ctx context.Context, name string) error {
	return c.mutate(ctx, name, func(section *string) { *section = "" })
}

// Generate asks the backend to draft one section, stores the result
// locally, and persists it.
func (c *Controller) Generate(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	if c.content.Section(name) == nil {
		c.mu.Unlock()
		return "", fmt.Errorf("unknown portfolio section %q", name)
	}
	c.mu.Unlock()

	var reply struct {
		Content string `json:"content"`
	}
	err := c.API.Post(ctx, "/api/portfolio/ai-generate", map[string]string{
		"section": name,
	}, &reply)
	if err != nil {
		return "", err
	}
	if err := c.SaveSection(ctx, name, reply.Content); err != nil {
		return "", err
	}
	return reply.Content, nil
}

// Content returns the current document.
func (c *Controller) Content() models.Portfolio {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

func (c *Controller) mutate(ctx context.Context, name string, apply func(*string)) error {
	c.mu.Lock()
	section := c.content.Section(name)
	if section == nil {
		c.mu.Unlock()
		return fmt.Errorf("unknown portfolio section %q", name)
	}
	apply(section)
	snapshot := c.content
	c.mu.Unlock()

	if err := c.API.Post(ctx, "/api/portfolio/save", snapshot, nil); err != nil {
		return err
	}
	return nil
}
