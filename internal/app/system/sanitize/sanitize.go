// Package sanitize strips residual HTML from backend-enriched text.
//
// The news search endpoint proxies an external feed whose titles and
// summaries occasionally carry markup (<b> highlights, entities). The
// client renders to a terminal, so everything is reduced to plain text
// at this boundary.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"careermate/internal/domain/models"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML elements and unescapes entities, returning
// plain text suitable for terminal display.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// News cleans every item's title and summary in place and returns the
// slice for convenience.
func News(items []models.NewsItem) []models.NewsItem {
	for i := range items {
		items[i].Title = Text(items[i].Title)
		items[i].Summary = Text(items[i].Summary)
	}
	return items
}
