// internal/app/features/activity/controller.go
package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"careermate/internal/app/features/roadmap"
	"careermate/internal/app/system/api"
	"careermate/internal/domain/models"
)

// ErrNoTargetJob means recommendations cannot run because the roadmap
// profile has no target job yet.
var ErrNoTargetJob = errors.New("set a target job in the roadmap first")

// Display kinds the category mapping produces.
const (
	KindContest       = "contest"
	KindInternship    = "internship"
	KindCertification = "certification"
	KindActivity      = "activity"
)

// Controller drives the activity-recommendation page: saved
// recommendations, fresh AI suggestions, and hiring-trend news for the
// user's target job.
type Controller struct {
	API *api.Client
	Log *zap.Logger

	mu      sync.Mutex
	profile models.Profile
	items   []models.ActivityRecommendation
	trends  []models.NewsItem
}

// Load pulls the roadmap profile for the target job, then the saved
// recommendation list and hiring-trend news. A profile without a target
// job resets the page to empty rather than showing stale results.
func (c *Controller) Load(ctx context.Context) error {
	var profile models.Profile
	if err := c.API.Get(ctx, "/api/major/my-roadmap", &profile); err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			c.reset()
			return nil
		}
		return err
	}
	if profile.TargetJob == "" {
		c.reset()
		return nil
	}

	var saved []models.ActivityRecommendation
	if err := c.API.Get(ctx, "/api/activity/my-list", &saved); err != nil {
		c.Log.Warn("saved activity list failed", zap.Error(err))
		saved = nil
	}

	trends, err := roadmap.FetchNews(ctx, c.API, "/api/news/search", profile.TargetJob+" 채용 동향")
	if err != nil {
		c.Log.Warn("hiring trend search failed", zap.Error(err))
	}

	c.mu.Lock()
	c.profile = profile
	c.items = saved
	c.trends = trends
	c.mu.Unlock()
	return nil
}

// Recommend asks the backend for fresh suggestions and replaces the
// current list. The whole loaded profile goes out, since the backend
// builds its prompt from the major and grade as well as the target job.
func (c *Controller) Recommend(ctx context.Context) error {
	c.mu.Lock()
	profile := c.profile
	c.mu.Unlock()
	if profile.TargetJob == "" {
		return ErrNoTargetJob
	}

	var raw json.RawMessage
	if err := c.API.Post(ctx, "/api/activity/recommend", profile, &raw); err != nil {
		return err
	}
	items, err := decodeRecommendations(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// decodeRecommendations reads the activities wrapper the backend
// answers with, falling back to a bare array.
func decodeRecommendations(raw []byte) ([]models.ActivityRecommendation, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var wrapped struct {
		Activities []models.ActivityRecommendation `json:"activities"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Activities != nil {
		return wrapped.Activities, nil
	}
	var items []models.ActivityRecommendation
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return items, nil
}

// TargetJob returns the loaded target job, or "".
func (c *Controller) TargetJob() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.TargetJob
}

// Items returns the current recommendations.
func (c *Controller) Items() []models.ActivityRecommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ActivityRecommendation, len(c.items))
	copy(out, c.items)
	return out
}

// Trends returns hiring-trend news for the target job.
func (c *Controller) Trends() []models.NewsItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trends
}

func (c *Controller) reset() {
	c.mu.Lock()
	c.profile = models.Profile{}
	c.items = nil
	c.trends = nil
	c.mu.Unlock()
}

// Kind maps a backend category to its display kind. Unknown categories
// read as a generic extracurricular.
func Kind(category string) string {
	switch category {
	case models.CategoryContest:
		return KindContest
	case models.CategoryIntern:
		return KindInternship
	case models.CategoryLicense:
		return KindCertification
	}
	return KindActivity
}

// Link returns the recommendation's link, falling back to a web search
// for its title when the backend sent none.
func Link(item models.ActivityRecommendation) string {
	if item.Link != "" {
		return item.Link
	}
	return "https://www.google.com/search?q=" + url.QueryEscape(item.Title)
}
