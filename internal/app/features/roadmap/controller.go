// internal/app/features/roadmap/controller.go
package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"careermate/internal/app/store/formcache"
	"careermate/internal/app/system/api"
	"careermate/internal/app/system/sanitize"
	"careermate/internal/app/system/timeouts"
	"careermate/internal/app/system/validate"
	"careermate/internal/domain/models"
)

var (
	// ErrNoProfile means the user has not filled in the roadmap form
	// yet; callers show the blank form instead of an error.
	ErrNoProfile = errors.New("no roadmap profile yet")

	// ErrAlreadyFinished guards the one-way finish-semester action.
	ErrAlreadyFinished = errors.New("semester already finished")

	errNoPlans = errors.New("no roadmap loaded")
)

// Checklist categories addressable inside a semester plan.
const (
	CategoryGoal       = "goal"
	CategoryCourses    = "courses"
	CategoryActivities = "activities"
)

// FinishResult reports how a finish-semester call ended. The finish
// itself always commits; only the follow-up feedback generation can
// lag behind.
type FinishResult struct {
	FinishedGrade   string
	FeedbackDelayed bool
}

// Controller owns the in-memory roadmap state and reconciles it with
// the backend.
//
// Checklist toggles are optimistic: the local mutation is applied
// immediately and the persistence call runs in the background. A failed
// save is logged and dropped, never rolled back; the user's completion
// mark stays put and the next successful save carries it.
type Controller struct {
	API   *api.Client
	Forms *formcache.Store
	Log   *zap.Logger

	mu       sync.Mutex
	profile  models.Profile
	plans    []models.SemesterPlan
	analysis *models.Analysis
	news     []models.NewsItem

	pending sync.WaitGroup
}

// Load fetches the stored profile, the serialized plan collection, the
// analysis, and fresh news. The three artifacts degrade independently:
// an unparseable analysis or a failed news search never blocks the
// roadmap itself.
func (c *Controller) Load(ctx context.Context) error {
	var reply models.Profile
	if err := c.API.Get(ctx, "/api/major/my-roadmap", &reply); err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			return ErrNoProfile
		}
		return err
	}
	if reply.Major == "" && reply.TargetJob == "" && reply.RoadmapJSON == "" {
		return ErrNoProfile
	}

	plans, err := decodePlans(reply.RoadmapJSON)
	if err != nil {
		return fmt.Errorf("decode stored roadmap: %w", err)
	}
	analysis := decodeAnalysis([]byte(reply.AnalysisResult))
	if analysis == nil && strings.TrimSpace(reply.AnalysisResult) != "" {
		c.Log.Warn("stored analysis unparseable, showing roadmap without it")
	}
	news := c.fetchNews(ctx, reply.TargetJob+" 채용")

	c.mu.Lock()
	c.profile = reply
	c.plans = plans
	c.analysis = analysis
	c.news = news
	c.mu.Unlock()
	return nil
}

// Analyze submits the profile form and replaces the local roadmap with
// the generated one. Major, grade, and target job are checked before
// any request goes out.
func (c *Controller) Analyze(ctx context.Context, form models.Profile) error {
	err := validate.FirstRequired(
		"major", form.Major,
		"grade", form.Grade,
		"targetJob", form.TargetJob,
	)
	if err != nil {
		return err
	}

	var reply struct {
		SemesterPlans []models.SemesterPlan `json:"semesterPlans"`
		Analysis      json.RawMessage       `json:"analysis"`
		NewsList      []models.NewsItem     `json:"newsList"`
	}
	if err := c.API.Post(ctx, "/api/major/analyze", form, &reply); err != nil {
		return err
	}

	news := reply.NewsList
	sanitize.News(news)

	c.mu.Lock()
	c.profile = form
	c.plans = reply.SemesterPlans
	c.analysis = decodeAnalysis(reply.Analysis)
	c.news = news
	c.mu.Unlock()

	// The form made it to the backend; the half-filled draft is done.
	if err := c.Forms.Clear(); err != nil {
		c.Log.Warn("clear form cache", zap.Error(err))
	}
	return nil
}

// ToggleItem flips one checklist entry, addressed by semester index,
// category, and item index. The flip lands locally first; persistence
// runs in the background (see Wait).
func (c *Controller) ToggleItem(semesterIdx int, category string, itemIdx int) error {
	c.mu.Lock()
	if semesterIdx < 0 || semesterIdx >= len(c.plans) {
		c.mu.Unlock()
		return fmt.Errorf("semester %d out of range", semesterIdx)
	}
	items := categoryItems(&c.plans[semesterIdx], category)
	if items == nil {
		c.mu.Unlock()
		return fmt.Errorf("unknown category %q", category)
	}
	if itemIdx < 0 || itemIdx >= len(*items) {
		c.mu.Unlock()
		return fmt.Errorf("item %d out of range in %s", itemIdx, category)
	}
	(*items)[itemIdx].Toggle()
	snapshot, err := encodePlans(c.plans)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.pending.Add(1)
	go c.persist(snapshot)
	return nil
}

// FinishSemester marks one semester finished and asks the backend to
// generate feedback for it. The finished flag is one-way: it is set
// before any network call and never rolled back, even when feedback
// generation fails (the caller gets FeedbackDelayed instead).
func (c *Controller) FinishSemester(ctx context.Context, semesterIdx int) (FinishResult, error) {
	c.mu.Lock()
	if len(c.plans) == 0 {
		c.mu.Unlock()
		return FinishResult{}, errNoPlans
	}
	if semesterIdx < 0 || semesterIdx >= len(c.plans) {
		c.mu.Unlock()
		return FinishResult{}, fmt.Errorf("semester %d out of range", semesterIdx)
	}
	if c.plans[semesterIdx].IsFinished {
		c.mu.Unlock()
		return FinishResult{}, ErrAlreadyFinished
	}
	c.plans[semesterIdx].IsFinished = true
	grade := c.plans[semesterIdx].Grade
	snapshot, err := encodePlans(c.plans)
	c.mu.Unlock()
	if err != nil {
		return FinishResult{}, err
	}

	res := FinishResult{FinishedGrade: grade}

	// Feedback only regenerates from the saved plan, so a failed save
	// means the feedback is stale until the next successful one.
	if err := c.API.Post(ctx, "/api/major/update-progress", progressBody(snapshot), nil); err != nil {
		c.Log.Warn("persist plans before finish", zap.String("grade", grade), zap.Error(err))
		res.FeedbackDelayed = true
		return res, nil
	}

	err = c.API.Post(ctx, "/api/major/finish-semester", map[string]string{
		"roadmapJson":   snapshot,
		"finishedGrade": grade,
	}, nil)
	if err != nil {
		c.Log.Warn("feedback generation delayed", zap.String("grade", grade), zap.Error(err))
		res.FeedbackDelayed = true
	}
	return res, nil
}

// Wait blocks until every background progress save has completed. The
// CLI calls it before exiting so a fire-and-forget save is not killed
// by process teardown.
func (c *Controller) Wait() {
	c.pending.Wait()
}

// SaveForm caches half-filled form input across restarts.
func (c *Controller) SaveForm(form models.Profile) error {
	return c.Forms.Save(form)
}

// CachedForm returns the cached form input, if any.
func (c *Controller) CachedForm() (models.Profile, bool) {
	return c.Forms.Load()
}

/*─────────────────────────────────────────────────────────────────────────────*
| State accessors                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// Profile returns the loaded profile.
func (c *Controller) Profile() models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// Plans returns the current plan collection. Treat the result as
// read-only; mutations go through ToggleItem and FinishSemester.
func (c *Controller) Plans() []models.SemesterPlan {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.SemesterPlan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Analysis returns the loaded analysis, or nil when none parsed.
func (c *Controller) Analysis() *models.Analysis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analysis
}

// News returns the articles fetched alongside the roadmap.
func (c *Controller) News() []models.NewsItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.news
}

/*─────────────────────────────────────────────────────────────────────────────*
| Wire helpers                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (c *Controller) persist(snapshot string) {
	defer c.pending.Done()
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Medium())
	defer cancel()
	if err := c.API.Post(ctx, "/api/major/update-progress", progressBody(snapshot), nil); err != nil {
		c.Log.Warn("progress save failed, keeping local state", zap.Error(err))
	}
}

func (c *Controller) fetchNews(ctx context.Context, keyword string) []models.NewsItem {
	items, err := FetchNews(ctx, c.API, "/api/major/news", keyword)
	if err != nil {
		c.Log.Warn("news search failed", zap.String("keyword", keyword), zap.Error(err))
		return nil
	}
	return items
}

// FetchNews runs a keyword news search against the given endpoint and
// strips residual feed HTML from the results. Shared with the activity
// feature, which searches hiring trends through a different route.
func FetchNews(ctx context.Context, client *api.Client, endpoint, keyword string) ([]models.NewsItem, error) {
	var raw json.RawMessage
	path := endpoint + "?keyword=" + url.QueryEscape(keyword)
	if err := client.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	items, err := decodeNewsItems(raw)
	if err != nil {
		return nil, err
	}
	sanitize.News(items)
	return items, nil
}

// Both news routes answer with a bare article array. The newsList
// wrapper only appears inside analyze replies, but reads here accept
// it too.
func decodeNewsItems(raw []byte) ([]models.NewsItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []models.NewsItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var wrapped struct {
		NewsList []models.NewsItem `json:"newsList"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}
	return wrapped.NewsList, nil
}

func progressBody(snapshot string) map[string]string {
	return map[string]string{"roadmapJson": snapshot}
}

func categoryItems(plan *models.SemesterPlan, category string) *[]models.ChecklistItem {
	switch category {
	case CategoryGoal:
		return &plan.Goal
	case CategoryCourses:
		return &plan.Courses
	case CategoryActivities:
		return &plan.Activities
	}
	return nil
}

// encodePlans serializes the plan collection in the canonical wrapped
// shape. Reads tolerate both historical shapes; writes always produce
// this one.
func encodePlans(plans []models.SemesterPlan) (string, error) {
	data, err := json.Marshal(struct {
		SemesterPlans []models.SemesterPlan `json:"semesterPlans"`
	}{plans})
	if err != nil {
		return "", fmt.Errorf("encode roadmap: %w", err)
	}
	return string(data), nil
}

// decodePlans parses a stored roadmap string, accepting either the
// wrapped {"semesterPlans": [...]} shape or a bare array.
func decodePlans(raw string) ([]models.SemesterPlan, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	var wrapped struct {
		SemesterPlans []models.SemesterPlan `json:"semesterPlans"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wrapped); err == nil && wrapped.SemesterPlans != nil {
		return wrapped.SemesterPlans, nil
	}
	var bare []models.SemesterPlan
	if err := json.Unmarshal([]byte(trimmed), &bare); err != nil {
		return nil, err
	}
	return bare, nil
}

// decodeAnalysis parses an analysis payload, accepting either a bare
// Analysis object or one nested under "analysis". Anything unparseable
// reads as absent.
func decodeAnalysis(raw []byte) *models.Analysis {
	if len(raw) == 0 {
		return nil
	}
	var wrapped struct {
		Analysis *models.Analysis `json:"analysis"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Analysis != nil {
		return wrapped.Analysis
	}
	var bare models.Analysis
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil
	}
	if bare.OverallReview == "" && len(bare.Strengths) == 0 && len(bare.TopMissions) == 0 &&
		len(bare.Gaps.Owned) == 0 && len(bare.Gaps.Missing) == 0 {
		return nil
	}
	return &bare
}
