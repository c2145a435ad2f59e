// internal/app/features/feedback/controller.go
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"careermate/internal/app/system/api"
	"careermate/internal/domain/models"
)

type Controller struct {
	API *api.Client
	Log *zap.Logger
}

// Fetch loads the AI retrospective for one finished semester, keyed by
// its grade label. A {"message": ...} body means the backend has not
// generated feedback yet; that is the empty state, not a failure.
func (c *Controller) Fetch(ctx context.Context, gradeLabel string) (models.Feedback, bool, error) {
	path := "/api/feedback"
	if gradeLabel != "" {
		path += "?grade=" + url.QueryEscape(gradeLabel)
	}

	var raw json.RawMessage
	if err := c.API.Get(ctx, path, &raw); err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			return models.Feedback{}, false, nil
		}
		return models.Feedback{}, false, err
	}
	if len(raw) == 0 {
		return models.Feedback{}, false, nil
	}

	var placeholder struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &placeholder); err == nil && placeholder.Message != "" {
		c.Log.Info("feedback not ready", zap.String("grade", gradeLabel))
		return models.Feedback{}, false, nil
	}

	var fb models.Feedback
	if err := json.Unmarshal(raw, &fb); err != nil {
		return models.Feedback{}, false, fmt.Errorf("decode feedback: %w", err)
	}
	if fb.Achievements == "" && fb.Analysis == "" && fb.Recommendations == "" {
		return models.Feedback{}, false, nil
	}
	return fb, true, nil
}
