package feedback_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"careermate/internal/app/features/feedback"
	"careermate/internal/domain/models"
	"careermate/internal/testutil"
)

func newController(env *testutil.Env) *feedback.Controller {
	return &feedback.Controller{API: env.API, Log: env.Log}
}

func TestFetch_ReturnsGeneratedFeedback(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodGet, "/api/feedback", http.StatusOK, models.Feedback{
		Achievements:    "운영체제 과목 이수",
		Analysis:        "기초 체력은 충분합니다.",
		Recommendations: "포트폴리오 프로젝트를 시작하세요.",
	})

	fb, ok, err := newController(env).Fetch(context.Background(), "2학년 1학기")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !ok {
		t.Fatal("expected feedback to be present")
	}
	if fb.Achievements != "운영체제 과목 이수" {
		t.Errorf("feedback = %+v", fb)
	}

	req := env.Backend.LastRequest(http.MethodGet, "/api/feedback")
	if req.Query != "grade="+url.QueryEscape("2학년 1학기") {
		t.Errorf("query = %q", req.Query)
	}
}

func TestFetch_MessageBodyIsEmptyState(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodGet, "/api/feedback", http.StatusOK,
		map[string]string{"message": "아직 생성된 피드백이 없습니다."})

	_, ok, err := newController(env).Fetch(context.Background(), "2학년 1학기")
	if err != nil {
		t.Fatalf("placeholder body must not be an error, got %v", err)
	}
	if ok {
		t.Error("placeholder body should read as the empty state")
	}
}

func TestFetch_NotFoundIsEmptyState(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleStatus(http.MethodGet, "/api/feedback", http.StatusNotFound)

	_, ok, err := newController(env).Fetch(context.Background(), "")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if ok {
		t.Error("404 should read as the empty state")
	}
}
