package activity_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"careermate/internal/app/features/activity"
	"careermate/internal/domain/models"
	"careermate/internal/testutil"
)

func newController(env *testutil.Env) *activity.Controller {
	return &activity.Controller{API: env.API, Log: env.Log}
}

func TestLoad_NoTargetJobResetsEverything(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodGet, "/api/major/my-roadmap", http.StatusOK,
		models.Profile{Major: "컴퓨터공학"})

	ctrl := newController(env)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ctrl.TargetJob() != "" || len(ctrl.Items()) != 0 || len(ctrl.Trends()) != 0 {
		t.Error("missing target job should leave the page empty")
	}
	if err := ctrl.Recommend(context.Background()); !errors.Is(err, activity.ErrNoTargetJob) {
		t.Errorf("Recommend err = %v, want ErrNoTargetJob", err)
	}
}

func TestLoad_FetchesListAndTrends(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodGet, "/api/major/my-roadmap", http.StatusOK,
		models.Profile{Major: "컴퓨터공학", TargetJob: "백엔드 개발자"})
	env.Backend.HandleJSON(http.MethodGet, "/api/activity/my-list", http.StatusOK,
		[]models.ActivityRecommendation{{Category: models.CategoryContest, Title: "공개SW 개발자대회"}})
	env.Backend.HandleJSON(http.MethodGet, "/api/news/search", http.StatusOK,
		[]map[string]string{{"title": "백엔드 채용 확대", "link": "https://news.example"}})

	ctrl := newController(env)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ctrl.Items()) != 1 || len(ctrl.Trends()) != 1 {
		t.Errorf("items=%d trends=%d", len(ctrl.Items()), len(ctrl.Trends()))
	}

	req := env.Backend.LastRequest(http.MethodGet, "/api/news/search")
	if req.Query != "keyword="+url.QueryEscape("백엔드 개발자 채용 동향") {
		t.Errorf("trend keyword query = %q", req.Query)
	}
}

func TestRecommend_ReplacesItems(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodGet, "/api/major/my-roadmap", http.StatusOK,
		models.Profile{Major: "컴퓨터공학", Grade: "3", TargetJob: "백엔드 개발자"})
	env.Backend.HandleJSON(http.MethodGet, "/api/activity/my-list", http.StatusOK,
		[]models.ActivityRecommendation{})
	env.Backend.HandleJSON(http.MethodPost, "/api/activity/recommend", http.StatusOK, map[string]any{
		"activities": []models.ActivityRecommendation{
			{Category: models.CategoryIntern, Title: "여름 인턴십"},
			{Category: models.CategoryLicense, Title: "정보처리기사"},
		},
	})

	ctrl := newController(env)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := ctrl.Recommend(context.Background()); err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if items := ctrl.Items(); len(items) != 2 || items[0].Title != "여름 인턴십" {
		t.Errorf("items = %+v", items)
	}

	var body models.Profile
	env.Backend.LastRequest(http.MethodPost, "/api/activity/recommend").JSONBody(t, &body)
	if body.TargetJob != "백엔드 개발자" || body.Major != "컴퓨터공학" {
		t.Errorf("recommend body = %+v, want the full profile", body)
	}
}

func TestRecommend_AcceptsBareArray(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodGet, "/api/major/my-roadmap", http.StatusOK,
		models.Profile{TargetJob: "백엔드 개발자"})
	env.Backend.HandleJSON(http.MethodGet, "/api/activity/my-list", http.StatusOK,
		[]models.ActivityRecommendation{})
	env.Backend.HandleJSON(http.MethodPost, "/api/activity/recommend", http.StatusOK,
		[]models.ActivityRecommendation{{Category: models.CategoryContest, Title: "해커톤"}})

	ctrl := newController(env)
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := ctrl.Recommend(context.Background()); err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if items := ctrl.Items(); len(items) != 1 || items[0].Title != "해커톤" {
		t.Errorf("items = %+v", items)
	}
}

func TestKind_CategoryMapping(t *testing.T) {
	cases := map[string]string{
		models.CategoryContest: activity.KindContest,
		models.CategoryIntern:  activity.KindInternship,
		models.CategoryLicense: activity.KindCertification,
		"VOLUNTEER":            activity.KindActivity,
		"":                     activity.KindActivity,
	}
	for category, want := range cases {
		if got := activity.Kind(category); got != want {
			t.Errorf("Kind(%q) = %q, want %q", category, got, want)
		}
	}
}

func TestLink_DefaultsToSearch(t *testing.T) {
	withLink := models.ActivityRecommendation{Title: "해커톤", Link: "https://hack.example"}
	if got := activity.Link(withLink); got != "https://hack.example" {
		t.Errorf("Link = %q", got)
	}

	without := models.ActivityRecommendation{Title: "캡스톤 경진대회"}
	got := activity.Link(without)
	if !strings.Contains(got, "google.com/search") || !strings.Contains(got, url.QueryEscape("캡스톤 경진대회")) {
		t.Errorf("fallback link = %q", got)
	}
}
