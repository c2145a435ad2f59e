package settings_test

import (
	"testing"

	"careermate/internal/app/features/settings"
	"careermate/internal/app/system/api"
	"careermate/internal/domain/models"
	"careermate/internal/testutil"
)

func newController(env *testutil.Env) *settings.Controller {
	return &settings.Controller{
		Sessions: env.Sessions,
		Caches:   []api.Clearer{env.Forms},
		Log:      env.Log,
	}
}

func TestAccount_NameFromStoreEmailFromToken(t *testing.T) {
	env := testutil.NewEnv(t)
	token := testutil.SignedToken(t, map[string]any{"sub": "a@b.com"})
	if err := env.Sessions.Save(token, "지민"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	account := newController(env).Account()
	if account.Name != "지민" || account.Email != "a@b.com" {
		t.Errorf("account = %+v", account)
	}
}

func TestLogout_ClearsSessionAndCachesButKeepsGroups(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	if err := env.Forms.Save(models.Profile{Major: "컴퓨터공학"}); err != nil {
		t.Fatalf("seed form cache: %v", err)
	}
	if err := env.Groups.Append(models.Group{ID: 1, Title: "캡스톤", Type: models.GroupProject}); err != nil {
		t.Fatalf("seed group: %v", err)
	}

	if err := newController(env).Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if env.Sessions.Token() != "" || env.Sessions.Name() != "" {
		t.Error("session survived logout")
	}
	if _, ok := env.Forms.Load(); ok {
		t.Error("form cache survived logout")
	}
	groups, err := env.Groups.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(groups) != 1 {
		t.Error("groups must survive logout, they belong to the device")
	}
}
