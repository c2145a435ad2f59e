package passwords_test

import (
	"context"
	"net/http"
	"testing"

	"careermate/internal/app/features/passwords"
	"careermate/internal/app/system/api"
	"careermate/internal/testutil"
)

func newController(env *testutil.Env) *passwords.Controller {
	return &passwords.Controller{
		API:      env.API,
		Sessions: env.Sessions,
		Caches:   []api.Clearer{env.Forms, env.Groups},
		Log:      env.Log,
	}
}

func TestReset_TwoStepFlow(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Backend.HandleJSON(http.MethodPost, "/api/auth/check-user", http.StatusOK, nil)
	env.Backend.HandleJSON(http.MethodPut, "/api/auth/reset-password", http.StatusOK, nil)

	ctrl := newController(env)
	if err := ctrl.CheckUser(context.Background(), "지민", "a@b.com"); err != nil {
		t.Fatalf("CheckUser failed: %v", err)
	}
	var checkBody map[string]string
	env.Backend.LastRequest(http.MethodPost, "/api/auth/check-user").JSONBody(t, &checkBody)
	if checkBody["name"] != "지민" || checkBody["email"] != "a@b.com" {
		t.Errorf("check-user body = %+v", checkBody)
	}

	if err := ctrl.Reset(context.Background(), "지민", "a@b.com", "newpw", "newpw"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	var body map[string]string
	env.Backend.LastRequest(http.MethodPut, "/api/auth/reset-password").JSONBody(t, &body)
	if body["name"] != "지민" || body["email"] != "a@b.com" || body["newPassword"] != "newpw" {
		t.Errorf("reset body = %+v", body)
	}
}

func TestReset_RejectsMismatch(t *testing.T) {
	env := testutil.NewEnv(t)
	err := newController(env).Reset(context.Background(), "지민", "a@b.com", "pw1", "pw2")
	if err == nil {
		t.Fatal("mismatched confirmation accepted")
	}
	if got := env.Backend.Requests("", ""); len(got) != 0 {
		t.Error("validation failure still hit the backend")
	}
}

func TestChange_AuthenticatedFlow(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodPut, "/api/auth/change-password", http.StatusOK, nil)

	if err := newController(env).Change(context.Background(), "oldpw", "newpw", "newpw"); err != nil {
		t.Fatalf("Change failed: %v", err)
	}
	req := env.Backend.LastRequest(http.MethodPut, "/api/auth/change-password")
	if req.Authorization != "Bearer "+token {
		t.Error("change-password must go out authenticated")
	}
}

func TestWithdraw_ClearsEverythingLocal(t *testing.T) {
	env := testutil.NewEnv(t)
	env.LogIn(t, "지민")
	env.Backend.HandleJSON(http.MethodDelete, "/api/auth/withdrawal", http.StatusOK, nil)

	if err := newController(env).Withdraw(context.Background()); err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if env.Sessions.Token() != "" {
		t.Error("token survived withdrawal")
	}
	groups, err := env.Groups.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(groups) != 0 {
		t.Error("groups survived withdrawal")
	}
}
