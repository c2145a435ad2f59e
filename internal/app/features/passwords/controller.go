// internal/app/features/passwords/controller.go
package passwords

import (
	"context"

	"go.uber.org/zap"

	"careermate/internal/app/store/session"
	"careermate/internal/app/system/api"
	"careermate/internal/app/system/validate"
)

// Controller covers every password flow: the pre-login two-step reset
// (check-user, then reset-password), the authenticated change, and
// account withdrawal.
type Controller struct {
	API      *api.Client
	Sessions *session.Store
	Caches   []api.Clearer
	Log      *zap.Logger
}

// CheckUser verifies name+email identify an account, the first step of
// the pre-login reset flow.
func (c *Controller) CheckUser(ctx context.Context, name, email string) error {
	if err := validate.FirstRequired("name", name, "email", email); err != nil {
		return err
	}
	return c.API.Post(ctx, "/api/auth/check-user", map[string]string{
		"name":  name,
		"email": email,
	}, nil)
}

// Reset sets a new password for a user already verified by CheckUser.
// The backend matches the account on name+email again, so both travel
// with the new password.
func (c *Controller) Reset(ctx context.Context, name, email, newPassword, confirm string) error {
	if err := validate.FirstRequired("name", name, "email", email, "newPassword", newPassword); err != nil {
		return err
	}
	if newPassword != confirm {
		return &validate.Error{Field: "confirmPassword", Reason: "does not match password"}
	}
	return c.API.Put(ctx, "/api/auth/reset-password", map[string]string{
		"name":        name,
		"email":       email,
		"newPassword": newPassword,
	}, nil)
}

// Change sets a new password for the logged-in user.
func (c *Controller) Change(ctx context.Context, currentPassword, newPassword, confirm string) error {
	if err := validate.FirstRequired("currentPassword", currentPassword, "newPassword", newPassword); err != nil {
		return err
	}
	if newPassword != confirm {
		return &validate.Error{Field: "confirmPassword", Reason: "does not match password"}
	}
	return c.API.Put(ctx, "/api/auth/change-password", map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}, nil)
}

// Withdraw deletes the account on the backend, then clears every piece
// of local state including collaboration groups. Local cleanup runs
// even though the account is already gone server-side, so a partial
// failure is logged rather than returned.
func (c *Controller) Withdraw(ctx context.Context) error {
	if err := c.API.Delete(ctx, "/api/auth/withdrawal"); err != nil {
		return err
	}
	if err := c.Sessions.Clear(); err != nil {
		c.Log.Error("clear session after withdrawal", zap.Error(err))
	}
	for _, cache := range c.Caches {
		if err := cache.Clear(); err != nil {
			c.Log.Error("clear cache after withdrawal", zap.Error(err))
		}
	}
	c.Log.Info("account withdrawn")
	return nil
}
