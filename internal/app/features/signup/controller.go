// internal/app/features/signup/controller.go
package signup

import (
	"context"

	"go.uber.org/zap"

	"careermate/internal/app/system/api"
	"careermate/internal/app/system/validate"
)

type Controller struct {
	API *api.Client
	Log *zap.Logger
}

// Form is the signup input, all fields mandatory.
type Form struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// Signup validates the form locally, then creates the account. The
// confirmation password never leaves the process.
func (c *Controller) Signup(ctx context.Context, form Form) error {
	err := validate.FirstRequired(
		"name", form.Name,
		"email", form.Email,
		"password", form.Password,
		"confirmPassword", form.ConfirmPassword,
	)
	if err != nil {
		return err
	}
	if form.Password != form.ConfirmPassword {
		return &validate.Error{Field: "confirmPassword", Reason: "does not match password"}
	}

	if err := c.API.Post(ctx, "/api/auth/signup", form, nil); err != nil {
		return err
	}
	c.Log.Info("account created", zap.String("email", form.Email))
	return nil
}
