// internal/app/features/login/controller.go
package login

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"careermate/internal/app/store/session"
	"careermate/internal/app/system/api"
	"careermate/internal/app/system/jwtclaims"
	"careermate/internal/app/system/validate"
)

// Known failure messages the backend sends back verbatim. Matching on
// substrings keeps the mapping alive if the backend wraps them.
const (
	backendUnknownEmail  = "가입되지 않은 이메일입니다"
	backendWrongPassword = "비밀번호가 틀렸습니다"
)

var (
	// ErrUnknownEmail means no account exists for the given email.
	ErrUnknownEmail = errors.New("no account exists with that email")
	// ErrWrongPassword means the account exists but the password did not match.
	ErrWrongPassword = errors.New("the password is incorrect")
)

type Controller struct {
	API      *api.Client
	Sessions *session.Store
	Log      *zap.Logger
}

// loginResponse is everything any backend version has ever put in a
// login reply. Token naming drifted between releases, so both spellings
// are accepted.
type loginResponse struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	UserName    string `json:"userName"`
	Name        string `json:"name"`
}

// Login authenticates and persists the session. The returned string is
// the display name shown in the header after login.
func (c *Controller) Login(ctx context.Context, email, password string) (string, error) {
	if err := validate.FirstRequired("email", email, "password", password); err != nil {
		return "", err
	}

	var resp loginResponse
	err := c.API.Post(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", mapLoginError(err)
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return "", errors.New("login reply carried no token")
	}

	name := displayName(resp, token, email)
	if err := c.Sessions.Save(token, name); err != nil {
		return "", err
	}
	c.Log.Info("logged in", zap.String("name", name))
	return name, nil
}

// displayName resolves what to call the user. Server-sent name wins,
// then token name claims, then the local part of the email (the typed
// one, or the token subject when that differs) as a last resort.
func displayName(resp loginResponse, token, email string) string {
	if resp.UserName != "" {
		return resp.UserName
	}
	if resp.Name != "" {
		return resp.Name
	}
	claims := jwtclaims.Decode(token)
	if name := jwtclaims.DisplayName(claims); name != "" {
		return name
	}
	if email == "" {
		email = jwtclaims.Subject(claims)
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func mapLoginError(err error) error {
	var se *api.StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch {
	case strings.Contains(se.Message, backendUnknownEmail):
		return ErrUnknownEmail
	case strings.Contains(se.Message, backendWrongPassword):
		return ErrWrongPassword
	}
	return err
}
