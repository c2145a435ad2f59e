// internal/app/features/settings/controller.go
package settings

import (
	"go.uber.org/zap"

	"careermate/internal/app/store/session"
	"careermate/internal/app/system/api"
	"careermate/internal/app/system/jwtclaims"
)

// Controller backs the settings page: identity display and logout.
// Password change and withdrawal live in the passwords feature; this
// page only links to them.
type Controller struct {
	Sessions *session.Store
	Caches   []api.Clearer
	Log      *zap.Logger
}

// Account is what the settings page shows about the logged-in user.
type Account struct {
	Name  string
	Email string
}

// Account resolves the display name from the session store and the
// email from the token's subject claim. Neither hits the network; the
// page renders from what login already cached.
func (c *Controller) Account() Account {
	claims := jwtclaims.Decode(c.Sessions.Token())
	return Account{
		Name:  c.Sessions.Name(),
		Email: jwtclaims.Subject(claims),
	}
}

// Logout clears the session and every disposable cache. Collaboration
// groups stay: they belong to the device, not the account.
func (c *Controller) Logout() error {
	if err := c.Sessions.Clear(); err != nil {
		return err
	}
	for _, cache := range c.Caches {
		if err := cache.Clear(); err != nil {
			c.Log.Error("clear cache on logout", zap.Error(err))
		}
	}
	c.Log.Info("logged out")
	return nil
}
