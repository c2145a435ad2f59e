// internal/app/bootstrap/app.go
package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"careermate/internal/app/features/activity"
	"careermate/internal/app/features/collab"
	"careermate/internal/app/features/feedback"
	"careermate/internal/app/features/login"
	"careermate/internal/app/features/notes"
	"careermate/internal/app/features/passwords"
	"careermate/internal/app/features/portfolio"
	"careermate/internal/app/features/roadmap"
	"careermate/internal/app/features/settings"
	"careermate/internal/app/features/signup"
	"careermate/internal/app/store/formcache"
	"careermate/internal/app/store/groups"
	"careermate/internal/app/store/session"
	"careermate/internal/app/system/api"
	"careermate/internal/app/system/timeouts"
)

// App wires the stores, the HTTP adapter, and every feature controller.
type App struct {
	Config AppConfig
	Log    *zap.Logger

	Sessions *session.Store
	Groups   *groups.Store
	Forms    *formcache.Store
	API      *api.Client

	Login     *login.Controller
	Signup    *signup.Controller
	Passwords *passwords.Controller
	Roadmap   *roadmap.Controller
	Activity  *activity.Controller
	Collab    *collab.Controller
	Notes     *notes.Controller
	Portfolio *portfolio.Controller
	Feedback  *feedback.Controller
	Settings  *settings.Controller
}

// New builds the whole object graph. The form cache rides along as a
// 401-clearable cache; the groups store does not (groups are device
// data and survive session expiry).
func New(cfg AppConfig, logger *zap.Logger) (*App, error) {
	sessions, err := session.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	groupStore, err := groups.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("groups store: %w", err)
	}
	forms, err := formcache.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("form cache: %w", err)
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	}, sessions, logger, forms)
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	// Generation budget tracks the outer transport timeout.
	timeouts.Configure(0, 0, cfg.RequestTimeout)

	disposable := []api.Clearer{forms}

	app := &App{
		Config:   cfg,
		Log:      logger,
		Sessions: sessions,
		Groups:   groupStore,
		Forms:    forms,
		API:      client,

		Login:     &login.Controller{API: client, Sessions: sessions, Log: logger},
		Signup:    &signup.Controller{API: client, Log: logger},
		Passwords: &passwords.Controller{API: client, Sessions: sessions, Caches: []api.Clearer{forms, groupStore}, Log: logger},
		Roadmap:   &roadmap.Controller{API: client, Forms: forms, Log: logger},
		Activity:  &activity.Controller{API: client, Log: logger},
		Collab:    &collab.Controller{Groups: groupStore, Log: logger},
		Notes:     &notes.Controller{API: client, Log: logger},
		Portfolio: &portfolio.Controller{API: client, Log: logger},
		Feedback:  &feedback.Controller{API: client, Log: logger},
		Settings:  &settings.Controller{Sessions: sessions, Caches: disposable, Log: logger},
	}
	return app, nil
}

// Close flushes background work: pending progress saves, then the
// logger.
func (a *App) Close() {
	a.Roadmap.Wait()
	_ = a.Log.Sync()
}
