// Command careermate is a terminal front end for the career-roadmap
// backend: login, roadmap generation and progress, activity
// recommendations, local collaboration groups, study notes, portfolio,
// and semester feedback.
package main

import (
	"context"
	"fmt"
	"os"

	"careermate/internal/app/bootstrap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "careermate:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := bootstrap.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	app.API.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Your session has expired. Please log in again with `careermate login`.")
	})

	if len(args) == 0 {
		usage()
		return nil
	}

	ctx := context.Background()
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login", "signup", "password", "withdraw":
		return runAuth(ctx, app, cmd, rest)
	case "roadmap":
		return runRoadmap(ctx, app, rest)
	case "activity":
		return runActivity(ctx, app, rest)
	case "collab":
		return runCollab(app, rest)
	case "notes":
		return runNotes(ctx, app, rest)
	case "portfolio":
		return runPortfolio(ctx, app, rest)
	case "feedback":
		return runFeedback(ctx, app, rest)
	case "whoami", "logout":
		return runSettings(app, cmd)
	case "help", "-h", "--help":
		usage()
		return nil
	}
	usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func usage() {
	fmt.Print(`Usage: careermate <command> [arguments]

Account
  login      -email -password             obtain a session
  signup     -name -email -password -confirm
  password   reset|change ...             password flows
  withdraw                                delete the account
  whoami                                  show the logged-in account
  logout                                  clear the local session

Career
  roadmap    show|analyze|toggle|finish   roadmap and progress
  activity   show|recommend               activity recommendations
  feedback   -grade <label>               semester retrospective

Workspace
  collab     create|list|delete|select|notice|message|schedule|doc|invite
  notes      list|show|create|update|delete|ask
  portfolio  show|edit|reset|generate
`)
}
