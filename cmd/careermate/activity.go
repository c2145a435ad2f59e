package main

import (
	"context"
	"fmt"

	"careermate/internal/app/bootstrap"
	"careermate/internal/app/features/activity"
	"careermate/internal/app/system/timeouts"
)

func runActivity(ctx context.Context, app *bootstrap.App, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Activity.Load(ctx); err != nil {
			return err
		}
		printActivities(app)
		return nil

	case "recommend":
		ctx, cancel := context.WithTimeout(ctx, timeouts.Generate())
		defer cancel()
		if err := app.Activity.Load(ctx); err != nil {
			return err
		}
		if err := app.Activity.Recommend(ctx); err != nil {
			return err
		}
		printActivities(app)
		return nil
	}
	return fmt.Errorf("unknown activity subcommand %q", sub)
}

func printActivities(app *bootstrap.App) {
	job := app.Activity.TargetJob()
	if job == "" {
		fmt.Println("No target job yet. Generate a roadmap first.")
		return
	}
	fmt.Printf("Recommendations for %s\n", job)
	for _, item := range app.Activity.Items() {
		fmt.Printf("  [%s] %s\n    %s\n    %s\n",
			activity.Kind(item.Category), item.Title, item.Description, activity.Link(item))
	}
	if trends := app.Activity.Trends(); len(trends) > 0 {
		fmt.Println("\nHiring trends:")
		for _, item := range trends {
			fmt.Printf("  %s\n    %s\n", item.Title, item.Link)
		}
	}
}
