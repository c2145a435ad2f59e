package main

import (
	"context"
	"flag"
	"fmt"

	"careermate/internal/app/bootstrap"
	"careermate/internal/app/system/timeouts"
	"careermate/internal/domain/models"
)

func runPortfolio(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
		ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
		defer cancel()
		if err := app.Portfolio.Load(ctx); err != nil {
			return err
		}
		content := app.Portfolio.Content()
		for _, name := range []string{
			models.SectionIntro, models.SectionStack,
			models.SectionProjects, models.SectionActivities,
		} {
			fmt.Printf("## %s\n%s\n\n", name, *content.Section(name))
		}
		return nil

	case "edit":
		fs := flag.NewFlagSet("portfolio edit", flag.ContinueOnError)
		section := fs.String("section", "", "intro, stack, projects, or activities")
		text := fs.String("text", "", "new section text")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Portfolio.Load(ctx); err != nil {
			return err
		}
		if err := app.Portfolio.SaveSection(ctx, *section, *text); err != nil {
			return err
		}
		fmt.Println("Saved.")
		return nil

	case "reset":
		fs := flag.NewFlagSet("portfolio reset", flag.ContinueOnError)
		section := fs.String("section", "", "intro, stack, projects, or activities")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Portfolio.Load(ctx); err != nil {
			return err
		}
		if err := app.Portfolio.ResetSection(ctx, *section); err != nil {
			return err
		}
		fmt.Println("Section reset.")
		return nil

	case "generate":
		fs := flag.NewFlagSet("portfolio generate", flag.ContinueOnError)
		section := fs.String("section", "", "intro, stack, projects, or activities")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Generate())
		defer cancel()
		if err := app.Portfolio.Load(ctx); err != nil {
			return err
		}
		text, err := app.Portfolio.Generate(ctx, *section)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}
	return fmt.Errorf("unknown portfolio subcommand %q", sub)
}

func runFeedback(ctx context.Context, app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("feedback", flag.ContinueOnError)
	grade := fs.String("grade", "", "finished semester label")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()
	fb, ok, err := app.Feedback.Fetch(ctx, *grade)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No feedback yet. Finish a semester first, or check back later.")
		return nil
	}
	fmt.Printf("## Achievements\n%s\n\n## Analysis\n%s\n\n## Recommendations\n%s\n",
		fb.Achievements, fb.Analysis, fb.Recommendations)
	return nil
}
