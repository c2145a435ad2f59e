package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"careermate/internal/app/bootstrap"
	"careermate/internal/app/features/roadmap"
	"careermate/internal/app/system/timeouts"
	"careermate/internal/domain/models"
)

func runRoadmap(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Roadmap.Load(ctx); err != nil {
			if errors.Is(err, roadmap.ErrNoProfile) {
				fmt.Println("No roadmap yet. Generate one with `careermate roadmap analyze`.")
				return nil
			}
			return err
		}
		printRoadmap(app)
		return nil

	case "analyze":
		fs := flag.NewFlagSet("roadmap analyze", flag.ContinueOnError)
		form := models.Profile{}
		fs.StringVar(&form.Major, "major", "", "major (required)")
		fs.StringVar(&form.Grade, "grade", "", "grade, e.g. 2 (required)")
		fs.StringVar(&form.Semester, "semester", "", "semester, e.g. 1")
		fs.StringVar(&form.TargetJob, "job", "", "target job (required)")
		fs.StringVar(&form.TargetCompany, "company", "", "target company")
		fs.StringVar(&form.TechStacks, "stacks", "", "known tech stacks")
		fs.StringVar(&form.CurrentSpecs, "specs", "", "current specs")
		fs.StringVar(&form.Courses, "courses", "", "completed courses")
		fs.StringVar(&form.Projects, "projects", "", "project experience")
		fs.StringVar(&form.GPA, "gpa", "", "GPA")
		fs.StringVar(&form.Language, "language", "", "language scores")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		// Cache the draft first; a validation or network failure must
		// not cost the user their typed input.
		if err := app.Roadmap.SaveForm(form); err != nil {
			app.Log.Warn("cache form input failed")
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Generate())
		defer cancel()
		if err := app.Roadmap.Analyze(ctx, form); err != nil {
			return err
		}
		printRoadmap(app)
		return nil

	case "toggle":
		fs := flag.NewFlagSet("roadmap toggle", flag.ContinueOnError)
		semester := fs.Int("semester", 0, "semester index, starting at 0")
		category := fs.String("category", roadmap.CategoryCourses, "goal, courses, or activities")
		item := fs.Int("item", 0, "item index, starting at 0")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		loadCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Roadmap.Load(loadCtx); err != nil {
			return err
		}
		if err := app.Roadmap.ToggleItem(*semester, *category, *item); err != nil {
			return err
		}
		fmt.Println("Toggled. Saving in the background.")
		return nil

	case "finish":
		fs := flag.NewFlagSet("roadmap finish", flag.ContinueOnError)
		semester := fs.Int("semester", 0, "semester index, starting at 0")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Generate())
		defer cancel()
		if err := app.Roadmap.Load(ctx); err != nil {
			return err
		}
		res, err := app.Roadmap.FinishSemester(ctx, *semester)
		if err != nil {
			return err
		}
		fmt.Printf("Semester %q finished.\n", res.FinishedGrade)
		if res.FeedbackDelayed {
			fmt.Println("Feedback generation is delayed; check `careermate feedback` later.")
		} else {
			fmt.Println("Feedback is ready: `careermate feedback -grade " + res.FinishedGrade + "`")
		}
		return nil
	}
	return fmt.Errorf("unknown roadmap subcommand %q", sub)
}

func printRoadmap(app *bootstrap.App) {
	profile := app.Roadmap.Profile()
	fmt.Printf("Roadmap for %s (%s)\n", profile.TargetJob, profile.Major)

	for i, plan := range app.Roadmap.Plans() {
		status := ""
		if plan.IsFinished {
			status = " [finished]"
		}
		fmt.Printf("\n[%d] %s%s\n", i, plan.Grade, status)
		printItems("goal", plan.Goal)
		printItems("courses", plan.Courses)
		printItems("activities", plan.Activities)
	}

	if analysis := app.Roadmap.Analysis(); analysis != nil {
		fmt.Printf("\nReview: %s\n", analysis.OverallReview)
		for _, s := range analysis.Strengths {
			fmt.Printf("  + %s\n", s)
		}
		for _, gap := range analysis.Gaps.Missing {
			fmt.Printf("  - %s (%s)\n", gap.Name, gap.Method)
		}
		for _, m := range analysis.TopMissions {
			fmt.Printf("  > %s\n", m)
		}
	}

	if news := app.Roadmap.News(); len(news) > 0 {
		fmt.Println("\nNews:")
		for _, item := range news {
			fmt.Printf("  %s\n    %s\n", item.Title, item.Link)
		}
	}
}

func printItems(label string, items []models.ChecklistItem) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for i, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Printf("    %d [%s] %s\n", i, mark, item.Content)
	}
}
