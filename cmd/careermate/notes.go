package main

import (
	"context"
	"flag"
	"fmt"

	"careermate/internal/app/bootstrap"
	"careermate/internal/app/features/notes"
	"careermate/internal/app/system/timeouts"
)

func runNotes(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("notes list", flag.ContinueOnError)
		category := fs.String("category", "", "filter by category")
		order := fs.String("sort", notes.SortNewest, "newest, oldest, or title")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Notes.Load(ctx); err != nil {
			return err
		}
		for _, n := range app.Notes.List(*category, *order) {
			fmt.Printf("%d  [%s] %s  (%s)\n", n.ID, n.Category, n.Title, n.CreatedDate)
		}
		return nil

	case "show":
		id, err := noteID(rest)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Notes.Load(ctx); err != nil {
			return err
		}
		if err := app.Notes.Select(id); err != nil {
			return err
		}
		n, _ := app.Notes.Selected()
		fmt.Printf("# %s [%s]\n\n%s\n", n.Title, n.Category, n.Content)
		return nil

	case "create":
		fs := flag.NewFlagSet("notes create", flag.ContinueOnError)
		title := fs.String("title", "", "note title")
		category := fs.String("category", "", "note category")
		content := fs.String("content", "", "markdown content")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Notes.Create(ctx, *title, *category, *content); err != nil {
			return err
		}
		fmt.Println("Note created.")
		return nil

	case "update":
		fs := flag.NewFlagSet("notes update", flag.ContinueOnError)
		id := fs.Int64("id", 0, "note id")
		title := fs.String("title", "", "note title")
		category := fs.String("category", "", "note category")
		content := fs.String("content", "", "markdown content")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Notes.Load(ctx); err != nil {
			return err
		}
		if err := app.Notes.Select(*id); err != nil {
			return err
		}
		if err := app.Notes.Update(ctx, *title, *category, *content); err != nil {
			return err
		}
		fmt.Println("Note updated.")
		return nil

	case "delete":
		id, err := noteID(rest)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := app.Notes.Load(ctx); err != nil {
			return err
		}
		if err := app.Notes.Select(id); err != nil {
			return err
		}
		if err := app.Notes.Delete(ctx); err != nil {
			return err
		}
		fmt.Println("Note deleted.")
		return nil

	case "ask":
		fs := flag.NewFlagSet("notes ask", flag.ContinueOnError)
		id := fs.Int64("id", 0, "note id")
		question := fs.String("q", "", "question about the note")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, timeouts.Generate())
		defer cancel()
		if err := app.Notes.Load(ctx); err != nil {
			return err
		}
		if err := app.Notes.Select(*id); err != nil {
			return err
		}
		answer, err := app.Notes.Ask(ctx, *question)
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil
	}
	return fmt.Errorf("unknown notes subcommand %q", sub)
}

func noteID(args []string) (int64, error) {
	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	id := fs.Int64("id", 0, "note id")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *id == 0 {
		return 0, fmt.Errorf("-id is required")
	}
	return *id, nil
}
