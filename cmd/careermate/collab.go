package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"careermate/internal/app/bootstrap"
	"careermate/internal/app/features/collab"
	"careermate/internal/domain/models"
)

func runCollab(app *bootstrap.App, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "create":
		fs := flag.NewFlagSet("collab create", flag.ContinueOnError)
		title := fs.String("title", "", "group title")
		groupType := fs.String("type", models.GroupProject, "PROJECT or STUDY")
		members := fs.Int("members", 1, "member count")
		tags := fs.String("tags", "", "comma-separated tags")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		g, err := app.Collab.Create(*title, *groupType, *members, splitTags(*tags))
		if err != nil {
			return err
		}
		fmt.Printf("Group %d created: %s\n", g.ID, g.Title)
		return nil

	case "list":
		fs := flag.NewFlagSet("collab list", flag.ContinueOnError)
		groupType := fs.String("type", "", "filter: PROJECT or STUDY")
		order := fs.String("sort", collab.SortInsertion, "insertion, newest, or title")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		list, err := app.Collab.List(*groupType, *order)
		if err != nil {
			return err
		}
		for _, g := range list {
			fmt.Printf("%d  [%s] %-24s %d members  %s\n",
				g.ID, g.Type, g.Title, g.Members, strings.Join(g.Tags, ","))
		}
		return nil

	case "delete":
		id, err := groupID(rest)
		if err != nil {
			return err
		}
		if err := app.Collab.Delete(id); err != nil {
			return err
		}
		fmt.Println("Group deleted.")
		return nil

	case "select":
		id, err := groupID(rest)
		if err != nil {
			return err
		}
		return app.Collab.Select(id)

	case "notice":
		fs := flag.NewFlagSet("collab notice", flag.ContinueOnError)
		id := fs.Int64("group", 0, "group id")
		text := fs.String("text", "", "notice text")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := app.Collab.SetNotice(*id, *text); err != nil {
			return err
		}
		fmt.Println("Notice posted.")
		return nil

	case "message":
		fs := flag.NewFlagSet("collab message", flag.ContinueOnError)
		id := fs.Int64("group", 0, "group id")
		text := fs.String("text", "", "message text")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		sender := app.Sessions.Name()
		if sender == "" {
			sender = "me"
		}
		return app.Collab.SendMessage(*id, sender, *text)

	case "schedule":
		fs := flag.NewFlagSet("collab schedule", flag.ContinueOnError)
		id := fs.Int64("group", 0, "group id")
		title := fs.String("title", "", "milestone title")
		date := fs.String("date", "", "date, YYYY-MM-DD")
		at := fs.String("time", "", "time of day")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		sched, err := app.Collab.AddSchedule(*id, *title, *date, *at)
		if err != nil {
			return err
		}
		fmt.Printf("Scheduled %s (D-%d)\n", sched.Date, sched.DDay)
		return nil

	case "doc":
		fs := flag.NewFlagSet("collab doc", flag.ContinueOnError)
		id := fs.Int64("group", 0, "group id")
		doc := models.Document{Type: "link"}
		fs.StringVar(&doc.Title, "title", "", "document title")
		fs.StringVar(&doc.Link, "link", "", "document link")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		doc.Uploader = app.Sessions.Name()
		return app.Collab.AddDocument(*id, doc)

	case "invite":
		fs := flag.NewFlagSet("collab invite", flag.ContinueOnError)
		id := fs.Int64("group", 0, "group id")
		qrPath := fs.String("qr", "", "write a QR code PNG to this path")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		fmt.Println(collab.InviteLink(*id))
		if *qrPath != "" {
			png, err := collab.InviteQR(*id)
			if err != nil {
				return err
			}
			if err := os.WriteFile(*qrPath, png, 0o644); err != nil {
				return err
			}
			fmt.Println("QR code written to", *qrPath)
		}
		return nil
	}
	return fmt.Errorf("unknown collab subcommand %q", sub)
}

func groupID(args []string) (int64, error) {
	fs := flag.NewFlagSet("collab", flag.ContinueOnError)
	id := fs.Int64("group", 0, "group id")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *id == 0 {
		return 0, fmt.Errorf("-group is required")
	}
	return *id, nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
