package main

import (
	"context"
	"flag"
	"fmt"

	"careermate/internal/app/bootstrap"
	"careermate/internal/app/features/signup"
	"careermate/internal/app/system/timeouts"
)

func runAuth(ctx context.Context, app *bootstrap.App, cmd string, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	switch cmd {
	case "login":
		fs := flag.NewFlagSet("login", flag.ContinueOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		name, err := app.Login.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s!\n", name)
		return nil

	case "signup":
		fs := flag.NewFlagSet("signup", flag.ContinueOnError)
		form := signup.Form{}
		fs.StringVar(&form.Name, "name", "", "display name")
		fs.StringVar(&form.Email, "email", "", "account email")
		fs.StringVar(&form.Password, "password", "", "password")
		fs.StringVar(&form.ConfirmPassword, "confirm", "", "password confirmation")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := app.Signup.Signup(ctx, form); err != nil {
			return err
		}
		fmt.Println("Account created. Log in with `careermate login`.")
		return nil

	case "password":
		return runPassword(ctx, app, args)

	case "withdraw":
		if err := app.Passwords.Withdraw(ctx); err != nil {
			return err
		}
		fmt.Println("Account deleted.")
		return nil
	}
	return fmt.Errorf("unknown auth command %q", cmd)
}

func runPassword(ctx context.Context, app *bootstrap.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("password needs a subcommand: reset or change")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "reset":
		fs := flag.NewFlagSet("password reset", flag.ContinueOnError)
		name := fs.String("name", "", "display name on the account")
		email := fs.String("email", "", "account email")
		newPass := fs.String("new", "", "new password")
		confirm := fs.String("confirm", "", "new password confirmation")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := app.Passwords.CheckUser(ctx, *name, *email); err != nil {
			return err
		}
		if err := app.Passwords.Reset(ctx, *name, *email, *newPass, *confirm); err != nil {
			return err
		}
		fmt.Println("Password reset.")
		return nil

	case "change":
		fs := flag.NewFlagSet("password change", flag.ContinueOnError)
		current := fs.String("current", "", "current password")
		newPass := fs.String("new", "", "new password")
		confirm := fs.String("confirm", "", "new password confirmation")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := app.Passwords.Change(ctx, *current, *newPass, *confirm); err != nil {
			return err
		}
		fmt.Println("Password changed.")
		return nil
	}
	return fmt.Errorf("unknown password subcommand %q", sub)
}

func runSettings(app *bootstrap.App, cmd string) error {
	switch cmd {
	case "whoami":
		account := app.Settings.Account()
		if account.Name == "" && account.Email == "" {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("Name:  %s\nEmail: %s\n", account.Name, account.Email)
		return nil
	case "logout":
		if err := app.Settings.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	}
	return fmt.Errorf("unknown settings command %q", cmd)
}
