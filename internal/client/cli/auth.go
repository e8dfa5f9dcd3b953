package cli

import (
	"context"
	"fmt"

	"github.com/me22abd/campusconnect-client/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account. A
// successful registration leaves the user logged in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name (optional)", a.out)
	if err != nil {
		return err
	}
	dob, err := getSimpleText(a.reader, "Enter date of birth YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return err
	}

	req := api.RegisterRequest{Email: email, Password: password, Name: name, DateOfBirth: dob}
	if err := a.session.Register(ctx, req); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Welcome to CampusConnect!")
	return nil
}

// Login prompts for credentials and authenticates. Errors are printed for
// the user and returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", a.session.User().DisplayName())
	return nil
}

// WhoAmI prints the current profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.DisplayName(), user.Email)
	if user.University != "" {
		fmt.Fprintf(a.out, "  %s\n", user.University)
	}
	if user.Location != "" {
		fmt.Fprintf(a.out, "  %s\n", user.Location)
	}
	return nil
}

// Logout tears down the local session. It always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
