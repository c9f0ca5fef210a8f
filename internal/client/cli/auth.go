package cli

import (
	"context"

	"github.com/hongminglow/shopfront/internal/client/store"
)

// Register prompts for account details and runs the register flow.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Your email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	result, err := a.store.SignIn(ctx, store.SignInData{Name: name, Email: email, Password: password})
	if err != nil {
		printlnFn("Registration failed:", errMessage(err))
		return err
	}
	a.reportSignIn(result)
	return nil
}

// Login prompts for credentials and runs the login flow.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	result, err := a.store.SignIn(ctx, store.SignInData{Email: email, Password: password})
	if err != nil {
		printlnFn("Login failed:", errMessage(err))
		return err
	}
	a.reportSignIn(result)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	a.store.SignOut()
	printlnFn("Signed out")
	return nil
}

func (a *App) reportSignIn(result store.SignInResult) {
	switch {
	case result.Success && result.Degraded:
		printlnFn("Signed in (no session token returned by the server)")
	case result.Success:
		printlnFn("Signed in as", result.User.Email)
	default:
		printlnFn("No saved account found; use register or login")
	}
}

// errMessage prefers the server-provided message and falls back to a generic
// string when there is none.
func errMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "something went wrong"
	}
	return err.Error()
}
