package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/cryptox"
	"github.com/dmitrijs2005/authkeeper/internal/validate"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for an email and password and attempts to
// authenticate against the stored accounts.
//
// On success it prints a greeting and returns nil. The password byte slice
// is securely wiped before returning. Validation and credential errors are
// shown to the user as-is; they are not returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeBytes(password)

	if err := a.manager.Login(ctx, email, string(password)); err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.manager.CurrentUser().Name))
	return nil
}

// Signup prompts for name, email, password and confirmation, checking each
// field as it is entered, and registers a new account. A successful signup
// leaves the user logged in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Name(name) {
		printlnFn("Name must be at least 2 characters long")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validate.Email(email) {
		printlnFn("Invalid email format")
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeBytes(password)

	if !validate.Password(string(password)) {
		printlnFn("Password must be at least 6 characters long")
		return nil
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.WipeBytes(confirm)

	if !validate.ConfirmPassword(string(password), string(confirm)) {
		printlnFn("Passwords do not match")
		return nil
	}

	if err := a.manager.Signup(ctx, name, email, string(password)); err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn("Success!")
	return nil
}

// Logout drops the persisted session and returns to the anonymous prompt.
func (a *App) Logout(ctx context.Context) error {
	a.manager.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
