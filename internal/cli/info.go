package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// WhoAmI prints the current user, or a hint when nobody is logged in.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.manager.CurrentUser()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %s)", u.Name, u.Email, u.ID))
	return nil
}

// Sessions prints the persisted login counter.
func (a *App) Sessions(ctx context.Context) error {
	n, err := a.manager.SessionCount(ctx)
	if err != nil {
		printlnFn("Failed to read session count:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Session count: %d", n))
	return nil
}

// ResetSessions sets the login counter back to 1.
func (a *App) ResetSessions(ctx context.Context) error {
	if err := a.manager.ResetSessionCount(ctx); err != nil {
		printlnFn("Failed to reset session count:", err.Error())
		return nil
	}
	printlnFn("Session count reset to 1")
	return nil
}

// Users lists all registered accounts.
func (a *App) Users(ctx context.Context) error {
	users, err := a.manager.Users(ctx)
	if err != nil {
		printlnFn("Failed to list users:", err.Error())
		return nil
	}
	if len(users) == 0 {
		printlnFn("No registered users")
		return nil
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
	}
	return nil
}

// Wipe deletes every stored record after an explicit confirmation.
func (a *App) Wipe(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete ALL stored data? Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "yes" {
		printlnFn("Cancelled")
		return nil
	}
	if err := a.manager.Wipe(ctx); err != nil {
		printlnFn("Failed to wipe storage:", err.Error())
		return nil
	}
	printlnFn("All data removed")
	return nil
}
