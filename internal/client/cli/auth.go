package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// fail prints the user-facing rendering of err and returns err unchanged.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, client.UserMessage(err))
	return err
}

// Register prompts for the sign-up fields, refuses emails that are already
// registered and creates the account. The new user still has to log in.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	a.Navigate("/signup")

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	exists, err := a.auth.CheckEmail(ctx, email)
	if err != nil {
		return a.fail(err)
	}
	if exists {
		fmt.Fprintln(a.out, "This email is already registered")
		return fmt.Errorf("%w: email already registered", common.ErrValidation)
	}

	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.SignUpRequest{Username: username, Email: email, Password: string(password), PhoneNo: phone}
	if err := a.auth.SignUp(ctx, req); err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Account created. Please log in.")
	a.Navigate(session.LoginPath)
	return nil
}

// Login prompts for credentials and installs the session on success. The
// cart is fetched in the background by the synchronizer once the session
// announces the login.
func (a *App) Login(ctx context.Context) error {
	a.Navigate(session.LoginPath)

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.auth.SignIn(ctx, username, string(password))
	if err != nil {
		a.log.Warn(ctx, "login failed", "user", username, "error", err)
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", id.Username)
	a.Navigate(session.HomePath)
	return nil
}

// Logout ends the session. The session itself moves the location to the
// login page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
