package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/autofinance/internal/client/httpclient"
	"github.com/dmitrijs2005/autofinance/internal/client/models"
)

const (
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
)

// failureMessage prefers the backend's detail over the generic fallback.
func failureMessage(err error, fallback string) string {
	if d := httpclient.Detail(err); d != "" {
		return d
	}
	return fallback
}

// Login shows the login form. On success the dashboard opens.
func (a *App) Login(ctx context.Context) error {
	a.route = PathLogin

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, models.Credentials{Email: email, Password: password}); err != nil {
		a.log.Error(ctx, "login failed", "email", email, "error", err)
		printlnFn("Error:", failureMessage(err, msgLoginFailed))
		return err
	}

	printlnFn("Logged in as", email)
	return a.navigate(ctx, PathDashboard)
}

// Register shows the registration form. On success the login form opens.
func (a *App) Register(ctx context.Context) error {
	a.route = PathRegister

	var reg models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &reg.FirstName},
		{"Last name", &reg.LastName},
		{"Email", &reg.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	reg.Password = password

	if _, err := a.session.Register(ctx, reg); err != nil {
		a.log.Error(ctx, "registration failed", "email", reg.Email, "error", err)
		printlnFn("Error:", failureMessage(err, msgRegisterFailed))
		return err
	}

	printlnFn("Account created. Please log in.")
	return a.navigate(ctx, PathLogin)
}

// Logout forgets the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		printlnFn("Error: logout failed")
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI asks the backend who the token belongs to. The session email is
// whatever was typed at login, so a mismatch is reported.
func (a *App) WhoAmI(ctx context.Context) error {
	p, err := a.api.Profile(ctx)
	if err != nil {
		a.log.Error(ctx, "profile request failed", "error", err)
		printlnFn("Error: failed to load profile")
		return err
	}

	printlnFn(fmt.Sprintf("%s %s <%s> (id %d)", p.FirstName, p.LastName, p.Email, p.ID))
	if s := a.session.Session(); s.User != nil && s.User.Email != p.Email {
		printlnFn(fmt.Sprintf("Warning: logged in as %q but the token belongs to %q", s.User.Email, p.Email))
	}
	return nil
}

// Ping reports the backend status.
func (a *App) Ping(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		a.log.Error(ctx, "health check failed", "server", a.serverURL(), "error", err)
		printlnFn("Backend unreachable")
		return err
	}
	printlnFn("Backend status:", h.Status)
	return nil
}

func (a *App) serverURL() string {
	if a.config == nil {
		return ""
	}
	return a.config.ServerURL
}
