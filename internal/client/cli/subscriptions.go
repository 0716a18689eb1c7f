package cli

import (
	"context"
	"strings"
)

// Dashboard reloads the subscription list and prints it.
func (a *App) Dashboard(ctx context.Context) error {
	a.route = PathDashboard
	a.dashboard.Load(ctx)
	return a.render()
}

// Add subscribes to ticker and prints the refreshed dashboard.
func (a *App) Add(ctx context.Context, ticker string) error {
	a.route = PathDashboard
	a.dashboard.Add(ctx, ticker)
	return a.render()
}

// Remove unsubscribes from ticker and prints the refreshed dashboard.
func (a *App) Remove(ctx context.Context, ticker string) error {
	a.route = PathDashboard
	a.dashboard.Remove(ctx, ticker)
	return a.render()
}

func (a *App) render() error {
	var b strings.Builder
	if err := a.dashboard.Render(&b); err != nil {
		return err
	}
	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}
