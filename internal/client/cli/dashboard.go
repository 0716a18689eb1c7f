package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/autofinance/internal/client/models"
	"github.com/dmitrijs2005/autofinance/internal/logging"
)

const (
	msgLoadFailed   = "Failed to load subscriptions"
	msgAddFailed    = "Failed to add subscription"
	msgDeleteFailed = "Failed to delete subscription"
)

// SubscriptionAPI is the part of the backend the dashboard talks to.
type SubscriptionAPI interface {
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	AddSubscription(ctx context.Context, ticker string) (*models.Subscription, error)
	DeleteSubscription(ctx context.Context, ticker string) (*models.DeleteResult, error)
}

// Dashboard holds the subscription list shown to the user and the last
// error message. A failed operation never touches the list.
type Dashboard struct {
	api  SubscriptionAPI
	log  logging.Logger
	subs []models.Subscription
	err  string
}

func NewDashboard(api SubscriptionAPI, log logging.Logger) *Dashboard {
	return &Dashboard{api: api, log: log}
}

// Load replaces the list with the backend's current subscriptions.
func (d *Dashboard) Load(ctx context.Context) {
	subs, err := d.api.ListSubscriptions(ctx)
	if err != nil {
		d.log.Error(ctx, "list subscriptions", "error", err)
		d.err = msgLoadFailed
		return
	}
	d.subs = subs
}

// Add subscribes to ticker (upper-cased) and reloads the list on success.
func (d *Dashboard) Add(ctx context.Context, ticker string) {
	d.err = ""
	t := models.NormalizeTicker(ticker)
	if _, err := d.api.AddSubscription(ctx, t); err != nil {
		d.log.Error(ctx, "add subscription", "ticker", t, "error", err)
		d.err = msgAddFailed
		return
	}
	d.Load(ctx)
}

// Remove deletes the subscription for ticker and reloads the list on success.
func (d *Dashboard) Remove(ctx context.Context, ticker string) {
	if _, err := d.api.DeleteSubscription(ctx, ticker); err != nil {
		d.log.Error(ctx, "delete subscription", "ticker", ticker, "error", err)
		d.err = msgDeleteFailed
		return
	}
	d.Load(ctx)
}

// Reset forgets the list and the error, e.g. after logout.
func (d *Dashboard) Reset() {
	d.subs = nil
	d.err = ""
}

func (d *Dashboard) Subscriptions() []models.Subscription {
	out := make([]models.Subscription, len(d.subs))
	copy(out, d.subs)
	return out
}

func (d *Dashboard) Err() string { return d.err }

// Render writes the dashboard to w.
//
//	Your Subscriptions
//	Error: Failed to add subscription
//	  1. AAPL
//	  2. MSFT
func (d *Dashboard) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Your Subscriptions"); err != nil {
		return err
	}
	if d.err != "" {
		if _, err := fmt.Fprintln(w, "Error:", d.err); err != nil {
			return err
		}
	}
	if len(d.subs) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}
	for i, s := range d.subs {
		if _, err := fmt.Fprintf(w, "%3d. %s\n", i+1, s.Ticker); err != nil {
			return err
		}
	}
	return nil
}
