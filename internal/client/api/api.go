// Package api exposes the backend's REST operations as typed calls. Every
// method is a pass-through to the HTTP client: no caching, no retries and no
// reshaping of the payload beyond JSON decoding.
package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/autofinance/internal/client/httpclient"
	"github.com/dmitrijs2005/autofinance/internal/client/models"
)

const (
	subscriptionsPath = "/subscriptions"
	profilePath       = "/protected"
	healthPath        = "/health"
)

// Doer is the part of httpclient.Client the façade needs.
type Doer interface {
	Do(ctx context.Context, method, path string, in, out any) error
}

type Client struct {
	http Doer
}

var _ Doer = (*httpclient.Client)(nil)

func New(d Doer) *Client {
	return &Client{http: d}
}

// Register creates an account. The backend answers with the created profile.
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.Profile, error) {
	var p models.Profile
	if err := c.http.Do(ctx, http.MethodPost, httpclient.RegisterPath, reg, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.http.Do(ctx, http.MethodPost, httpclient.LoginPath, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := c.http.Do(ctx, http.MethodGet, subscriptionsPath, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// AddSubscription subscribes to ticker as given; callers normalise it.
func (c *Client) AddSubscription(ctx context.Context, ticker string) (*models.Subscription, error) {
	var s models.Subscription
	if err := c.http.Do(ctx, http.MethodPost, subscriptionsPath, models.NewSubscription{Ticker: ticker}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteSubscription(ctx context.Context, ticker string) (*models.DeleteResult, error) {
	var res models.DeleteResult
	if err := c.http.Do(ctx, http.MethodDelete, subscriptionsPath+"/"+url.PathEscape(ticker), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Profile fetches the user the backend associates with the current token.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var resp struct {
		Data models.Profile `json:"data"`
	}
	if err := c.http.Do(ctx, http.MethodGet, profilePath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) Health(ctx context.Context) (*models.Health, error) {
	var h models.Health
	if err := c.http.Do(ctx, http.MethodGet, healthPath, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
