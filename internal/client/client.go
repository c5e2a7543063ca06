// Package client is a small read-only client for the dashboard API.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/francescofano/langgraph-telegram-bot/internal/model"
)

// Client talks to a running dashboard service.
type Client struct {
	http *resty.Client
}

// New creates a Client for the given base URL (e.g. http://localhost:8080).
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

// ListUsers fetches the distinct user ids known to the store.
func (c *Client) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	var users []model.UserSummary
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, apiError(res)
	}
	return users, nil
}

// ListMemories fetches the memory views for one user, newest first.
func (c *Client) ListMemories(ctx context.Context, userID string) ([]model.MemoryView, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}
	var views []model.MemoryView
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&views).
		Get("/api/memories/" + url.PathEscape(userID))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, apiError(res)
	}
	return views, nil
}

func apiError(res *resty.Response) error {
	msg := strings.TrimSpace(res.String())
	if msg == "" {
		msg = res.Status()
	}
	return fmt.Errorf("api error (status %d): %s", res.StatusCode(), msg)
}
