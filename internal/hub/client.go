// Package hub implements the outbound WebSub subscription handshake.
package hub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds the hub endpoint and the parameters sent with every
// subscription request.
type Config struct {
	// URL is the hub's subscription endpoint.
	URL string
	// CallbackURL receives verification requests and push notifications.
	CallbackURL string
	// VerifyToken is echoed back by the hub during verification.
	VerifyToken string
	// TopicTemplate turns a topic id into the topic URL, e.g.
	// "https://www.youtube.com/xml/feeds/videos.xml?channel_id=%s".
	TopicTemplate string
	// LeaseSeconds is the lease length requested from the hub.
	LeaseSeconds int64
}

// Client performs subscribe requests against the hub.
type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// TopicURL returns the feed URL for a topic id.
func (c *Client) TopicURL(topicID string) string {
	return fmt.Sprintf(c.cfg.TopicTemplate, url.QueryEscape(topicID))
}

// Subscribe sends a synchronous-verification subscribe request for the
// topic. A single attempt is made; the caller decides what a failure means.
// The hub-granted lease length arrives on the verification callback, not in
// this response.
func (c *Client) Subscribe(ctx context.Context, topicID string) error {
	form := url.Values{
		"hub.mode":          {"subscribe"},
		"hub.topic":         {c.TopicURL(topicID)},
		"hub.callback":      {c.cfg.CallbackURL},
		"hub.verify":        {"sync"},
		"hub.verify_token":  {c.cfg.VerifyToken},
		"hub.lease_seconds": {strconv.FormatInt(c.cfg.LeaseSeconds, 10)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build subscribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send subscribe request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hub returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return nil
}
