// Package discord provides a minimal client for delivering messages to
// users over the Discord REST API.
package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBaseURL = "https://discord.com/api/v10"

// Client represents a Discord bot client used to send direct messages.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Discord Client with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

type openChannelRequest struct {
	RecipientID string `json:"recipient_id"`
}

type openChannelResponse struct {
	ID string `json:"id"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// Send delivers a direct message to the user with the given id. It first
// opens (or reuses) the DM channel with the user, then posts the message.
func (c *Client) Send(to string, msg string) error {
	channelID, err := c.openDM(to)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}

	body, err := json.Marshal(sendMessageRequest{Content: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/channels/%s/messages", c.baseURL, channelID)

	resp, err := c.post(url, body)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord API error: %s", resp.Status)
	}

	return nil
}

func (c *Client) openDM(userID string) (string, error) {
	body, err := json.Marshal(openChannelRequest{RecipientID: userID})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.post(c.baseURL+"/users/@me/channels", body)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("discord API error: %s", resp.Status)
	}

	var channel openChannelResponse
	if err := json.NewDecoder(resp.Body).Decode(&channel); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return channel.ID, nil
}

func (c *Client) post(url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bot "+c.token)

	return c.client.Do(req)
}
