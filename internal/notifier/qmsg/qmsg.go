// Package qmsg sends notifications through the Qmsg push relay.
//
// The relay is keyed by a static token appended to its URL and accepts a
// single form field, msg, holding the text to push.
package qmsg

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody bounds how much of a failed relay response ends up in the error
const maxErrorBody = 256

// Client posts messages to the relay
type Client struct {
	client   *http.Client
	endpoint string
}

// NewClient creates a relay client for the given base URL and key
func NewClient(client *http.Client, baseURL, key string) *Client {
	return &Client{
		client:   client,
		endpoint: strings.TrimSuffix(baseURL, "/") + "/" + url.PathEscape(key),
	}
}

// Notify pushes title, message and link as one text message
func (c *Client) Notify(title, message, link string) error {
	lines := []string{title, message}
	if link != "" {
		lines = append(lines, link)
	}

	form := url.Values{}
	form.Set("msg", strings.Join(lines, "\n"))

	resp, err := c.client.PostForm(c.endpoint, form)
	if err != nil {
		return fmt.Errorf("error sending qmsg notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("qmsg returned status code %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
