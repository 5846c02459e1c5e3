// Package remote is the HTTP client for the hub. It serves two masters: the
// sync engine (inbox drain, snapshot push-back) and the persistence adapter
// (ledger documents), for which it doubles as the remote persist.Store.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/hub"
)

var ErrUnauthorized = errors.New("unknown letter or code")

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Drain performs the destructive inbox read for the account.
func (c *Client) Drain(ctx context.Context, key account.Key) (*hub.DrainResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/inbox?letter=%s&code=%s",
		c.baseURL, url.QueryEscape(key.Letter), url.QueryEscape(key.Code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("draining inbox: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("draining inbox: unexpected status %d", resp.StatusCode)
	}

	var drained hub.DrainResponse
	if err := json.NewDecoder(resp.Body).Decode(&drained); err != nil {
		return nil, fmt.Errorf("decoding inbox response: %w", err)
	}

	return &drained, nil
}

// PushSnapshot republishes the website's ledgers for the counterpart.
func (c *Client) PushSnapshot(ctx context.Context, key account.Key, snap hub.WebsiteSnapshot) error {
	body := hub.PushRequest{
		Letter:      key.Letter,
		Code:        key.Code,
		Note:        hub.NoteWebsiteSnapshot,
		WebsiteData: &snap,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/inbox", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("pushing snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pushing snapshot: unexpected status %d", resp.StatusCode)
	}

	return nil
}

// LoginResult is the hub's answer to a letter/code login.
type LoginResult struct {
	Token   string `json:"token"`
	Label   string `json:"label"`
	IsAdmin bool   `json:"isAdmin"`
}

// Login exchanges a letter/code pair for a session token. The hub owns the
// directory; the tracker only relays credentials.
func (c *Client) Login(ctx context.Context, letter, code string) (*LoginResult, error) {
	data, err := json.Marshal(map[string]string{"letter": letter, "code": code})
	if err != nil {
		return nil, fmt.Errorf("encoding login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/session", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("logging in: unexpected status %d", resp.StatusCode)
	}

	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}

	return &result, nil
}

// Load implements persist.Store against the hub's ledger endpoint. A null
// document reads as absent; anything but 200 is an unavailable remote.
func (c *Client) Load(ctx context.Context, key account.Key, ledger string) ([]byte, bool, error) {
	endpoint := fmt.Sprintf("%s/api/v1/ledgers/%s?letter=%s&code=%s",
		c.baseURL, url.PathEscape(ledger), url.QueryEscape(key.Letter), url.QueryEscape(key.Code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("loading ledger %s: %w", ledger, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("loading ledger %s: unexpected status %d", ledger, resp.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("decoding ledger %s: %w", ledger, err)
	}

	data, ok := body[ledger]
	if !ok || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, false, nil
	}

	return data, true, nil
}

// Save implements persist.Store: a wholesale PUT of the ledger document.
func (c *Client) Save(ctx context.Context, key account.Key, ledger string, data []byte) error {
	endpoint := fmt.Sprintf("%s/api/v1/ledgers/%s?letter=%s&code=%s",
		c.baseURL, url.PathEscape(ledger), url.QueryEscape(key.Letter), url.QueryEscape(key.Code))

	body, err := json.Marshal(map[string]json.RawMessage{ledger: data})
	if err != nil {
		return fmt.Errorf("encoding ledger %s: %w", ledger, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("saving ledger %s: %w", ledger, err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("saving ledger %s: unexpected status %d", ledger, resp.StatusCode)
	}

	return nil
}
