package hub

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/pixil98/union-domain/internal/world"
)

const DefaultTimeout = 3 * time.Second

// Client talks to the hub. It holds the credentials from the latest successful
// registration; every call after that is authenticated with them.
type Client struct {
	http    *http.Client
	timeout time.Duration

	mu  sync.RWMutex
	reg *Registration
}

func NewClient(opts ...ClientOpt) *Client {
	c := &Client{
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Announce registers the domain with the hub at hubURL and returns the issued
// credentials. The hub must return one item id per submitted item. The
// credentials are not used until they are passed to Use.
func (c *Client) Announce(ctx context.Context, hubURL string, req RegisterRequest) (*Registration, error) {
	hubURL = strings.TrimRight(strings.TrimSpace(hubURL), "/")
	if hubURL == "" {
		return nil, fmt.Errorf("hub url is required")
	}

	var resp registerResponse
	if err := c.post(ctx, hubURL+"/register", req, &resp); err != nil {
		return nil, fmt.Errorf("registering with %s: %w", hubURL, err)
	}
	if len(resp.Items) != len(req.Items) {
		return nil, fmt.Errorf("registering with %s: hub returned %d item ids for %d items", hubURL, len(resp.Items), len(req.Items))
	}

	reg := &Registration{
		HubURL: hubURL,
		Id:     resp.Id,
		Secret: resp.Secret,
		Items:  resp.Items,
	}

	slog.InfoContext(ctx, "registered with hub", "hub", hubURL, "domain", reg.Id, "items", len(reg.Items))
	return reg, nil
}

// Use switches every later call and Verify to reg's credentials.
func (c *Client) Use(reg *Registration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reg = reg
}

// Registration returns the current credentials, if any.
func (c *Client) Registration() (*Registration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.reg, c.reg != nil
}

// Verify reports whether secret matches the one the hub issued. It is always
// false before registration.
func (c *Client) Verify(secret string) bool {
	reg, ok := c.Registration()
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(reg.Secret)) == 1
}

// Transfer tells the hub an item has moved for user.
func (c *Client) Transfer(ctx context.Context, user string, item world.ItemID, to string) error {
	reg, ok := c.Registration()
	if !ok {
		return ErrNotRegistered
	}

	body := transferRequest{
		Domain: reg.Id,
		Secret: reg.Secret,
		User:   user,
		Item:   item,
		To:     to,
	}
	if err := c.post(ctx, reg.HubURL+"/transfer", body, nil); err != nil {
		return fmt.Errorf("transferring item %s: %w", item, err)
	}
	return nil
}

// Score reports user's score for this domain.
func (c *Client) Score(ctx context.Context, user string, score float64) error {
	reg, ok := c.Registration()
	if !ok {
		return ErrNotRegistered
	}

	body := scoreRequest{
		Domain: reg.Id,
		Secret: reg.Secret,
		User:   user,
		Score:  score,
	}
	if err := c.post(ctx, reg.HubURL+"/score", body, nil); err != nil {
		return fmt.Errorf("scoring user %s: %w", user, err)
	}
	return nil
}

// post sends body as JSON and decodes the reply into out when out is non-nil.
// A non-2xx status or an "error" field in the reply becomes an *Error.
func (c *Client) post(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var eb errorBody
	_ = json.Unmarshal(data, &eb)
	if eb.Error != "" {
		return &Error{Status: resp.StatusCode, Message: eb.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
