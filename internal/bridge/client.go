// Package bridge drives the external messaging client as an opaque
// subprocess: one JSON request on stdin, one JSON response on stdout.
// The assistant never links against the client or touches its session
// file beyond passing the path through.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Operations understood by the messaging client.
const (
	OpInitialize    = "initialize"
	OpGetAllFriends = "getAllFriends"
	OpGetAllGroups  = "getAllGroups"
	OpGetOwnID      = "getOwnId"
)

// Friend is one contact known to the messaging client.
type Friend struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is one group chat known to the messaging client.
type Group struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Members int    `json:"members"`
}

type request struct {
	Op      string `json:"op"`
	Session string `json:"session"`
}

type response struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client invokes the messaging client binary per operation.
type Client struct {
	clientPath  string
	sessionPath string
	timeout     time.Duration
}

func NewClient(clientPath, sessionPath string) *Client {
	return &Client{
		clientPath:  clientPath,
		sessionPath: sessionPath,
		timeout:     30 * time.Second,
	}
}

// WithTimeout overrides the per-invocation timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// Initialize creates or refreshes the local session.
func (c *Client) Initialize(ctx context.Context) error {
	_, err := c.call(ctx, OpInitialize)
	return err
}

// GetAllFriends lists every contact.
func (c *Client) GetAllFriends(ctx context.Context) ([]Friend, error) {
	data, err := c.call(ctx, OpGetAllFriends)
	if err != nil {
		return nil, err
	}

	var friends []Friend
	if err := json.Unmarshal(data, &friends); err != nil {
		return nil, fmt.Errorf("decode friends: %w", err)
	}
	return friends, nil
}

// GetAllGroups lists every group chat.
func (c *Client) GetAllGroups(ctx context.Context) ([]Group, error) {
	data, err := c.call(ctx, OpGetAllGroups)
	if err != nil {
		return nil, err
	}

	var groups []Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decode groups: %w", err)
	}
	return groups, nil
}

// GetOwnID returns the account id behind the session.
func (c *Client) GetOwnID(ctx context.Context) (string, error) {
	data, err := c.call(ctx, OpGetOwnID)
	if err != nil {
		return "", err
	}

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return "", fmt.Errorf("decode own id: %w", err)
	}
	return id, nil
}

func (c *Client) call(ctx context.Context, op string) (json.RawMessage, error) {
	if c.clientPath == "" {
		return nil, fmt.Errorf("messaging client path is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(request{Op: op, Session: c.sessionPath})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.clientPath)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("messaging client %s: %s: %w", op, msg, err)
		}
		return nil, fmt.Errorf("messaging client %s: %w", op, err)
	}

	var resp response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("messaging client %s: malformed response: %w", op, err)
	}
	if !resp.OK {
		return nil, fmt.Errorf("messaging client %s: %s", op, resp.Error)
	}
	return resp.Data, nil
}
