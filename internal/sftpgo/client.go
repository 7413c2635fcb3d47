/*
Copyright 2023 The SFTPGo Operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sftpgo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// APIError is a non-2xx response from the management API with its decoded
// {message, error} body.
type APIError struct {
	StatusCode  int
	Message     string `json:"message"`
	ErrorDetail string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message == "" && e.ErrorDetail == "" {
		return fmt.Sprintf("sftpgo api returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("sftpgo api returned status %d: %s: %s", e.StatusCode, e.Message, e.ErrorDetail)
}

func apiErrorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		// Best effort, the error body is informational only.
		_ = json.Unmarshal(body, apiErr)
	}

	return apiErr
}

// Client talks to a single SFTPGo instance. It caches one AuthorizedClient
// per admin username so bearer tokens are shared across reconciles. Safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu         sync.RWMutex
	authorized map[string]*AuthorizedClient
}

// NewClient validates url and returns a client for the instance behind it.
func NewClient(rawURL string) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sftpgo url %q: %w", rawURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid sftpgo url %q: unsupported scheme %q", rawURL, parsed.Scheme)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(parsed.String(), "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		authorized: map[string]*AuthorizedClient{},
	}, nil
}

// Authorized returns the AuthorizedClient for the given admin credentials,
// creating it on first use.
func (c *Client) Authorized(username, password string) *AuthorizedClient {
	c.mu.RLock()
	if authorized, ok := c.authorized[username]; ok {
		c.mu.RUnlock()

		return authorized
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if authorized, ok := c.authorized[username]; ok {
		return authorized
	}

	authorized := &AuthorizedClient{
		client: c,
		tokens: newTokenHolder(c, username, password),
	}
	c.authorized[username] = authorized

	return authorized
}

func (c *Client) endpoint(path, name string) string {
	endpoint := c.baseURL + path
	if name != "" {
		endpoint += "/" + url.PathEscape(name)
	}

	return endpoint
}

// AuthorizedClient performs bearer-authenticated calls against the entity
// collections of one SFTPGo instance.
type AuthorizedClient struct {
	client *Client
	tokens *tokenHolder
}

// GetEntity fetches the entity with the given name from a collection path.
// Returns nil when the server does not know the name.
func (a *AuthorizedClient) GetEntity(ctx context.Context, path, name string) (*EntityRef, error) {
	resp, err := a.do(ctx, http.MethodGet, path, name, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, apiErrorFromResponse(resp)
	}

	var ref EntityRef
	if err := json.NewDecoder(resp.Body).Decode(&ref); err != nil {
		return nil, fmt.Errorf("failed to decode %s %q: %w", path, name, err)
	}

	return &ref, nil
}

// CreateEntity POSTs body to a collection path and returns the id the server
// assigned.
func (a *AuthorizedClient) CreateEntity(ctx context.Context, path string, body any) (*EntityRef, error) {
	resp, err := a.do(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiErrorFromResponse(resp)
	}

	var ref EntityRef
	if err := json.NewDecoder(resp.Body).Decode(&ref); err != nil {
		return nil, fmt.Errorf("failed to decode create response for %s: %w", path, err)
	}

	return &ref, nil
}

// UpdateEntity PUTs body over the existing entity with the given name.
func (a *AuthorizedClient) UpdateEntity(ctx context.Context, path, name string, body any) error {
	resp, err := a.do(ctx, http.MethodPut, path, name, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiErrorFromResponse(resp)
	}

	return nil
}

// DeleteEntity removes the entity with the given name. A name the server no
// longer knows is not an error.
func (a *AuthorizedClient) DeleteEntity(ctx context.Context, path, name string) error {
	resp, err := a.do(ctx, http.MethodDelete, path, name, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return apiErrorFromResponse(resp)
	}

	return nil
}

// do sends one authenticated request. A 401 invalidates the cached token and
// the request is retried once with a fresh one.
func (a *AuthorizedClient) do(ctx context.Context, method, path, name string, body any) (*http.Response, error) {
	var payload []byte

	if body != nil {
		var err error

		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
		}
	}

	resp, err := a.send(ctx, method, path, name, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		a.tokens.Invalidate()

		resp, err = a.send(ctx, method, path, name, payload)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			defer resp.Body.Close()

			return nil, apiErrorFromResponse(resp)
		}
	}

	return resp, nil
}

func (a *AuthorizedClient) send(ctx context.Context, method, path, name string, payload []byte) (*http.Response, error) {
	header, err := a.tokens.AuthHeader(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.client.endpoint(path, name), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", path, err)
	}

	req.Header.Set("Authorization", header)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}

	return resp, nil
}
