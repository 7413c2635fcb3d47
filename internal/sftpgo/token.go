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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// tokenLifetimeCap bounds how long a fetched token is trusted. Stale clocks
// or long-lived server tokens can otherwise strand the client with a bearer
// the server no longer accepts.
const tokenLifetimeCap = 30 * time.Second

const tokenPath = "/api/v2/token"

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// tokenHolder lazily exchanges HTTP Basic credentials for a bearer token and
// caches it until expiry. Safe for concurrent use: readers share a valid
// token under a read lock, a single writer performs the exchange.
type tokenHolder struct {
	client   *Client
	username string
	password string

	now func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func newTokenHolder(client *Client, username, password string) *tokenHolder {
	return &tokenHolder{
		client:   client,
		username: username,
		password: password,
		now:      time.Now,
	}
}

// AuthHeader returns a currently valid Authorization header value, fetching a
// new token when the cached one has expired.
func (h *tokenHolder) AuthHeader(ctx context.Context) (string, error) {
	h.mu.RLock()
	if h.now().Before(h.expiresAt) {
		header := "Bearer " + h.token
		h.mu.RUnlock()

		return header, nil
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.now().Before(h.expiresAt) {
		return "Bearer " + h.token, nil
	}

	token, expiresAt, err := h.fetch(ctx)
	if err != nil {
		return "", err
	}

	h.token = token
	h.expiresAt = expiresAt

	return "Bearer " + h.token, nil
}

// Invalidate drops the cached token so the next AuthHeader call fetches a
// fresh one. Called after the server rejects a bearer with 401.
func (h *tokenHolder) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = ""
	h.expiresAt = time.Time{}
}

func (h *tokenHolder) fetch(ctx context.Context) (string, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.client.endpoint(tokenPath, ""), nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build token request: %w", err)
	}

	req.SetBasicAuth(h.username, h.password)

	resp, err := h.client.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, apiErrorFromResponse(resp)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to decode token response: %w", err)
	}

	expiresAt := body.ExpiresAt
	if limit := h.now().Add(tokenLifetimeCap); expiresAt.After(limit) {
		expiresAt = limit
	}

	return body.AccessToken, expiresAt, nil
}
