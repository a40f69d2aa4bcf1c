// Package rest is the staff app's API client: one configured HTTP client
// plus thin typed services, one per resource group. It mirrors the two
// interceptors the app relies on: outbound bearer injection and token
// clearing on a 401.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fleetease/internal/app/secrets"
)

// Client is the single HTTP client the app talks to the API through
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for baseURL, reading and clearing the
// bearer token through store
func NewClient(baseURL string, store secrets.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{store: store, base: http.DefaultTransport},
		},
	}
}

// authTransport attaches the stored bearer token to every outgoing request
// and deletes it when the server answers 401. No retry, no refresh.
type authTransport struct {
	store secrets.Store
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.store.Get(req.Context(), secrets.KeyAuthToken)
	if err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired or revoked; drop it so the app returns to login.
		// Best effort only, the 401 still propagates to the caller.
		_ = t.store.Delete(req.Context(), secrets.KeyAuthToken)
	}

	return resp, nil
}

// get performs a GET request and decodes the JSON response into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// post performs a POST request with a JSON body and decodes the response into out
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := decodeDetail(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			return &AuthenticationError{Detail: detail}
		}
		return &ServerError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeDetail pulls the "detail" field out of an error body, if any
func decodeDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
