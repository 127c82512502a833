// Package stremio is a minimal client for the Stremio API endpoint that
// replaces a user's addon collection.
package stremio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public Stremio API base.
const DefaultBaseURL = "https://api.strem.io/api/"

const (
	// RequestType is the type tag the API expects for a collection replace.
	RequestType = "AddonCollectionSet"

	addonCollectionSetPath = "addonCollectionSet"
)

// AddonCollectionSetRequest is the body of an addonCollectionSet call.
// Field order is the wire order.
type AddonCollectionSetRequest struct {
	Type    string          `json:"type"`
	AuthKey string          `json:"authKey"`
	Addons  json.RawMessage `json:"addons"`
}

// Response is the decoded API reply. Result is nil when the reply has no
// result field or it is null.
type Response struct {
	Result     *Result
	StatusCode int
}

// Result is the result object of an addonCollectionSet reply.
type Result struct {
	Success bool            `json:"success"`
	Error   json.RawMessage `json:"error,omitempty"`

	// raw is set when the result value was not an object.
	raw json.RawMessage
}

// ErrorText renders the remote error description. Plain strings are
// returned as-is; structured errors use their message field when present,
// otherwise their JSON text.
func (r *Result) ErrorText() string {
	if r.raw != nil {
		return string(r.raw)
	}
	v := bytes.TrimSpace(r.Error)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "undefined"
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(v, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return string(v)
}

// Client talks to the Stremio API.
type Client struct {
	baseURL string
	http    *resty.Client
	log     logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the client send requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New returns a client for the API rooted at baseURL. An empty baseURL
// means DefaultBaseURL. No request timeout is applied; callers bound
// requests through their context.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		baseURL: baseURL,
		http:    resty.New(),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full addonCollectionSet URL.
func (c *Client) Endpoint() string {
	return c.baseURL + addonCollectionSetPath
}

// EncodeAddonCollectionSet returns the exact request body for replacing the
// collection owned by authKey with addons.
func EncodeAddonCollectionSet(authKey string, addons json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(&AddonCollectionSetRequest{
		Type:    RequestType,
		AuthKey: authKey,
		Addons:  addons,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SetAddonCollection replaces the user's addon collection. The reply is
// decoded regardless of HTTP status; an error is returned only when the
// request fails in transport or the reply is not a JSON object.
func (c *Client) SetAddonCollection(ctx context.Context, authKey string, addons json.RawMessage) (*Response, error) {
	body, err := EncodeAddonCollectionSet(authKey, addons)
	if err != nil {
		return nil, err
	}

	url := c.Endpoint()
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}

	c.log.WithFields(logrus.Fields{
		"url":    url,
		"status": res.StatusCode(),
	}).Debug("addonCollectionSet replied")

	return decodeResponse(res.StatusCode(), res.Body())
}

func decodeResponse(status int, body []byte) (*Response, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response (HTTP %d): %w", status, err)
	}
	if envelope == nil {
		return nil, fmt.Errorf("failed to parse response (HTTP %d): body is null", status)
	}

	resp := &Response{StatusCode: status}

	raw, ok := envelope["result"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return resp, nil
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		// result exists but is not an object: treat as an unsuccessful reply
		result = Result{raw: raw}
	}
	resp.Result = &result
	return resp, nil
}
