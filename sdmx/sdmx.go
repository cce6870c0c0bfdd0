// Copyright 2026 UNICEF Data Contributors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sdmx

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the UNICEF SDMX warehouse. It may be
// overwritten in tests before creating a new client.
var URL = "https://sdmx.data.unicef.org/ws/public/sdmxapi/rest"

// DefaultAgency is the SDMX agency of the UNICEF warehouse.
const DefaultAgency = "UNICEF"

// ErrorKind classifies request failures. Fallback and retry decisions are
// made on the kind, never on error message text.
type ErrorKind int

const (
	// KindInvalidQuery: the request itself is malformed. Never retried.
	KindInvalidQuery ErrorKind = iota
	// KindNotFound: the dataflow or key has no data. Triggers dataflow
	// fallback, not a retry.
	KindNotFound
	// KindTransient: network failure or server-side error. Retried up to the
	// configured attempt count.
	KindTransient
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidQuery:
		return "invalid query"
	case KindNotFound:
		return "not found"
	case KindTransient:
		return "transient"
	}
	return fmt.Sprintf("unknown kind %d", int(k))
}

// Error is a typed request error raised by the client.
type Error struct {
	Kind    ErrorKind
	Status  int // HTTP status code, when one was received
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the error kind from err's chain, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if goerrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsNotFound checks whether err is classified as "not found".
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsInvalidQuery checks whether err is classified as an invalid query.
func IsInvalidQuery(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidQuery
}

// InvalidQuery creates a KindInvalidQuery error. It is also used by callers
// validating user-level parameters before any request is made.
func InvalidQuery(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidQuery, Message: fmt.Sprintf(format, args...)}
}

// Config is the client configuration. The zero value of each field selects
// its default.
type Config struct {
	BaseURL    string        // default: URL
	Agency     string        // default: DefaultAgency
	HTTP       *http.Client  // default: http.DefaultClient
	MaxRetries int           // attempts for transient failures; default: 3
	RetryDelay time.Duration // delay before a retry attempt; default: 1s
	PageDelay  time.Duration // delay between data pages; default: 500ms
}

// Client for querying the UNICEF SDMX REST API.
type Client struct {
	baseURL    string
	agency     string
	http       *http.Client
	maxRetries int
	retryDelay time.Duration
	pageDelay  time.Duration
}

// newClient creates a new client, filling in the config defaults.
func newClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	c := &Client{
		baseURL:    cfg.BaseURL,
		agency:     cfg.Agency,
		http:       cfg.HTTP,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		pageDelay:  cfg.PageDelay,
	}
	if c.baseURL == "" {
		c.baseURL = URL
	}
	if c.agency == "" {
		c.agency = DefaultAgency
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.maxRetries <= 0 {
		c.maxRetries = 3
	}
	if c.retryDelay == 0 {
		c.retryDelay = time.Second
	}
	if c.pageDelay == 0 {
		c.pageDelay = 500 * time.Millisecond
	}
	return c
}

// Agency returns the configured SDMX agency.
func (c *Client) Agency() string { return c.agency }

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// UseClient creates a new client from cfg and injects it into the context.
// A nil cfg selects all the defaults.
func UseClient(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(cfg))
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// Get issues a GET request for path under the base URL and returns the
// response body. Transient failures are retried up to MaxRetries attempts
// with a growing delay; other error kinds are returned immediately.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	uri := c.baseURL + "/" + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	var lastErr error
	delay := c.retryDelay
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			logging.Infof(ctx, "retrying %s, attempt %d of %d", path, attempt+1, c.maxRetries)
			time.Sleep(delay)
			delay *= 2
		}
		body, err := c.getOnce(ctx, uri)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if k, ok := KindOf(err); !ok || k != KindTransient {
			return nil, err
		}
	}
	return nil, lastErr
}

// getOnce performs a single GET attempt and classifies the outcome.
func (c *Client) getOnce(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to create request for '%s'", uri)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransient, Message: err.Error()}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransient, Message: "failed to read response body: " + err.Error()}
	}
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, Status: resp.StatusCode, Message: uri}
	case resp.StatusCode == http.StatusBadRequest:
		return nil, &Error{Kind: KindInvalidQuery, Status: resp.StatusCode, Message: uri}
	default:
		return nil, &Error{Kind: KindTransient, Status: resp.StatusCode, Message: uri}
	}
}
