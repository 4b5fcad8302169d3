// ABOUTME: HTTP transport client for the scripted spreadsheet endpoint
// ABOUTME: Handles retry with backoff, lock-contention retry, and response classification
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Views the script knows how to serve on a fetch.
type View string

const (
	ViewAssigned   View = "assigned"
	ViewUnassigned View = "unassigned"
	ViewDashboard  View = "dashboard"
)

// Operation names understood by the script.
const (
	OpAddArtist     = "addArtist"
	OpUpdateArtist  = "updateArtist"
	OpAddProfile    = "addProfile"
	OpDeleteProfile = "deleteProfile"
	OpAddTouchpoint = "addTouchpoint"
)

// busyMarker is the substring the script puts in its error message while
// its write lock is held by another request.
const busyMarker = "Server is busy"

// Request is the POST body for a write operation. Reads carry no body;
// their parameters travel in the query string.
type Request struct {
	Op       string `json:"op"`
	Data     any    `json:"data,omitempty"`
	ID       string `json:"id,omitempty"`
	Password string `json:"password"`
}

// ResponseData carries the raw row arrays of a fetch, or the stats matrix
// of the dashboard view. Rows stay untyped until the parse boundary.
type ResponseData struct {
	Artists     [][]any `json:"artists,omitempty"`
	Profiles    [][]any `json:"profiles,omitempty"`
	Touchpoints [][]any `json:"touchpoints,omitempty"`
	Stats       [][]any `json:"stats,omitempty"`
}

// Response is the script's JSON envelope.
type Response struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Data    ResponseData `json:"data,omitempty"`
}

// Sender issues one logical request to the endpoint. The reconciliation
// engine depends on this interface so tests can count mutations.
type Sender interface {
	Send(ctx context.Context, scriptURL string, payload *Request, secret string) (*Response, error)
}

// Client is the retrying transport. Zero side effects beyond the network
// call itself; safe to share.
type Client struct {
	httpClient    *http.Client
	retries       int
	netRetryDelay time.Duration
	busyBaseDelay time.Duration
	busyJitter    func() time.Duration
}

const (
	defaultRetries       = 3
	defaultNetRetryDelay = 1500 * time.Millisecond
	defaultBusyBaseDelay = 3 * time.Second
)

// NewClient creates a transport client with the default retry budget
// (3 attempts), 1.5s flat delay on network failure, and 3s + up to 1s of
// jitter on lock contention. The script has no server-side timeout of its
// own, so total latency is bounded by the retry budget.
func NewClient() *Client {
	return &Client{
		httpClient:    &http.Client{},
		retries:       defaultRetries,
		netRetryDelay: defaultNetRetryDelay,
		busyBaseDelay: defaultBusyBaseDelay,
		busyJitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(time.Second)))
		},
	}
}

// Send issues one logical request. A nil payload is a read, issued as an
// authenticated GET. A non-nil payload is a write, issued as a POST with
// the op, payload, and secret in a JSON body. The Content-Type is
// text/plain so browser clients sharing this endpoint skip CORS preflight.
func (c *Client) Send(ctx context.Context, scriptURL string, payload *Request, secret string) (*Response, error) {
	netLeft := c.retries
	busyLeft := c.retries

	for {
		body, netErr := c.roundTrip(ctx, scriptURL, payload, secret)
		if netErr != nil {
			netLeft--
			if netLeft <= 0 {
				return nil, fmt.Errorf("%w (last attempt: %v)", ErrNetworkUnreachable, netErr)
			}
			log.Printf("sheets: network error, retrying (%d left): %v", netLeft, netErr)
			if err := sleep(ctx, c.netRetryDelay); err != nil {
				return nil, err
			}
			continue
		}

		resp, classErr := classify(body)
		if classErr != nil {
			return nil, classErr
		}

		if resp.Status == "error" && strings.Contains(resp.Message, busyMarker) {
			busyLeft--
			if busyLeft <= 0 {
				return nil, fmt.Errorf("%w: %s", ErrServerBusy, resp.Message)
			}
			log.Printf("sheets: server busy, retrying (%d left)", busyLeft)
			if err := sleep(ctx, c.busyBaseDelay+c.busyJitter()); err != nil {
				return nil, err
			}
			continue
		}

		if resp.Status != "success" {
			return nil, &RemoteError{Message: resp.Message}
		}
		return resp, nil
	}
}

// roundTrip performs the single HTTP exchange and returns the raw body.
func (c *Client) roundTrip(ctx context.Context, scriptURL string, payload *Request, secret string) (string, error) {
	var req *http.Request
	var err error

	if payload == nil {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, readURL(scriptURL, secret), nil)
		if err != nil {
			return "", fmt.Errorf("failed to build request: %w", err)
		}
	} else {
		p := *payload
		p.Password = secret
		encoded, marshalErr := json.Marshal(p)
		if marshalErr != nil {
			return "", fmt.Errorf("failed to marshal payload: %w", marshalErr)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, scriptURL, bytes.NewReader(encoded))
		if err != nil {
			return "", fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// readURL appends the fetch op and secret to the script URL, respecting a
// query string the caller may already have added (the view parameter).
func readURL(scriptURL, secret string) string {
	separator := "?"
	if strings.Contains(scriptURL, "?") {
		separator = "&"
	}
	return scriptURL + separator + "op=fetch&password=" + url.QueryEscape(secret)
}

// WithView appends the view parameter to a script URL.
func WithView(scriptURL string, view View) string {
	separator := "?"
	if strings.Contains(scriptURL, "?") {
		separator = "&"
	}
	return scriptURL + separator + "view=" + string(view)
}

// classify sorts a raw body into the response taxonomy. Order matters:
// JSON first, then the known HTML pages, then the truncated-body fallback.
func classify(body string) (*Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(body), &resp); err == nil {
		return &resp, nil
	}

	if strings.Contains(body, "<!DOCTYPE html>") {
		if strings.Contains(body, "Page Not Found") {
			return nil, ErrEndpointNotFound
		}
		if strings.Contains(body, "Sign in") {
			return nil, ErrAuthMisconfigured
		}
		return nil, ErrHTMLResponse
	}

	return nil, &MalformedResponseError{Body: truncate(body, 100)}
}

// truncate keeps the first n characters, never splitting a multibyte
// rune in the diagnostic.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// sleep waits for d unless the context is cancelled first. An abandoned
// request may still complete server-side; callers re-fetch for truth.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
