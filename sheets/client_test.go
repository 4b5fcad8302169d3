// ABOUTME: Tests for transport retry budgets and response classification
// ABOUTME: Covers the four error buckets and the busy-retry path
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFastClient returns a client with sub-millisecond retry delays so
// tests exercise the budget without real backoff.
func newFastClient() *Client {
	c := NewClient()
	c.netRetryDelay = time.Millisecond
	c.busyBaseDelay = time.Millisecond
	c.busyJitter = func() time.Duration { return 0 }
	return c
}

// flakyTransport fails the first n round trips at the network level, then
// delegates to the real transport.
type flakyTransport struct {
	failures int32
	inner    http.RoundTripper
}

func (t *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if atomic.AddInt32(&t.failures, -1) >= 0 {
		return nil, errors.New("connection refused")
	}
	return t.inner.RoundTrip(req)
}

func TestSend_NetworkRetryThenSuccess(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = fmt.Fprint(w, `{"status":"success","data":{}}`)
	}))
	defer srv.Close()

	c := newFastClient()
	c.httpClient = &http.Client{Transport: &flakyTransport{failures: 2, inner: http.DefaultTransport}}

	resp, err := c.Send(context.Background(), srv.URL, nil, "pw")
	require.NoError(t, err, "2 failures on a 3-attempt budget should still succeed")
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "server should be reached exactly once")
}

func TestSend_NetworkBudgetExhausted(t *testing.T) {
	c := newFastClient()
	c.httpClient = &http.Client{Transport: &flakyTransport{failures: 3, inner: http.DefaultTransport}}

	_, err := c.Send(context.Background(), "http://127.0.0.1:0/exec", nil, "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnreachable, "3 consecutive failures should surface NetworkUnreachable")
}

func TestSend_BusyRetryThenSuccess(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) <= 2 {
			_, _ = fmt.Fprint(w, `{"status":"error","message":"Server is busy, please retry"}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"status":"success","data":{}}`)
	}))
	defer srv.Close()

	c := newFastClient()
	resp, err := c.Send(context.Background(), srv.URL, nil, "pw")
	require.NoError(t, err, "busy responses within budget should be retried")
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestSend_BusyBudgetExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"status":"error","message":"Server is busy"}`)
	}))
	defer srv.Close()

	c := newFastClient()
	_, err := c.Send(context.Background(), srv.URL, nil, "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerBusy)
}

func TestSend_RemoteLogicErrorIsTerminal(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = fmt.Fprint(w, `{"status":"error","message":"Invalid password"}`)
	}))
	defer srv.Close()

	c := newFastClient()
	_, err := c.Send(context.Background(), srv.URL, nil, "pw")
	require.Error(t, err)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr, "non-busy error payloads should fail immediately")
	assert.Equal(t, "Invalid password", remoteErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "logic errors must not be retried")
}

func TestClassify_Buckets(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			name: "endpoint not found page",
			body: "<!DOCTYPE html><html><title>Google Drive - Page Not Found</title></html>",
			want: ErrEndpointNotFound,
		},
		{
			name: "sign-in page",
			body: "<!DOCTYPE html><html><body>Sign in to continue</body></html>",
			want: ErrAuthMisconfigured,
		},
		{
			name: "generic html page",
			body: "<!DOCTYPE html><html><body>Something went wrong</body></html>",
			want: ErrHTMLResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classify(tt.body)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClassify_TruncatedDiagnostic(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "not json !"
	}

	_, err := classify(long)
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Len(t, malformed.Body, 100, "diagnostic should carry a 100-char truncation")
}

func TestClassify_TruncationKeepsRunesWhole(t *testing.T) {
	long := strings.Repeat("データ破損", 30)

	_, err := classify(long)
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.True(t, utf8.ValidString(malformed.Body), "diagnostic must not split a multibyte rune")
	assert.Len(t, []rune(malformed.Body), 100, "diagnostic counts characters, not bytes")
}

func TestClassify_SuccessPayload(t *testing.T) {
	resp, err := classify(`{"status":"success","data":{"artists":[["1","Sarah Chen"]]}}`)
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Data.Artists, 1)
}

func TestSend_WritePostsJSONWithSecret(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		_, _ = fmt.Fprint(w, `{"status":"success"}`)
	}))
	defer srv.Close()

	c := newFastClient()
	_, err := c.Send(context.Background(), srv.URL, &Request{Op: OpDeleteProfile, ID: "p1"}, "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "text/plain;charset=utf-8", gotContentType, "writes must avoid a CORS preflight content type")
	assert.Contains(t, gotBody, `"op":"deleteProfile"`)
	assert.Contains(t, gotBody, `"id":"p1"`)
	assert.Contains(t, gotBody, `"password":"hunter2"`)
}

func TestSend_ReadCarriesSecretInQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = fmt.Fprint(w, `{"status":"success"}`)
	}))
	defer srv.Close()

	c := newFastClient()
	_, err := c.Send(context.Background(), WithView(srv.URL, ViewUnassigned), nil, "p&w")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "view=unassigned")
	assert.Contains(t, gotQuery, "op=fetch")
	assert.Contains(t, gotQuery, "password=p%26w", "secret must be query-escaped")
}

func TestSend_CancelledContextStopsRetries(t *testing.T) {
	c := NewClient() // real delays; cancellation must win
	c.httpClient = &http.Client{Transport: &flakyTransport{failures: 10, inner: http.DefaultTransport}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, "http://127.0.0.1:0/exec", nil, "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
