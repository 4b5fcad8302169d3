// ABOUTME: Typed error taxonomy for the scripted spreadsheet transport
// ABOUTME: Distinguishes retryable outages from terminal deployment mistakes
package sheets

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnreachable is returned once the network retry budget is
	// exhausted without a single response from the endpoint.
	ErrNetworkUnreachable = errors.New("network error: is the script URL correct?")

	// ErrServerBusy is returned once the lock-contention retry budget is
	// exhausted. The script holds a single exclusive write lock, so this
	// means another writer kept it for the whole budget.
	ErrServerBusy = errors.New("server is busy: the sheet is locked by a concurrent writer")

	// ErrEndpointNotFound means the endpoint answered with the hoster's
	// 404 page, usually an incomplete or truncated deployment URL.
	ErrEndpointNotFound = errors.New("script URL not found (404): the URL might be incomplete or missing characters")

	// ErrAuthMisconfigured means the endpoint bounced us to a sign-in
	// page. The script deployment access must be set to 'Anyone', not
	// 'Anyone with Google Account'.
	ErrAuthMisconfigured = errors.New("auth failed: script deployment access must be set to 'Anyone'")

	// ErrHTMLResponse is the catch-all for an HTML document where JSON
	// was expected, when neither of the two known pages matched.
	ErrHTMLResponse = errors.New("received HTML error page instead of JSON: check the deployment settings")
)

// RemoteError is a well-formed error payload from the script whose message
// does not match the lock-contention pattern. It is terminal.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %s", e.Message)
}

// MalformedResponseError is returned when the body is neither JSON nor an
// HTML document. It carries a truncated copy of the body as a diagnostic.
type MalformedResponseError struct {
	Body string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid server response: %s...", e.Body)
}
