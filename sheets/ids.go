// ABOUTME: Client-side identifier synthesis for pending-create entities
// ABOUTME: Prefixed ULIDs so child ids sort by creation time in the sheet
package sheets

import (
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewEntityID synthesizes a client-side identifier with a type prefix
// ("a" artist, "p" profile, "t" touchpoint). The backend accepts any
// unique string; ULIDs keep rows roughly creation-ordered.
func NewEntityID(prefix string) string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return prefix + strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}
