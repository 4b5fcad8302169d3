// ABOUTME: Signed-in identity resolution via the Google userinfo endpoint
// ABOUTME: The resolved email is injected into writes as the owner field
package auth

import (
	"context"
	"fmt"

	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Credential is the signed-in identity carried through the app. Nothing
// below the command layer talks to Google directly; store and CLI code
// only ever see this value.
type Credential struct {
	Email string `json:"email"`
}

// Anonymous is the identity used when no Google sign-in has happened.
// Mock mode and unauthenticated remote use both run as Anonymous.
func Anonymous() *Credential {
	return &Credential{}
}

// IsSignedIn reports whether a real Google identity is present.
func (c *Credential) IsSignedIn() bool {
	return c != nil && c.Email != ""
}

// WhoAmI resolves the signed-in user's email from the stored OAuth
// token. Missing or expired tokens degrade to Anonymous rather than
// failing the caller.
func WhoAmI(ctx context.Context) *Credential {
	token, err := LoadToken()
	if err != nil {
		return Anonymous()
	}

	config := NewOAuthConfig()
	service, err := goauth.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, token)))
	if err != nil {
		return Anonymous()
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return Anonymous()
	}

	return &Credential{Email: info.Email}
}

// RequireSignIn resolves the identity and errors when nobody is signed
// in, for commands that must stamp a real owner.
func RequireSignIn(ctx context.Context) (*Credential, error) {
	cred := WhoAmI(ctx)
	if !cred.IsSignedIn() {
		return nil, fmt.Errorf("not signed in. Run 'roster auth login' first")
	}
	return cred, nil
}
