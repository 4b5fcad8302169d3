package auth

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"golang.org/x/oauth2"
)

func TestOAuthConfigCreation(t *testing.T) {
	config := NewOAuthConfig()

	if config == nil {
		t.Fatal("expected config, got nil")
	}

	if len(config.Scopes) != 1 {
		t.Errorf("expected 1 scope, got %d", len(config.Scopes))
	}

	if config.Scopes[0] != "https://www.googleapis.com/auth/userinfo.email" {
		t.Errorf("expected email scope, got %s", config.Scopes[0])
	}
}

func TestTokenPathXDG(t *testing.T) {
	path := TokenPath()

	expectedBase := filepath.Join(xdg.DataHome, "roster")
	if !strings.HasPrefix(path, expectedBase) {
		t.Errorf("expected path under %s, got %s", expectedBase, path)
	}

	if filepath.Base(path) != "google-credentials.json" {
		t.Errorf("expected filename google-credentials.json, got %s", filepath.Base(path))
	}
}

func TestSaveLoadTokenRoundTrip(t *testing.T) {
	original := xdg.DataHome
	xdg.DataHome = t.TempDir()
	defer func() { xdg.DataHome = original }()

	token := &oauth2.Token{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		TokenType:    "Bearer",
	}

	if err := SaveToken(token); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}

	loaded, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}

	if loaded.AccessToken != token.AccessToken {
		t.Errorf("expected access token %q, got %q", token.AccessToken, loaded.AccessToken)
	}
	if loaded.RefreshToken != token.RefreshToken {
		t.Errorf("expected refresh token %q, got %q", token.RefreshToken, loaded.RefreshToken)
	}
}

func TestCredentialSignInState(t *testing.T) {
	if Anonymous().IsSignedIn() {
		t.Error("anonymous credential must not report signed in")
	}

	cred := &Credential{Email: "scout@label.example"}
	if !cred.IsSignedIn() {
		t.Error("credential with email must report signed in")
	}

	var nilCred *Credential
	if nilCred.IsSignedIn() {
		t.Error("nil credential must not report signed in")
	}
}
