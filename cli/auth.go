// ABOUTME: Google sign-in CLI commands
// ABOUTME: Handles the OAuth flow and shows the current identity
package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/inkwell-tools/roster/auth"
)

// AuthLoginCommand runs the browser OAuth flow and stores the token.
func AuthLoginCommand(args []string) error {
	fs := flag.NewFlagSet("auth login", flag.ExitOnError)
	_ = fs.Parse(args)

	ctx := context.Background()

	config, err := auth.GetOAuthConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get OAuth config: %w", err)
	}

	callbackChan := make(chan *oauth2.Token)
	errChan := make(chan error)
	state := uuid.NewString()

	http.HandleFunc("/oauth/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			errChan <- fmt.Errorf("state mismatch in OAuth callback")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			return
		}

		token, err := config.Exchange(ctx, code)
		if err != nil {
			errChan <- fmt.Errorf("failed to exchange code: %w", err)
			return
		}

		callbackChan <- token
		_, _ = fmt.Fprintf(w, "Authorization successful! You can close this window.")
	})

	server := &http.Server{Addr: ":8080"}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Println("Opening browser for Google sign-in...")
	fmt.Printf("\nIf browser doesn't open, visit this URL:\n%s\n\n", authURL)

	_ = openBrowser(authURL)

	select {
	case token := <-callbackChan:
		_ = server.Shutdown(ctx)

		if err := auth.SaveToken(token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		fmt.Printf("\n✓ Authenticated successfully\n")
		fmt.Printf("✓ Tokens saved to %s\n\n", auth.TokenPath())

		cred := auth.WhoAmI(ctx)
		if cred.IsSignedIn() {
			fmt.Printf("Signed in as %s\n", cred.Email)
		}
		return nil

	case err := <-errChan:
		_ = server.Shutdown(ctx)
		return fmt.Errorf("OAuth flow failed: %w", err)
	}
}

// AuthWhoAmICommand prints the signed-in identity.
func AuthWhoAmICommand(args []string) error {
	fs := flag.NewFlagSet("auth whoami", flag.ExitOnError)
	_ = fs.Parse(args)

	cred := auth.WhoAmI(context.Background())
	if !cred.IsSignedIn() {
		fmt.Println("Not signed in. Run 'roster auth login' to sign in with Google.")
		return nil
	}

	fmt.Printf("Signed in as %s\n", cred.Email)
	return nil
}

// openBrowser attempts to open URL in default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	command := exec.Command(cmd, args...)
	return command.Start()
}
