// ABOUTME: Config CLI commands for the remote sheet endpoint
// ABOUTME: Shows, sets, and connection-tests the script URL and app password
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/inkwell-tools/roster/config"
	"github.com/inkwell-tools/roster/sheets"
)

// ConfigShowCommand prints the current configuration. The password is
// never echoed, only whether one is set.
func ConfigShowCommand(args []string) error {
	fs := flag.NewFlagSet("config show", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Roster Configuration")
	fmt.Println("────────────────────")
	fmt.Printf("Config file: %s\n", config.Path())

	if cfg.ScriptURL == "" {
		fmt.Println("Script URL:  (not set)")
	} else {
		fmt.Printf("Script URL:  %s\n", cfg.ScriptURL)
	}

	if cfg.AppPassword == "" {
		fmt.Println("Password:    (not set)")
	} else {
		fmt.Println("Password:    (set)")
	}

	if cfg.IsRemote() {
		fmt.Println("\nMode: remote (live spreadsheet)")
	} else {
		fmt.Println("\nMode: mock (local blob store)")
	}

	return nil
}

// ConfigSetCommand stores the script URL and app password. The
// password is prompted without echo unless --password is given.
func ConfigSetCommand(args []string) error {
	fs := flag.NewFlagSet("config set", flag.ExitOnError)
	url := fs.String("url", "", "Deployed script URL (must end in /exec)")
	password := fs.String("password", "", "App password (prompted when omitted)")
	_ = fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *url != "" {
		cfg.ScriptURL = strings.TrimSpace(*url)
	}

	if *password != "" {
		cfg.AppPassword = *password
	} else if cfg.ScriptURL != "" {
		fmt.Print("App password: ")
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		if len(secret) > 0 {
			cfg.AppPassword = string(secret)
		}
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ Config saved to %s\n", config.Path())

	if cfg.IsRemote() {
		return testConnection(cfg)
	}
	return nil
}

// ConfigTestCommand fetches the roster once against the configured
// endpoint and reports what the server returned.
func ConfigTestCommand(args []string) error {
	fs := flag.NewFlagSet("config test", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.IsRemote() {
		fmt.Println("No script URL configured; running in mock mode.")
		fmt.Println("Run 'roster config set --url <script-url>' to connect a spreadsheet.")
		return nil
	}

	return testConnection(cfg)
}

// testConnection fetches the roster once against the configured endpoint
// and reports what the server returned. config set runs this after every
// remote-mode save so a bad deployment surfaces immediately.
func testConnection(cfg *config.SheetConfig) error {
	fmt.Printf("Testing %s ...\n", cfg.ScriptURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	remote := sheets.NewRemoteStore(cfg.ScriptURL, cfg.AppPassword)
	artists, err := remote.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Connection failed: %v\n", err)
		return err
	}

	fmt.Printf("✓ Connected. Server returned %d artist(s).\n", len(artists))
	return nil
}
