// ABOUTME: Entry point for the roster CLI and MCP server
// ABOUTME: Routes to MCP server or CLI commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/inkwell-tools/roster/ai"
	"github.com/inkwell-tools/roster/charm"
	"github.com/inkwell-tools/roster/cli"
	"github.com/inkwell-tools/roster/config"
	"github.com/inkwell-tools/roster/store"
)

const version = "0.1.0"

func main() {
	// Optional .env for ANTHROPIC_API_KEY / GOOGLE_CLIENT_* / ROSTER_* overrides
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	model := flag.String("model", "", "LLM model for draft/insights commands")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("roster version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		s := openStore()
		if err := cli.MCPCommand(s, ai.CreateProvider(*model)); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		s := openStore()
		crmCommand := commandArgs[0]
		crmArgs := commandArgs[1:]

		switch crmCommand {
		case "add-artist":
			if err := cli.AddArtistCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-artists":
			if err := cli.ListArtistsCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "update-artist":
			if err := cli.UpdateArtistCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "log-touchpoint":
			if err := cli.LogTouchpointCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "dashboard":
			if err := cli.DashboardCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown crm command: %s\n\n", crmCommand)
			printUsage()
			os.Exit(1)
		}

	case "draft":
		s := openStore()
		if err := cli.DraftCommand(s, ai.CreateProvider(*model), commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "insights":
		s := openStore()
		if err := cli.InsightsCommand(s, ai.CreateProvider(*model), commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "ask":
		s := openStore()
		if err := cli.AskCommand(s, ai.CreateProvider(*model), commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "tui":
		s := openStore()
		if err := cli.TUICommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "viz":
		if len(commandArgs) == 0 {
			fmt.Println("Error: viz requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[0] {
		case "pipeline":
			s := openStore()
			if err := cli.VizPipelineCommand(s, commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown viz command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	case "config":
		if len(commandArgs) == 0 {
			fmt.Println("Error: config requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[0] {
		case "show":
			if err := cli.ConfigShowCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "set":
			if err := cli.ConfigSetCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "test":
			if err := cli.ConfigTestCommand(commandArgs[1:]); err != nil {
				os.Exit(1)
			}
		default:
			fmt.Printf("Unknown config command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	case "auth":
		if len(commandArgs) == 0 {
			fmt.Println("Error: auth requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[0] {
		case "login":
			if err := cli.AuthLoginCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "whoami":
			if err := cli.AuthWhoAmICommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown auth command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	case "sync":
		if len(commandArgs) == 0 {
			fmt.Println("Error: sync requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		switch commandArgs[0] {
		case "link":
			if err := charm.SyncLinkCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "status":
			if err := charm.SyncStatusCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "unlink":
			if err := charm.SyncUnlinkCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "wipe":
			if err := cli.SyncWipeCommand(commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown sync command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// openStore selects remote or mock mode from the stored config and
// exits on failure; every data command goes through here.
func openStore() store.Store {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	if !cfg.IsRemote() {
		log.Println("No script URL configured; using local mock roster")
	}

	return s
}

func printUsage() {
	fmt.Printf(`roster v%s - Artist relations CRM

USAGE:
  roster [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --model <name>         LLM model for draft/insights/ask

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  crm                    Roster management commands
  tui                    Interactive terminal interface
  viz                    Visualization commands
  config                 Remote endpoint configuration
  auth                   Google sign-in
  sync                   Charm Cloud sync for the local roster
  draft                  Draft an outreach message with AI
  insights               Analyze the roster with AI
  ask                    Ask a question over the roster data

CRM COMMANDS:
  roster crm add-artist     Add a new artist
    --name <name>             Artist name (required)
    --type <type>             Art type (Illustration, 3D, Video, ...)
    --persona <persona>       Student, Mid, Professional, or Influencer
    --fit <1-5>               Fit score
    --influence <0-100>       Influence score
    --owner <email>           Owner (defaults to signed-in account)
    --profiles <list>         platform:handle pairs, comma separated
    --notes <notes>           Notes

  roster crm list-artists   List the roster
    --view <view>             assigned or unassigned
    --query <text>            Search by name or owner

  roster crm update-artist [flags] <id>  Update an artist
    --status <stage>          Pipeline stage
    --profiles <list>         Replacement profile set
    Note: flags must come before the artist ID

  roster crm log-touchpoint [flags] <id>  Log an interaction
    --platform <platform>     Platform the interaction happened on
    --type <type>             dm, comment, or email
    --message <text>          Message text

  roster crm dashboard      Show roster statistics

CONFIG:
  roster config show        Show current configuration
  roster config set         Set script URL and app password
    --url <url>               Deployed script URL (must end in /exec)
  roster config test        Test the configured endpoint

VIZ:
  roster viz pipeline       Pipeline funnel graph (DOT)
    --output <path>           Write to file instead of stdout

AUTH:
  roster auth login         Sign in with Google
  roster auth whoami        Show the signed-in account

SYNC:
  roster sync link          Link this device to Charm Cloud
  roster sync status        Show sync status
  roster sync unlink        How to unlink this device
  roster sync wipe          Wipe local data (--demo-only keeps non-roster entries)
`, version)
}
