package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasreconcile"
	"github.com/erraggy/oasreconcile/cmd/oasreconcile/commands"
	"github.com/erraggy/oasreconcile/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasreconcile v%s\n", oasreconcile.Version())
	case "help", "-h", "--help":
		printUsage()
	case "merge":
		if err := commands.HandleMerge(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "fix":
		if err := commands.HandleFix(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oasreconcile - OpenAPI document reconciliation

Usage:
  oasreconcile <command> [options]

Commands:
  merge       Merge a comprehensive OpenAPI document into an official one
  fix         Apply targeted repairs to an OpenAPI document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasreconcile merge -o merged.yaml openapi.yaml comprehensive.yaml
  oasreconcile fix -o fixed.yaml merged.yaml
  oasreconcile merge -q openapi.yaml comprehensive.yaml | oasreconcile fix -q -

Run 'oasreconcile <command> --help' for more information on a command.`)
}
