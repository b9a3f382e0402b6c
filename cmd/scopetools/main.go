package main

import (
	"fmt"
	"os"

	"github.com/erraggy/scopetools"
	"github.com/erraggy/scopetools/cmd/scopetools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("scopetools v%s\n", scopetools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		run(commands.HandleParse, args)
	case "merge":
		run(commands.HandleMerge, args)
	case "scope":
		run(commands.HandleScope, args)
	case "operations":
		run(commands.HandleOperations, args)
	case "walk":
		run(commands.HandleWalk, args)
	case "mcp":
		run(commands.HandleMCP, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when no
// command is within edit distance 2.
func suggestCommand(input string) string {
	known := []string{"parse", "merge", "scope", "operations", "walk", "mcp", "version", "help"}

	best := ""
	bestDistance := 3
	for _, candidate := range known {
		if d := editDistance(input, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// run executes a command handler, reporting errors to stderr with a
// non-zero exit.
func run(handler func([]string) error, args []string) {
	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scopetools - merge service API documents and derive role-scoped documents

Usage:
  scopetools <command> [flags] [arguments]

Commands:
  parse       Parse a Swagger 2.0 document and report its structure
  merge       Merge per-service documents into a master document
  scope       Derive role-scoped documents from service documents
  operations  List the operations in a document
  walk        Traverse a document (operations, schemas, refs)
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  scopetools merge -o master.yaml skeleton.yaml users.yaml billing.yaml
  scopetools scope --config scoping.yaml --role viewer skeleton.yaml users.yaml
  scopetools operations --chains master.yaml
  scopetools walk schemas --definitions-only master.yaml

Use "scopetools <command> --help" for more information about a command.`)
}
