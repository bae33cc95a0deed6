// Command rectools converts uniform record collections between JSON, YAML,
// CSV, and TOML.
package main

import (
	"fmt"
	"os"

	"github.com/erraggy/rectools"
	"github.com/erraggy/rectools/cmd/rectools/commands"
)

// knownCommands lists every command name for typo suggestions.
var knownCommands = []string{"convert", "generate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("rectools v%s\n", rectools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDistance {
			best = cmd
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

func printUsage() {
	fmt.Println(`rectools - Record Collection Conversion Tools

Usage:
  rectools <command> [options]

Commands:
  convert     Convert a record collection between JSON, YAML, CSV, and TOML
  generate    Generate a CSV file of fake records for testing
  mcp         Run the MCP server on stdin/stdout
  version     Show version information
  help        Show this help message

Examples:
  rectools convert -f json -t yaml records.json
  rectools convert -f csv -t toml -o records.toml records.csv
  cat records.json | rectools convert -q -f json -t csv - > records.csv
  rectools generate -rows 100000 -o fake.csv
  rectools mcp

Run 'rectools <command> --help' for more information on a command.`)
}
