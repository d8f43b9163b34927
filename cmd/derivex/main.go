// Command derivex runs one expression through the differentiation
// pipeline (§4.8) and prints its parsed and derivative forms. It is a
// one-shot, non-interactive front end (Non-goal: no REPL), reading its
// expression either from a single command-line argument or from stdin -
// the same argv/stdin convention the teacher's own CLI entrypoint uses.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/funvibe/derivex/internal/orchestrator"
)

func main() {
	timings := flag.Bool("timings", false, "report per-stage timings")
	flag.Parse()

	input, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "derivex: %s\n", err)
		os.Exit(1)
	}

	result := orchestrator.Process(input, *timings)

	fmt.Printf("parsed as:  %s\n", result.ParsedAs)
	fmt.Printf("derivative: %s\n", result.Derivative)
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "derivex: %s\n", e)
	}
	if *timings {
		for stage, d := range result.Timings {
			fmt.Fprintf(os.Stderr, "derivex: %s took %s\n", stage, d)
		}
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

// readInput takes the expression from the first positional argument, or
// falls back to stdin when none is given.
func readInput(args []string) (string, error) {
	if len(args) >= 1 {
		return args[0], nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("usage: derivex <expression> (or pipe one on stdin)")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
