// Package repl provides an interactive prompt that runs robot control
// statements against a sandbox arena.
package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
	"github.com/msto63/roboarena/foundation/rcl/ast"
)

const (
	prompt             = "rcl> "
	continuationPrompt = "...> "
	historyName        = ".roboarena_history"
)

// Start runs the interactive loop until EOF or "exit"
func Start(ctx context.Context, s *Session, out io.Writer, version string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	historyFile := filepath.Join(os.TempDir(), historyName)
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(out, "roboarena REPL v%s\n", version)
	fmt.Fprintln(out, "Type ':help' for commands, 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "")

	var buf strings.Builder
	for {
		p := prompt
		if buf.Len() > 0 {
			p = continuationPrompt
		}
		input, err := line.Prompt(p)
		if err == liner.ErrPromptAborted {
			buf.Reset()
			fmt.Fprintln(out, "^C")
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(input)
		if buf.Len() == 0 {
			if trimmed == "exit" || trimmed == "quit" {
				return nil
			}
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				HandleCommand(s, trimmed, out)
				continue
			}
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(input)
		if NeedsMoreInput(buf.String()) {
			continue
		}

		src := buf.String()
		buf.Reset()
		line.AppendHistory(src)
		EvalLine(ctx, s, src, out)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// EvalLine runs one complete input and prints the result
func EvalLine(ctx context.Context, s *Session, src string, out io.Writer) {
	res, err := s.Eval(ctx, src)
	if err != nil {
		printError(out, err)
		if res == nil {
			return
		}
	}
	status := "ok"
	if res.Halted {
		status = "halted"
	}
	fmt.Fprintf(out, "%s: %s\n", status, summarize(res.Actions))
	s.PrintState(out)
}

// HandleCommand runs a ':' meta command
func HandleCommand(s *Session, cmd string, out io.Writer) {
	switch cmd {
	case ":help", ":h", ":?":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :help      Show this help")
		fmt.Fprintln(out, "  :state     Show robot positions and fuel")
		fmt.Fprintln(out, "  :sensors   Show all sensor readings")
		fmt.Fprintln(out, "  :reset     Rebuild the sandbox arena")
		fmt.Fprintln(out, "  exit       Leave the REPL")
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Anything else is parsed as statements and run once, e.g.")
		fmt.Fprintln(out, "  move(3); if(lt(wallDist,2)){turnR;}")
	case ":state":
		s.PrintState(out)
	case ":sensors":
		s.PrintSensors(out)
	case ":reset":
		if err := s.Reset(); err != nil {
			printError(out, err)
			return
		}
		fmt.Fprintln(out, "sandbox reset")
	default:
		fmt.Fprintf(out, "Unknown command: %s (type :help for commands)\n", cmd)
	}
}

// NeedsMoreInput reports whether src has unclosed braces or parentheses
func NeedsMoreInput(src string) bool {
	depth := 0
	for _, r := range src {
		switch r {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		}
	}
	return depth > 0
}

func printError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s: %v\n", mdwerror.GetCode(err), err)
}

func complete(line string) []string {
	start := strings.LastIndexAny(line, "(){},; ") + 1
	prefix, word := line[:start], line[start:]
	if word == "" {
		return nil
	}
	var out []string
	for _, kw := range ast.Keywords() {
		if strings.HasPrefix(kw, word) {
			out = append(out, prefix+kw)
		}
	}
	return out
}
