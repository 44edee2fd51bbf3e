package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl"
	"github.com/msto63/roboarena/foundation/rcl/parser"
)

var checkWatch bool

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check RCL programs for syntax errors",
	Long: `Parses each file and reports either the program statistics or
the syntax error with the tokens that follow it.

With --watch the files are checked again whenever they change.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "re-check files when they change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		if !checkFile(out, path) {
			failed++
		}
	}

	if checkWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchFiles(ctx, out, args)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
	}
	return nil
}

// checkFile prints the check report for path and reports success
func checkFile(out io.Writer, path string) bool {
	summary, err := engine.CheckFile(path)
	if err != nil {
		failColor.Fprint(out, "FAIL ")
		fmt.Fprintln(out, path)

		var pe *parser.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(out, "  %s\n", pe.Error())
		} else {
			fmt.Fprintf(out, "  %v\n", err)
		}
		return false
	}

	okColor.Fprint(out, "OK   ")
	fmt.Fprintln(out, path)
	dimColor.Fprintf(out, "  %s\n", summaryLine(summary))
	return true
}

func summaryLine(s *rcl.Summary) string {
	return fmt.Sprintf("%d statement(s), %d action(s), %d condition(s), %d expression(s), depth %d, sha256 %.12s",
		s.Statements, s.Actions, s.Conditions, s.Expressions, s.MaxDepth, s.Hash)
}

// watchFiles re-checks files on change until ctx is done. Directories are
// watched so that editors replacing files on save are noticed.
func watchFiles(ctx context.Context, out io.Writer, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	files := make(map[string]string)
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "watching %d file(s), press Ctrl+C to stop\n", len(files))

	const debounce = 100 * time.Millisecond
	last := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, watched := files[abs]
			if !watched || time.Since(last[abs]) < debounce {
				continue
			}
			last[abs] = time.Now()

			logger.Debug("File changed", mdwlog.Fields{"file": path, "op": event.Op.String()})
			fmt.Fprintln(out)
			checkFile(out, path)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.WarnWithErr("Watcher error", err)
		}
	}
}
