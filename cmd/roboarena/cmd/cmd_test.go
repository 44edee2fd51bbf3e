package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl"
	"github.com/msto63/roboarena/foundation/rcl/ast"
	"github.com/msto63/roboarena/internal/match"
	"github.com/msto63/roboarena/internal/store"
	"github.com/msto63/roboarena/pkg/core/config"
)

func setupTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg = config.Default()
	cfg.General.DataDir = dir
	cfg.Store.Path = ""
	logger = mdwlog.Discard()

	var err error
	engine, err = rcl.NewEngine(rcl.Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckFile(t *testing.T) {
	dir := setupTest(t)
	good := writeFile(t, dir, "good.rcl", "loop { move; if (lt(wallDist, 2)) { turnR; } }")
	bad := writeFile(t, dir, "bad.rcl", "move turnL;")

	var out bytes.Buffer
	if !checkFile(&out, good) {
		t.Errorf("good file failed: %s", out.String())
	}
	if !strings.Contains(out.String(), "OK") || !strings.Contains(out.String(), "2 action(s)") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if checkFile(&out, bad) {
		t.Error("bad file passed")
	}
	if !strings.Contains(out.String(), "FAIL") || !strings.Contains(out.String(), "no semicolon (line 1, column 6)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLoadProgramsAddsIdleOpponent(t *testing.T) {
	dir := setupTest(t)
	a := writeFile(t, dir, "a.rcl", "move;")

	programs, err := loadPrograms([]string{a})
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) != 2 || programs[1].String() != idleProgram {
		t.Errorf("programs = %v", programs)
	}

	if _, err := loadPrograms([]string{filepath.Join(dir, "missing.rcl")}); err == nil {
		t.Error("missing file should fail")
	}
}

func TestMatchFlags(t *testing.T) {
	setupTest(t)
	cfg.Match.Seed = 7

	f := matchFlags{tickDelay: -1}
	sc, err := f.loadScenario()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Seed != 7 {
		t.Errorf("seed = %d, want config seed 7", sc.Seed)
	}

	f = matchFlags{seed: 3, maxTicks: 10, tickDelay: 0}
	sc, _ = f.loadScenario()
	opts := f.options()
	if sc.Seed != 3 || opts.MaxTicks != 10 || opts.TickDelay != 0 {
		t.Errorf("seed=%d opts=%+v", sc.Seed, opts)
	}
	if opts.ActionTimeout != cfg.Match.ActionTimeout.Duration {
		t.Errorf("action timeout = %v", opts.ActionTimeout)
	}
}

func TestSaveResultAndHistory(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	res := &match.Result{
		ID:         "0123456789",
		Scenario:   "default",
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
		Ticks:      12,
		Winner:     "red",
		Reason:     match.ReasonOutOfFuel,
		Programs:   []string{"move;", "loop{wait;}"},
	}
	saveResult(ctx, res, false)

	s, err := store.Open(store.Config{Path: cfg.StorePath()})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	records, err := s.List(ctx, store.Filter{})
	if err != nil || len(records) != 1 {
		t.Fatalf("records = %v, err = %v", records, err)
	}

	var out bytes.Buffer
	renderHistory(&out, records)
	for _, want := range []string{"01234567", "red", "12", "out_of_fuel"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("history table missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	renderHistory(&out, nil)
	if !strings.Contains(out.String(), "no matches stored") {
		t.Errorf("empty history = %q", out.String())
	}
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, &match.Result{ID: "x", Scenario: "default", Ticks: 5, Reason: match.ReasonMaxTicks})
	if !strings.Contains(out.String(), "draw after 5 tick(s) (max_ticks)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestSampleFilesAreFormatted(t *testing.T) {
	setupTest(t)

	for _, name := range []string{"collector.rcl", "rammer.rcl"} {
		path := filepath.Join("..", "..", "..", "programs", name)
		src, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		prog, err := engine.Parse(string(src))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := ast.Format(prog); got != string(src) {
			t.Errorf("%s is not in fmt form:\n%s", name, got)
		}
	}

	f := matchFlags{scenario: filepath.Join("..", "..", "..", "scenarios", "corridor.yaml")}
	sc, err := f.loadScenario()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "corridor" || sc.Width != 16 || len(sc.Placed) != 2 {
		t.Errorf("scenario = %+v", sc)
	}
}
