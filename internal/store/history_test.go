package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
	"github.com/msto63/roboarena/internal/arena"
	"github.com/msto63/roboarena/internal/match"
)

func openTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	s, err := Open(Config{Path: filepath.Join(t.TempDir(), "nested", "history.db")})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id, winner string, started time.Time) Record {
	return Record{
		ID:         id,
		Scenario:   "default",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		ProgramA:   "loop{move;}",
		ProgramB:   "loop{wait;}",
		Winner:     winner,
		Ticks:      42,
		Reason:     string(match.ReasonMaxTicks),
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := record("m1", "blue", time.Now().UTC().Truncate(time.Second))
	rec.Robots = []arena.RobotState{
		{Name: "red", Pos: arena.Point{X: 1, Y: 6}, Heading: arena.South, Fuel: 95},
		{Name: "blue", Pos: arena.Point{X: 10, Y: 10}, Heading: arena.North, Fuel: 100},
	}
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Winner != "blue" || got.Ticks != 42 || got.ProgramA != rec.ProgramA {
		t.Errorf("Get = %+v", got)
	}
	if !got.StartedAt.Equal(rec.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, rec.StartedAt)
	}
	if len(got.Robots) != 2 || got.Robots[0].Heading != arena.South || got.Robots[0].Fuel != 95 {
		t.Errorf("Robots = %+v", got.Robots)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestSaveRequiresID(t *testing.T) {
	s := openTestStore(t)

	err := s.Save(context.Background(), Record{})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestListOrderAndFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	for i, r := range []Record{
		record("a", "red", base.Add(-3*time.Hour)),
		record("b", "", base.Add(-2*time.Hour)),
		record("c", "red", base.Add(-1*time.Hour)),
	} {
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all newest first", Filter{}, []string{"c", "b", "a"}},
		{"limit", Filter{Limit: 2}, []string{"c", "b"}},
		{"offset", Filter{Limit: 2, Offset: 2}, []string{"a"}},
		{"winner", Filter{Winner: "red"}, []string{"c", "a"}},
		{"reason", Filter{Reason: "out_of_fuel"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			if len(ids) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", ids, tt.want)
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Errorf("ids = %v, want %v", ids, tt.want)
					break
				}
			}
		})
	}
}

func TestStatsAndPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	s.Save(ctx, record("old", "red", now.Add(-48*time.Hour)))
	s.Save(ctx, record("draw", "", now.Add(-time.Minute)))
	s.Save(ctx, record("new", "blue", now))

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Matches != 3 || stats.Draws != 1 || stats.Wins["red"] != 1 || stats.Wins["blue"] != 1 {
		t.Errorf("Stats = %+v", stats)
	}

	n, err := s.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d rows, want 1", n)
	}
	if _, err := s.Get(ctx, "old"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("old match still present: %v", err)
	}
}

func TestFromResult(t *testing.T) {
	res := &match.Result{
		ID:       "x",
		Scenario: "default",
		Ticks:    7,
		Winner:   "red",
		Reason:   match.ReasonProgramError,
		Programs: []string{"move;", "wait;"},
		Err:      errors.New("robot blue: boom"),
	}

	rec := FromResult(res)
	if rec.ProgramA != "move;" || rec.ProgramB != "wait;" {
		t.Errorf("programs = %q / %q", rec.ProgramA, rec.ProgramB)
	}
	if rec.Reason != "program_error" || rec.Error != "robot blue: boom" || rec.Ticks != 7 {
		t.Errorf("rec = %+v", rec)
	}
}
