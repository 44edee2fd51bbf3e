// File: parser_test.go
// Title: RCL Parser Tests
// Description: Tests for program parsing, failure context and the
//              parse-render-parse round trip.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser tests

package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl/ast"
)

var ignorePositions = cmpopts.IgnoreTypes(ast.Position{})

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}
	return prog
}

func TestParseMove(t *testing.T) {
	prog := mustParse(t, "move;")
	want := &ast.Program{Statements: []ast.Stmt{&ast.Action{Kind: ast.ActMove}}}
	if diff := cmp.Diff(want, prog, ignorePositions); diff != "" {
		t.Errorf("move; mismatch (-want +got):\n%s", diff)
	}

	prog = mustParse(t, "move(3);")
	want = &ast.Program{Statements: []ast.Stmt{
		&ast.Action{Kind: ast.ActMove, Count: &ast.Number{Value: 3}},
	}}
	if diff := cmp.Diff(want, prog, ignorePositions); diff != "" {
		t.Errorf("move(3); mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIfElse(t *testing.T) {
	prog := mustParse(t, "if(eq(fuelLeft,0)){shieldOn;}else{shieldOff;}")

	want := &ast.Program{Statements: []ast.Stmt{
		&ast.If{
			Cond: &ast.Compare{Op: ast.RelEQ, Left: &ast.Sensor{Kind: ast.SenFuelLeft}, Right: &ast.Number{Value: 0}},
			Then: &ast.Block{Statements: []ast.Stmt{&ast.Action{Kind: ast.ActShieldOn}}},
			Else: &ast.Block{Statements: []ast.Stmt{&ast.Action{Kind: ast.ActShieldOff}}},
		},
	}}
	if diff := cmp.Diff(want, prog, ignorePositions); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !prog.Statements[0].(*ast.If).HasElse() {
		t.Error("HasElse() = false")
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	prog := mustParse(t, "if(lt(oppFB,0)){turnAround;} wait;")
	stmt, ok := prog.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("statement 0 is %T", prog.Statements[0])
	}
	if stmt.HasElse() {
		t.Error("HasElse() = true without else")
	}
	if len(prog.Statements) != 2 {
		t.Errorf("got %d statements, want 2", len(prog.Statements))
	}
}

func TestParseWhile(t *testing.T) {
	prog := mustParse(t, "while(gt(wallDist,5)){move;}")
	want := &ast.Program{Statements: []ast.Stmt{
		&ast.While{
			Cond: &ast.Compare{Op: ast.RelGT, Left: &ast.Sensor{Kind: ast.SenWallDist}, Right: &ast.Number{Value: 5}},
			Body: &ast.Block{Statements: []ast.Stmt{&ast.Action{Kind: ast.ActMove}}},
		},
	}}
	if diff := cmp.Diff(want, prog, ignorePositions); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExpressions(t *testing.T) {
	prog := mustParse(t, "wait(add(mul(2,3),sub(10,-4)));")
	act := prog.Statements[0].(*ast.Action)

	want := &ast.Arith{
		Op:    ast.OpAdd,
		Left:  &ast.Arith{Op: ast.OpMul, Left: &ast.Number{Value: 2}, Right: &ast.Number{Value: 3}},
		Right: &ast.Arith{Op: ast.OpSub, Left: &ast.Number{Value: 10}, Right: &ast.Number{Value: -4}},
	}
	if diff := cmp.Diff(ast.Expr(want), act.Count, ignorePositions); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConditions(t *testing.T) {
	prog := mustParse(t, "if(or(not(lt(barrelLR,0)),and(eq(numBarrels,1),gt(oppLR,oppFB)))){takeFuel;}")
	cond := prog.Statements[0].(*ast.If).Cond

	if got := cond.String(); got != "or(not(lt(barrelLR,0)),and(eq(numBarrels,1),gt(oppLR,oppFB)))" {
		t.Errorf("condition = %s", got)
	}
	logic, ok := cond.(*ast.Logic)
	if !ok || logic.Op != ast.LogicOr {
		t.Fatalf("top-level condition = %#v", cond)
	}
	if _, ok := logic.Left.(*ast.Not); !ok {
		t.Errorf("left operand is %T, want *ast.Not", logic.Left)
	}
}

func TestParsePositions(t *testing.T) {
	prog := mustParse(t, "turnL;\nloop {\n  move;\n}")
	loop := prog.Statements[1].(*ast.Loop)
	if loop.Pos != (ast.Position{Line: 2, Column: 1}) {
		t.Errorf("loop position = %v", loop.Pos)
	}
	if got := loop.Body.Statements[0].Position(); got != (ast.Position{Line: 3, Column: 3}) {
		t.Errorf("move position = %v", got)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		context []string
	}{
		{"empty", "", "unexpected end of input", nil},
		{"whitespace only", " \n\t", "unexpected end of input", nil},
		{"missing semicolon", "move turnL;", "no semicolon", []string{"turnL", ";"}},
		{"unknown statement", "move; jump; turnL;", "unknown statement", []string{"jump", ";", "turnL", ";"}},
		{"argument on turn", "turnL(2);", "no semicolon", []string{"(", "2", ")", ";"}},
		{"unclosed block", "loop { move;", "no close brace", nil},
		{"loop without block", "loop move;", "no open brace", []string{"move", ";"}},
		{"bad condition", "if(fuelLeft){move;}", "not a condition", []string{"fuelLeft", ")", "{", "move", ";"}},
		{"missing comma", "while(lt(1 2)){}", "no comma", []string{"2", ")", ")", "{", "}"}},
		{"bad expression", "move(north);", "not an expression", []string{"north", ")", ";"}},
		{"leading zero", "move(007);", "not an expression", []string{"007", ")", ";"}},
		{"overflow", "move(99999999999);", "not an integer", []string{"99999999999", ")", ";"}},
		{"dangling else", "else{move;}", "unknown statement", []string{"else", "{", "move", ";", "}"}},
		{"stray close brace", "move; }", "unknown statement", []string{"}"}},
		{"empty not", "if(not()){}", "not a condition", []string{")", ")", "{", "}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseString(%q) error = %v, want *ParseError", tt.input, err)
			}
			if pe.Message != tt.message {
				t.Errorf("message = %q, want %q", pe.Message, tt.message)
			}
			if diff := cmp.Diff(tt.context, pe.Context); diff != "" {
				t.Errorf("context mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrorContextLimit(t *testing.T) {
	_, err := ParseString("move turnL; turnR; turnL; turnR;")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if len(pe.Context) != 5 {
		t.Errorf("context has %d tokens, want 5", len(pe.Context))
	}

	want := "no semicolon (line 1, column 6)\n   @ ... turnL ; turnR ; turnL..."
	if pe.Error() != want {
		t.Errorf("Error() = %q, want %q", pe.Error(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"move;",
		"move(3); turnL; turnR; takeFuel; wait; wait(fuelLeft); shieldOn; shieldOff; turnAround;",
		"loop{move; if(gt(wallDist,0)){move;}else{turnL;}}",
		"while(and(gt(fuelLeft,10),not(eq(numBarrels,0)))){move(div(barrelFB,2)); turnR;}",
		"if(or(lt(oppLR,-1),gt(oppLR,1))){shieldOn;} loop{} while(eq(0,0)){}",
		"move(sub(mul(add(1,2),oppFB),div(barrelLR,-3)));",
		"loop{loop{loop{wait(0);}}}",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			first := mustParse(t, src)

			second := mustParse(t, first.String())
			if diff := cmp.Diff(first, second, ignorePositions); diff != "" {
				t.Errorf("canonical round trip mismatch (-first +second):\n%s", diff)
			}

			third := mustParse(t, ast.Format(first))
			if diff := cmp.Diff(first, third, ignorePositions); diff != "" {
				t.Errorf("formatted round trip mismatch (-first +third):\n%s", diff)
			}

			if err := first.Validate(); err != nil {
				t.Errorf("Validate(): %v", err)
			}
		})
	}
}

func TestMaxSourceBytes(t *testing.T) {
	p, err := New(Options{Logger: mdwlog.Discard(), MaxSourceBytes: 10})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse("move; move; move;"); !errors.Is(err, ErrSourceTooLarge) {
		t.Errorf("Parse() = %v, want ErrSourceTooLarge", err)
	}
	if _, err := p.Parse("move;"); err != nil {
		t.Errorf("Parse(small) = %v", err)
	}

	if _, err := New(Options{MaxSourceBytes: -1}); err == nil {
		t.Error("New() with negative size should fail")
	}
}

func TestParserLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.New().WithOutput(&buf).WithFormat(mdwlog.FormatText).WithLevel(mdwlog.LevelDebug)

	p, err := New(Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse("loop"); err == nil {
		t.Fatal("expected failure")
	}

	out := buf.String()
	if !strings.Contains(out, "Starting RCL parsing") {
		t.Errorf("missing start entry in %q", out)
	}
	if !strings.Contains(out, "RCL parsing failed") || !strings.Contains(out, "component=rcl-parser") {
		t.Errorf("missing failure entry in %q", out)
	}
}
