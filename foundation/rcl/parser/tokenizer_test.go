// File: tokenizer_test.go
// Title: RCL Tokenizer Tests
// Description: Tests for token splitting, positions and cursor behavior.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tokenizer tests

package parser

import (
	"strings"
	"testing"
)

func texts(toks []Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple action", "move;", "move ;"},
		{"adjacent punctuation", "move(add(1,-2));", "move ( add ( 1 , -2 ) ) ;"},
		{"whitespace and newlines", "  loop\n{\tturnL ;\n}\n", "loop { turnL ; }"},
		{"glued words", "if(eq(a,b)){x}else{y}", "if ( eq ( a , b ) ) { x } else { y }"},
		{"unknown characters stay in words", "move#3 ;", "move#3 ;"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
		{"vertical tab and form feed", "move;\vturnL;\fwait;\r\n", "move ; turnL ; wait ;"},
		{"no-break space is part of a word", "move\u00a0turnL;", "move\u00a0turnL ;"},
		{"next line is part of a word", "move\u0085;", "move\u0085 ;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texts(Tokenize(tt.input)); got != tt.want {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	toks := Tokenize("loop {\n  move(2);\n}")

	want := []Token{
		{"loop", 1, 1}, {"{", 1, 6},
		{"move", 2, 3}, {"(", 2, 7}, {"2", 2, 8}, {")", 2, 9}, {";", 2, 10},
		{"}", 3, 1},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestTokenizerCursor(t *testing.T) {
	tz := NewTokenizer("turnL ;")

	if !tz.HasNextMatching(ClassAction) {
		t.Fatal("HasNextMatching(action) = false")
	}
	if tok, _ := tz.Peek(); tok.Text != "turnL" {
		t.Errorf("Peek() = %q", tok.Text)
	}
	if tok, _ := tz.Next(); tok.Text != "turnL" {
		t.Errorf("Next() = %q", tok.Text)
	}
	if tok, _ := tz.Next(); tok.Text != ";" {
		t.Errorf("Next() = %q", tok.Text)
	}
	if tz.HasNext() {
		t.Error("HasNext() = true on exhausted stream")
	}
	if _, ok := tz.Next(); ok {
		t.Error("Next() on exhausted stream should report false")
	}

	tz.Reset()
	if tok, _ := tz.Next(); tok.Text != "turnL" {
		t.Errorf("after Reset, Next() = %q", tok.Text)
	}
}
