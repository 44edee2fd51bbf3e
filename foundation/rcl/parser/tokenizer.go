// File: tokenizer.go
// Title: RCL Tokenizer
// Description: Lazy token cursor over RCL source. Tokens are maximal runs
//              of non-whitespace, except that each punctuation character
//              stands alone.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tokenizer
// - 2026-10-19 v0.1.1: Split on ASCII whitespace only

package parser

// Punctuation lists the characters that always form their own token
const Punctuation = "(){},;"

// Whitespace lists the separators between tokens. Other Unicode spaces
// such as U+00A0 are ordinary word characters.
const Whitespace = " \t\n\v\f\r"

// Token represents a lexical token with its source position
type Token struct {
	Text   string
	Line   int // 1-based
	Column int // 1-based, in runes
}

// Tokenizer is a forward-only cursor over the tokens of a source. Tokens
// are produced on demand; Reset restarts from the beginning.
type Tokenizer struct {
	input  []rune
	pos    int
	line   int
	column int

	peeked *Token
}

// NewTokenizer creates a tokenizer for the given source
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{input: []rune(input)}
	t.Reset()
	return t
}

// Reset rewinds the cursor to the first token
func (t *Tokenizer) Reset() {
	t.pos = 0
	t.line = 1
	t.column = 1
	t.peeked = nil
}

// HasNext reports whether another token is available
func (t *Tokenizer) HasNext() bool {
	_, ok := t.Peek()
	return ok
}

// HasNextMatching reports whether the next token belongs to the class
func (t *Tokenizer) HasNextMatching(class Class) bool {
	tok, ok := t.Peek()
	return ok && class.Match(tok.Text)
}

// Peek returns the next token without consuming it
func (t *Tokenizer) Peek() (Token, bool) {
	if t.peeked == nil {
		tok, ok := t.scan()
		if !ok {
			return Token{Line: t.line, Column: t.column}, false
		}
		t.peeked = &tok
	}
	return *t.peeked, true
}

// Next consumes and returns the next token
func (t *Tokenizer) Next() (Token, bool) {
	tok, ok := t.Peek()
	if ok {
		t.peeked = nil
	}
	return tok, ok
}

// Position returns the position of the next token, or of the end of input
func (t *Tokenizer) Position() (line, column int) {
	tok, _ := t.Peek()
	return tok.Line, tok.Column
}

func (t *Tokenizer) scan() (Token, bool) {
	for t.pos < len(t.input) && isSpace(t.input[t.pos]) {
		t.advance()
	}
	if t.pos >= len(t.input) {
		return Token{}, false
	}

	tok := Token{Line: t.line, Column: t.column}
	start := t.pos
	if isPunctuation(t.input[t.pos]) {
		t.advance()
	} else {
		for t.pos < len(t.input) && !isSpace(t.input[t.pos]) && !isPunctuation(t.input[t.pos]) {
			t.advance()
		}
	}
	tok.Text = string(t.input[start:t.pos])
	return tok, true
}

func (t *Tokenizer) advance() {
	if t.input[t.pos] == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	t.pos++
}

func isSpace(r rune) bool {
	for _, w := range Whitespace {
		if r == w {
			return true
		}
	}
	return false
}

func isPunctuation(r rune) bool {
	for _, p := range Punctuation {
		if r == p {
			return true
		}
	}
	return false
}

// Tokenize returns all tokens of a source
func Tokenize(input string) []Token {
	t := NewTokenizer(input)
	var out []Token
	for {
		tok, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
