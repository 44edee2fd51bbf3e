// File: parser.go
// Title: RCL Recursive Descent Parser
// Description: Converts RCL source into an ast.Program. One function per
//              nonterminal, LL(1) lookahead over the grammar classes,
//              fail-fast error reporting with token context.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	mdwlog "github.com/msto63/roboarena/foundation/core/log"
	"github.com/msto63/roboarena/foundation/rcl/ast"
)

// DefaultMaxSourceBytes bounds the source accepted by a parser
const DefaultMaxSourceBytes = 64 * 1024

// contextTokens is the number of upcoming tokens quoted in a ParseError
const contextTokens = 5

// ErrSourceTooLarge is returned for sources above Options.MaxSourceBytes
var ErrSourceTooLarge = errors.New("source exceeds maximum size")

// Parser implements recursive descent parsing for RCL. A Parser holds
// only configuration and is safe for concurrent use.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxSourceBytes int
}

// ParseError represents a parse failure with the tokens that followed it
type ParseError struct {
	Message string
	Context []string // up to five upcoming tokens
	Line    int
	Column  int
}

func (pe *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (line %d, column %d)\n   @ ...", pe.Message, pe.Line, pe.Column)
	for _, tok := range pe.Context {
		sb.WriteString(" ")
		sb.WriteString(tok)
	}
	sb.WriteString("...")
	return sb.String()
}

// New creates a new RCL parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxSourceBytes == 0 {
		opts.MaxSourceBytes = DefaultMaxSourceBytes
	}
	if opts.MaxSourceBytes < 0 {
		return nil, fmt.Errorf("invalid max source size: %d", opts.MaxSourceBytes)
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "rcl-parser"),
		options: opts,
	}, nil
}

// ParseString parses a source with default options and a silent logger
func ParseString(src string) (*ast.Program, error) {
	p, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		return nil, err
	}
	return p.Parse(src)
}

// Parse parses a complete RCL program
func (p *Parser) Parse(src string) (*ast.Program, error) {
	if len(src) > p.options.MaxSourceBytes {
		return nil, fmt.Errorf("%w: %d > %d", ErrSourceTooLarge, len(src), p.options.MaxSourceBytes)
	}

	p.logger.Debug("Starting RCL parsing", mdwlog.Fields{
		"length": len(src),
	})

	s := &state{tokens: NewTokenizer(src)}
	prog, err := s.parseProgram()
	if err != nil {
		fields := mdwlog.Fields{"error": err.Error()}
		var pe *ParseError
		if errors.As(err, &pe) {
			fields["line"] = pe.Line
			fields["column"] = pe.Column
			fields["message"] = pe.Message
		}
		p.logger.Warn("RCL parsing failed", fields)
		return nil, err
	}

	p.logger.Debug("RCL parsing completed successfully", mdwlog.Fields{
		"statements": len(prog.Statements),
	})
	return prog, nil
}

// state carries the token cursor through a single parse
type state struct {
	tokens *Tokenizer
}

// fail builds a ParseError at the current position, consuming up to five
// tokens as context.
func (s *state) fail(message string) error {
	line, column := s.tokens.Position()
	pe := &ParseError{Message: message, Line: line, Column: column}
	for i := 0; i < contextTokens; i++ {
		tok, ok := s.tokens.Next()
		if !ok {
			break
		}
		pe.Context = append(pe.Context, tok.Text)
	}
	return pe
}

// require consumes the next token if it belongs to the class
func (s *state) require(class Class, message string) (Token, error) {
	if s.tokens.HasNextMatching(class) {
		tok, _ := s.tokens.Next()
		return tok, nil
	}
	return Token{}, s.fail(message)
}

// checkFor consumes the next token if it belongs to the class
func (s *state) checkFor(class Class) bool {
	if s.tokens.HasNextMatching(class) {
		s.tokens.Next()
		return true
	}
	return false
}

func (s *state) checkEmpty() error {
	if !s.tokens.HasNext() {
		return s.fail("unexpected end of input")
	}
	return nil
}

func (s *state) position() ast.Position {
	line, column := s.tokens.Position()
	return ast.Position{Line: line, Column: column}
}

// PROG := STMT*
func (s *state) parseProgram() (*ast.Program, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	prog := &ast.Program{Pos: s.position()}
	for s.tokens.HasNext() {
		stmt, err := s.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// STMT := ACT | LOOP | IF | WHILE
func (s *state) parseStmt() (ast.Stmt, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	switch {
	case s.tokens.HasNextMatching(ClassAction):
		return s.parseAct()
	case s.tokens.HasNextMatching(ClassLoop):
		return s.parseLoop()
	case s.tokens.HasNextMatching(ClassIf):
		return s.parseIf()
	case s.tokens.HasNextMatching(ClassWhile):
		return s.parseWhile()
	}
	return nil, s.fail("unknown statement")
}

// ACT := action ('(' EXP ')')? ';'
func (s *state) parseAct() (ast.Stmt, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	tok, err := s.require(ClassAction, "not an action")
	if err != nil {
		return nil, err
	}
	kind, ok := ast.LookupAction(tok.Text)
	if !ok {
		return nil, s.fail("not an action")
	}

	act := &ast.Action{Kind: kind, Pos: pos}
	if kind.Repeatable() && s.tokens.HasNextMatching(ClassOpenParen) {
		if _, err := s.require(ClassOpenParen, "no open parenthesis"); err != nil {
			return nil, err
		}
		count, err := s.parseExp()
		if err != nil {
			return nil, err
		}
		if _, err := s.require(ClassCloseParen, "no close parenthesis"); err != nil {
			return nil, err
		}
		act.Count = count
	}

	if _, err := s.require(ClassSemicolon, "no semicolon"); err != nil {
		return nil, err
	}
	return act, nil
}

// LOOP := 'loop' BLOCK
func (s *state) parseLoop() (ast.Stmt, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	if _, err := s.require(ClassLoop, "not 'loop'"); err != nil {
		return nil, err
	}
	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Body: body, Pos: pos}, nil
}

// BLOCK := '{' STMT* '}'
func (s *state) parseBlock() (*ast.Block, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	if _, err := s.require(ClassOpenBrace, "no open brace"); err != nil {
		return nil, err
	}

	block := &ast.Block{Pos: pos}
	for s.tokens.HasNext() && !s.tokens.HasNextMatching(ClassCloseBrace) {
		stmt, err := s.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	if _, err := s.require(ClassCloseBrace, "no close brace"); err != nil {
		return nil, err
	}
	return block, nil
}

// IF := 'if' '(' COND ')' BLOCK ('else' BLOCK)?
func (s *state) parseIf() (ast.Stmt, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	if _, err := s.require(ClassIf, "not 'if'"); err != nil {
		return nil, err
	}
	cond, err := s.parseGuard()
	if err != nil {
		return nil, err
	}
	then, err := s.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.If{Cond: cond, Then: then, Pos: pos}
	if s.checkFor(ClassElse) {
		elseBlock, err := s.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

// WHILE := 'while' '(' COND ')' BLOCK
func (s *state) parseWhile() (ast.Stmt, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	if _, err := s.require(ClassWhile, "not 'while'"); err != nil {
		return nil, err
	}
	cond, err := s.parseGuard()
	if err != nil {
		return nil, err
	}
	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Pos: pos}, nil
}

// parseGuard parses the parenthesized condition of if and while
func (s *state) parseGuard() (ast.Cond, error) {
	if _, err := s.require(ClassOpenParen, "no open parenthesis"); err != nil {
		return nil, err
	}
	cond, err := s.parseCond()
	if err != nil {
		return nil, err
	}
	if _, err := s.require(ClassCloseParen, "no close parenthesis"); err != nil {
		return nil, err
	}
	return cond, nil
}

// COND := RELOP '(' EXP ',' EXP ')' | CONDOP
func (s *state) parseCond() (ast.Cond, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	switch {
	case s.tokens.HasNextMatching(ClassRelOp):
		return s.parseRelop()
	case s.tokens.HasNextMatching(ClassLogicOp):
		return s.parseCondop()
	}
	return nil, s.fail("not a condition")
}

// RELOP '(' EXP ',' EXP ')'
func (s *state) parseRelop() (ast.Cond, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	tok, err := s.require(ClassRelOp, "not a relational operator")
	if err != nil {
		return nil, err
	}
	op, ok := ast.LookupRel(tok.Text)
	if !ok {
		return nil, s.fail("not a relational operator")
	}
	left, right, err := s.parseExpPair()
	if err != nil {
		return nil, err
	}
	return &ast.Compare{Op: op, Left: left, Right: right, Pos: pos}, nil
}

// CONDOP := ('and'|'or') '(' COND ',' COND ')' | 'not' '(' COND ')'
func (s *state) parseCondop() (ast.Cond, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	tok, err := s.require(ClassLogicOp, "not a logical operator")
	if err != nil {
		return nil, err
	}
	if _, err := s.require(ClassOpenParen, "no open parenthesis"); err != nil {
		return nil, err
	}

	if ClassNot.Match(tok.Text) {
		operand, err := s.parseCond()
		if err != nil {
			return nil, err
		}
		if _, err := s.require(ClassCloseParen, "no close parenthesis"); err != nil {
			return nil, err
		}
		return &ast.Not{Operand: operand, Pos: pos}, nil
	}

	op := ast.LogicAnd
	if tok.Text == "or" {
		op = ast.LogicOr
	}
	left, err := s.parseCond()
	if err != nil {
		return nil, err
	}
	if _, err := s.require(ClassComma, "no comma"); err != nil {
		return nil, err
	}
	right, err := s.parseCond()
	if err != nil {
		return nil, err
	}
	if _, err := s.require(ClassCloseParen, "no close parenthesis"); err != nil {
		return nil, err
	}
	return &ast.Logic{Op: op, Left: left, Right: right, Pos: pos}, nil
}

// EXP := NUMBER | SENSOR | OP
func (s *state) parseExp() (ast.Expr, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	switch {
	case s.tokens.HasNextMatching(ClassNumber):
		return s.parseNumber()
	case s.tokens.HasNextMatching(ClassSensor):
		return s.parseSensor()
	case s.tokens.HasNextMatching(ClassArithOp):
		return s.parseOp()
	}
	return nil, s.fail("not an expression")
}

// parseNumber accepts literals in the 32-bit signed range
func (s *state) parseNumber() (ast.Expr, error) {
	pos := s.position()
	tok, _ := s.tokens.Peek()
	v, err := strconv.ParseInt(tok.Text, 10, 32)
	if err != nil {
		return nil, s.fail("not an integer")
	}
	s.tokens.Next()
	return &ast.Number{Value: int(v), Pos: pos}, nil
}

func (s *state) parseSensor() (ast.Expr, error) {
	pos := s.position()
	tok, err := s.require(ClassSensor, "not a sensor")
	if err != nil {
		return nil, err
	}
	kind, ok := ast.LookupSensor(tok.Text)
	if !ok {
		return nil, s.fail("not a sensor")
	}
	return &ast.Sensor{Kind: kind, Pos: pos}, nil
}

// OP := ('add'|'sub'|'mul'|'div') '(' EXP ',' EXP ')'
func (s *state) parseOp() (ast.Expr, error) {
	if err := s.checkEmpty(); err != nil {
		return nil, err
	}

	pos := s.position()
	tok, err := s.require(ClassArithOp, "not an operator")
	if err != nil {
		return nil, err
	}
	op, ok := ast.LookupArith(tok.Text)
	if !ok {
		return nil, s.fail("not an operator")
	}
	left, right, err := s.parseExpPair()
	if err != nil {
		return nil, err
	}
	return &ast.Arith{Op: op, Left: left, Right: right, Pos: pos}, nil
}

// parseExpPair parses '(' EXP ',' EXP ')'
func (s *state) parseExpPair() (ast.Expr, ast.Expr, error) {
	if _, err := s.require(ClassOpenParen, "no open parenthesis"); err != nil {
		return nil, nil, err
	}
	left, err := s.parseExp()
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.require(ClassComma, "no comma"); err != nil {
		return nil, nil, err
	}
	right, err := s.parseExp()
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.require(ClassCloseParen, "no close parenthesis"); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
