// File: nodes.go
// Title: RCL AST Node Definitions
// Description: Defines the node interfaces and the statement family of the
//              RCL syntax tree: program root, blocks, control flow and
//              primitive actions, with their execution rules.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node definitions
// - 2026-10-19 v0.1.1: Repeat counts re-evaluated per iteration

package ast

import (
	"context"
	"fmt"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the compact canonical rendering of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate reports missing children in the subtree
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Stmt is a node executed for its effect on a robot
type Stmt interface {
	Node
	Execute(ctx context.Context, robot Robot) error
	stmtNode()
}

// Expr is a node evaluating to an integer
type Expr interface {
	Node
	Evaluate(robot Robot) (int, error)
	exprNode()
}

// Cond is a node evaluating to a boolean
type Cond interface {
	Node
	Evaluate(robot Robot) (bool, error)
	condNode()
}

// Program is the root of a parsed source
type Program struct {
	Statements []Stmt
	Pos        Position
}

// Block is a braced statement sequence
type Block struct {
	Statements []Stmt
	Pos        Position
}

// Loop repeats its body until the context is cancelled
type Loop struct {
	Body *Block
	Pos  Position
}

// While repeats its body while the condition holds
type While struct {
	Cond Cond
	Body *Block
	Pos  Position
}

// If executes Then when the condition holds, Else otherwise
type If struct {
	Cond Cond
	Then *Block
	Else *Block // nil without an else branch
	Pos  Position
}

// Action is a primitive robot action. Count is only set for move and wait
// with an explicit repeat expression.
type Action struct {
	Kind  ActionKind
	Count Expr
	Pos   Position
}

func (*Program) stmtNode() {}
func (*Block) stmtNode()   {}
func (*Loop) stmtNode()    {}
func (*While) stmtNode()   {}
func (*If) stmtNode()      {}
func (*Action) stmtNode()  {}

func (n *Program) Position() Position { return n.Pos }
func (n *Block) Position() Position   { return n.Pos }
func (n *Loop) Position() Position    { return n.Pos }
func (n *While) Position() Position   { return n.Pos }
func (n *If) Position() Position      { return n.Pos }
func (n *Action) Position() Position  { return n.Pos }

// HasElse reports whether the if statement carries an else branch
func (n *If) HasElse() bool {
	return n.Else != nil
}

// Execute runs the statements in order
func (n *Program) Execute(ctx context.Context, robot Robot) error {
	return executeAll(ctx, n.Statements, robot)
}

// Execute runs the statements in order
func (n *Block) Execute(ctx context.Context, robot Robot) error {
	return executeAll(ctx, n.Statements, robot)
}

func executeAll(ctx context.Context, stmts []Stmt, robot Robot) error {
	for _, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := stmt.Execute(ctx, robot); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the body forever. Only context cancellation or an
// evaluation error ends the loop.
func (n *Loop) Execute(ctx context.Context, robot Robot) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := n.Body.Execute(ctx, robot); err != nil {
			return err
		}
	}
}

// Execute re-evaluates the condition before every iteration
func (n *While) Execute(ctx context.Context, robot Robot) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := n.Cond.Evaluate(robot)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := n.Body.Execute(ctx, robot); err != nil {
			return err
		}
	}
}

// Execute evaluates the condition once and runs exactly one branch
func (n *If) Execute(ctx context.Context, robot Robot) error {
	ok, err := n.Cond.Evaluate(robot)
	if err != nil {
		return err
	}
	if ok {
		return n.Then.Execute(ctx, robot)
	}
	if n.Else != nil {
		return n.Else.Execute(ctx, robot)
	}
	return nil
}

// Execute performs the action once, or repeatedly while the iteration
// count stays below Count. Count is re-evaluated before every iteration,
// so a sensor-driven bound tracks the robot's state; non-positive counts
// perform nothing.
func (n *Action) Execute(ctx context.Context, robot Robot) error {
	if n.Count == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		n.Kind.apply(robot)
		return nil
	}
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		bound, err := n.Count.Evaluate(robot)
		if err != nil {
			return err
		}
		if i >= bound {
			return nil
		}
		n.Kind.apply(robot)
	}
}

func (n *Program) String() string {
	parts := make([]string, len(n.Statements))
	for i, stmt := range n.Statements {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, " ")
}

func (n *Block) String() string {
	parts := make([]string, len(n.Statements))
	for i, stmt := range n.Statements {
		parts[i] = stmt.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func (n *Loop) String() string {
	return "loop" + n.Body.String()
}

func (n *While) String() string {
	return "while(" + n.Cond.String() + ")" + n.Body.String()
}

func (n *If) String() string {
	s := "if(" + n.Cond.String() + ")" + n.Then.String()
	if n.Else != nil {
		s += "else" + n.Else.String()
	}
	return s
}

func (n *Action) String() string {
	if n.Count != nil {
		return n.Kind.String() + "(" + n.Count.String() + ");"
	}
	return n.Kind.String() + ";"
}

// Validate checks the whole program
func (n *Program) Validate() error {
	for i, stmt := range n.Statements {
		if stmt == nil {
			return fmt.Errorf("program: statement %d is missing", i)
		}
		if err := stmt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Block) Validate() error {
	for i, stmt := range n.Statements {
		if stmt == nil {
			return fmt.Errorf("block at %s: statement %d is missing", n.Pos, i)
		}
		if err := stmt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Loop) Validate() error {
	if n.Body == nil {
		return fmt.Errorf("loop at %s: missing body", n.Pos)
	}
	return n.Body.Validate()
}

func (n *While) Validate() error {
	if n.Cond == nil {
		return fmt.Errorf("while at %s: missing condition", n.Pos)
	}
	if n.Body == nil {
		return fmt.Errorf("while at %s: missing body", n.Pos)
	}
	if err := n.Cond.Validate(); err != nil {
		return err
	}
	return n.Body.Validate()
}

func (n *If) Validate() error {
	if n.Cond == nil {
		return fmt.Errorf("if at %s: missing condition", n.Pos)
	}
	if n.Then == nil {
		return fmt.Errorf("if at %s: missing body", n.Pos)
	}
	if err := n.Cond.Validate(); err != nil {
		return err
	}
	if err := n.Then.Validate(); err != nil {
		return err
	}
	if n.Else != nil {
		return n.Else.Validate()
	}
	return nil
}

func (n *Action) Validate() error {
	if _, ok := actionKeywords[n.Kind]; !ok {
		return fmt.Errorf("action at %s: unknown kind %d", n.Pos, int(n.Kind))
	}
	if n.Count != nil {
		if !n.Kind.Repeatable() {
			return fmt.Errorf("action at %s: %s takes no argument", n.Pos, n.Kind)
		}
		return n.Count.Validate()
	}
	return nil
}
