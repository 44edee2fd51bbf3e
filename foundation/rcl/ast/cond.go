// File: cond.go
// Title: RCL Condition Nodes
// Description: Boolean-valued nodes: relational comparisons and logical
//              combinators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial condition nodes

package ast

import "fmt"

// Compare relates two integer expressions
type Compare struct {
	Op    RelOp
	Left  Expr
	Right Expr
	Pos   Position
}

// Logic combines two conditions with and/or
type Logic struct {
	Op    LogicOp
	Left  Cond
	Right Cond
	Pos   Position
}

// Not negates a condition
type Not struct {
	Operand Cond
	Pos     Position
}

func (*Compare) condNode() {}
func (*Logic) condNode()   {}
func (*Not) condNode()     {}

func (n *Compare) Position() Position { return n.Pos }
func (n *Logic) Position() Position   { return n.Pos }
func (n *Not) Position() Position     { return n.Pos }

func (n *Compare) Evaluate(robot Robot) (bool, error) {
	l, err := n.Left.Evaluate(robot)
	if err != nil {
		return false, err
	}
	r, err := n.Right.Evaluate(robot)
	if err != nil {
		return false, err
	}

	switch n.Op {
	case RelLT:
		return l < r, nil
	case RelGT:
		return l > r, nil
	case RelEQ:
		return l == r, nil
	}
	return false, &EvalError{Node: n, Err: fmt.Errorf("unknown comparison %d", int(n.Op))}
}

// Evaluate always evaluates both operands; there is no short circuit.
func (n *Logic) Evaluate(robot Robot) (bool, error) {
	l, err := n.Left.Evaluate(robot)
	if err != nil {
		return false, err
	}
	r, err := n.Right.Evaluate(robot)
	if err != nil {
		return false, err
	}

	switch n.Op {
	case LogicAnd:
		return l && r, nil
	case LogicOr:
		return l || r, nil
	}
	return false, &EvalError{Node: n, Err: fmt.Errorf("unknown combinator %d", int(n.Op))}
}

func (n *Not) Evaluate(robot Robot) (bool, error) {
	v, err := n.Operand.Evaluate(robot)
	if err != nil {
		return false, err
	}
	return !v, nil
}

func (n *Compare) String() string {
	return n.Op.String() + "(" + n.Left.String() + "," + n.Right.String() + ")"
}

func (n *Logic) String() string {
	return n.Op.String() + "(" + n.Left.String() + "," + n.Right.String() + ")"
}

func (n *Not) String() string {
	return "not(" + n.Operand.String() + ")"
}

func (n *Compare) Validate() error {
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%s at %s: missing operand", n.Op, n.Pos)
	}
	if err := n.Left.Validate(); err != nil {
		return err
	}
	return n.Right.Validate()
}

func (n *Logic) Validate() error {
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%s at %s: missing operand", n.Op, n.Pos)
	}
	if err := n.Left.Validate(); err != nil {
		return err
	}
	return n.Right.Validate()
}

func (n *Not) Validate() error {
	if n.Operand == nil {
		return fmt.Errorf("not at %s: missing operand", n.Pos)
	}
	return n.Operand.Validate()
}
