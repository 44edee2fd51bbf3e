// File: expr.go
// Title: RCL Expression Nodes
// Description: Integer-valued nodes: literals, sensor readings and binary
//              arithmetic.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial expression nodes
// - 2026-10-19 v0.1.1: 32-bit wrapping arithmetic

package ast

import (
	"fmt"
	"strconv"
)

// Number is an integer literal
type Number struct {
	Value int
	Pos   Position
}

// Sensor reads a value from the robot
type Sensor struct {
	Kind SensorKind
	Pos  Position
}

// Arith applies a binary integer operator to two expressions
type Arith struct {
	Op    ArithOp
	Left  Expr
	Right Expr
	Pos   Position
}

func (*Number) exprNode() {}
func (*Sensor) exprNode() {}
func (*Arith) exprNode()  {}

func (n *Number) Position() Position { return n.Pos }
func (n *Sensor) Position() Position { return n.Pos }
func (n *Arith) Position() Position  { return n.Pos }

func (n *Number) Evaluate(Robot) (int, error) {
	return n.Value, nil
}

func (n *Sensor) Evaluate(robot Robot) (int, error) {
	return n.Kind.read(robot), nil
}

// Evaluate computes both operands left to right in 32-bit two's complement,
// so overflow wraps the same way on every platform. Division truncates
// toward zero and fails on a zero divisor.
func (n *Arith) Evaluate(robot Robot) (int, error) {
	l, err := n.Left.Evaluate(robot)
	if err != nil {
		return 0, err
	}
	r, err := n.Right.Evaluate(robot)
	if err != nil {
		return 0, err
	}

	a, b := int32(l), int32(r)
	switch n.Op {
	case OpAdd:
		return int(a + b), nil
	case OpSub:
		return int(a - b), nil
	case OpMul:
		return int(a * b), nil
	case OpDiv:
		if b == 0 {
			return 0, &EvalError{Node: n, Err: ErrDivisionByZero}
		}
		return int(a / b), nil
	}
	return 0, &EvalError{Node: n, Err: fmt.Errorf("unknown operator %d", int(n.Op))}
}

func (n *Number) String() string {
	return strconv.Itoa(n.Value)
}

func (n *Sensor) String() string {
	return n.Kind.String()
}

func (n *Arith) String() string {
	return n.Op.String() + "(" + n.Left.String() + "," + n.Right.String() + ")"
}

func (n *Number) Validate() error { return nil }

func (n *Sensor) Validate() error {
	if _, ok := sensorKeywords[n.Kind]; !ok {
		return fmt.Errorf("sensor at %s: unknown kind %d", n.Pos, int(n.Kind))
	}
	return nil
}

func (n *Arith) Validate() error {
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%s at %s: missing operand", n.Op, n.Pos)
	}
	if err := n.Left.Validate(); err != nil {
		return err
	}
	return n.Right.Validate()
}
