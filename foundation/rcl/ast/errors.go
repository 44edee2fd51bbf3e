// File: errors.go
// Title: RCL Evaluation Errors
// Description: Error type raised while evaluating expressions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial evaluation error

package ast

import "errors"

// ErrDivisionByZero is the cause of an EvalError raised by div(x,0)
var ErrDivisionByZero = errors.New("division by zero")

// EvalError reports a failed evaluation together with the failing subtree
type EvalError struct {
	Node Node
	Err  error
}

func (e *EvalError) Error() string {
	return e.Err.Error() + " in " + e.Node.String() + " at " + e.Node.Position().String()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
