// File: doc.go
// Title: RCL Abstract Syntax Tree
// Description: Package documentation for the robot control language AST.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package ast defines the syntax tree of the robot control language (RCL)
// together with its evaluation rules.
//
// Nodes fall into three families:
//
//   - Stmt nodes (Program, Block, Loop, While, If, Action) are executed
//     against a Robot for their side effects.
//   - Expr nodes (Number, Sensor, Arith) evaluate to an integer.
//   - Cond nodes (Compare, Logic, Not) evaluate to a boolean.
//
// Evaluation is a direct recursive walk of the tree. The tree itself is
// never mutated by evaluation, so a parsed program may be executed any
// number of times and by several robots at once; only the Robot handle
// carries state.
//
// Basic usage:
//
//	prog, err := parser.ParseString("while(gt(wallDist,1)){move;} turnL;")
//	if err != nil {
//		return err
//	}
//	if err := prog.Execute(ctx, robot); err != nil {
//		return err
//	}
//
// String returns the compact canonical rendering of a node, which parses
// back into an equivalent tree. Format returns an indented multi-line
// rendering for display.
package ast
