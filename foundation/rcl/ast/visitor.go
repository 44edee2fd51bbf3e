// File: visitor.go
// Title: RCL AST Visitor
// Description: Visitor pattern and depth-first traversal helpers for the
//              RCL syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor and Walk

package ast

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit statement nodes
	VisitProgram(n *Program) interface{}
	VisitBlock(n *Block) interface{}
	VisitLoop(n *Loop) interface{}
	VisitWhile(n *While) interface{}
	VisitIf(n *If) interface{}
	VisitAction(n *Action) interface{}

	// Visit expression nodes
	VisitNumber(n *Number) interface{}
	VisitSensor(n *Sensor) interface{}
	VisitArith(n *Arith) interface{}

	// Visit condition nodes
	VisitCompare(n *Compare) interface{}
	VisitLogic(n *Logic) interface{}
	VisitNot(n *Not) interface{}
}

func (n *Program) Accept(v Visitor) interface{} { return v.VisitProgram(n) }
func (n *Block) Accept(v Visitor) interface{}   { return v.VisitBlock(n) }
func (n *Loop) Accept(v Visitor) interface{}    { return v.VisitLoop(n) }
func (n *While) Accept(v Visitor) interface{}   { return v.VisitWhile(n) }
func (n *If) Accept(v Visitor) interface{}      { return v.VisitIf(n) }
func (n *Action) Accept(v Visitor) interface{}  { return v.VisitAction(n) }
func (n *Number) Accept(v Visitor) interface{}  { return v.VisitNumber(n) }
func (n *Sensor) Accept(v Visitor) interface{}  { return v.VisitSensor(n) }
func (n *Arith) Accept(v Visitor) interface{}   { return v.VisitArith(n) }
func (n *Compare) Accept(v Visitor) interface{} { return v.VisitCompare(n) }
func (n *Logic) Accept(v Visitor) interface{}   { return v.VisitLogic(n) }
func (n *Not) Accept(v Visitor) interface{}     { return v.VisitNot(n) }

// Children returns the direct children of a node in source order
func Children(node Node) []Node {
	var out []Node
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			out = append(out, s)
		}
	case *Block:
		for _, s := range n.Statements {
			out = append(out, s)
		}
	case *Loop:
		out = append(out, n.Body)
	case *While:
		out = append(out, n.Cond, n.Body)
	case *If:
		out = append(out, n.Cond, n.Then)
		if n.Else != nil {
			out = append(out, n.Else)
		}
	case *Action:
		if n.Count != nil {
			out = append(out, n.Count)
		}
	case *Arith:
		out = append(out, n.Left, n.Right)
	case *Compare:
		out = append(out, n.Left, n.Right)
	case *Logic:
		out = append(out, n.Left, n.Right)
	case *Not:
		out = append(out, n.Operand)
	}
	return out
}

// Walk traverses the tree depth-first in source order. fn receives every
// node with its depth below the start node; returning false skips the
// node's children.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int) bool) {
	if node == nil || !fn(node, depth) {
		return
	}
	for _, child := range Children(node) {
		walk(child, depth+1, fn)
	}
}

// Stats summarizes the shape of a tree
type Stats struct {
	Statements  int // control statements and actions
	Actions     int
	Conditions  int
	Expressions int
	MaxDepth    int // deepest block nesting
}

// Collect gathers Stats for a tree
func Collect(node Node) Stats {
	var st Stats
	Walk(node, func(n Node, _ int) bool {
		switch n.(type) {
		case *Action:
			st.Statements++
			st.Actions++
		case *Loop, *While, *If:
			st.Statements++
		case *Compare, *Logic, *Not:
			st.Conditions++
		case *Number, *Sensor, *Arith:
			st.Expressions++
		}
		return true
	})
	st.MaxDepth = blockDepth(node)
	return st
}

func blockDepth(node Node) int {
	best := 0
	for _, child := range Children(node) {
		if d := blockDepth(child); d > best {
			best = d
		}
	}
	if _, ok := node.(*Block); ok {
		best++
	}
	return best
}
