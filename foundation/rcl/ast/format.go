// File: format.go
// Title: RCL Pretty Printer
// Description: Renders a tree as indented multi-line source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial formatter

package ast

import "strings"

const indentUnit = "  "

// Format renders a node as indented source, one statement per line.
// Expressions and conditions are rendered in their canonical form.
func Format(node Node) string {
	f := &formatter{}
	node.Accept(f)
	return f.sb.String()
}

type formatter struct {
	sb     strings.Builder
	indent int
}

func (f *formatter) line(s string) {
	f.sb.WriteString(strings.Repeat(indentUnit, f.indent))
	f.sb.WriteString(s)
	f.sb.WriteByte('\n')
}

func (f *formatter) body(b *Block) {
	f.indent++
	for _, stmt := range b.Statements {
		stmt.Accept(f)
	}
	f.indent--
}

func (f *formatter) block(header string, b *Block) {
	open := strings.TrimSpace(header + " {")
	if len(b.Statements) == 0 {
		f.line(open + "}")
		return
	}
	f.line(open)
	f.body(b)
	f.line("}")
}

func (f *formatter) VisitProgram(n *Program) interface{} {
	for _, stmt := range n.Statements {
		stmt.Accept(f)
	}
	return nil
}

func (f *formatter) VisitBlock(n *Block) interface{} {
	f.block("", n)
	return nil
}

func (f *formatter) VisitLoop(n *Loop) interface{} {
	f.block("loop", n.Body)
	return nil
}

func (f *formatter) VisitWhile(n *While) interface{} {
	f.block("while ("+n.Cond.String()+")", n.Body)
	return nil
}

func (f *formatter) VisitIf(n *If) interface{} {
	header := "if (" + n.Cond.String() + ")"
	if n.Else == nil {
		f.block(header, n.Then)
		return nil
	}

	f.line(header + " {")
	f.body(n.Then)
	if len(n.Else.Statements) == 0 {
		f.line("} else {}")
		return nil
	}
	f.line("} else {")
	f.body(n.Else)
	f.line("}")
	return nil
}

func (f *formatter) VisitAction(n *Action) interface{} {
	f.line(n.String())
	return nil
}

func (f *formatter) VisitNumber(n *Number) interface{} {
	f.line(n.String())
	return nil
}

func (f *formatter) VisitSensor(n *Sensor) interface{} {
	f.line(n.String())
	return nil
}

func (f *formatter) VisitArith(n *Arith) interface{} {
	f.line(n.String())
	return nil
}

func (f *formatter) VisitCompare(n *Compare) interface{} {
	f.line(n.String())
	return nil
}

func (f *formatter) VisitLogic(n *Logic) interface{} {
	f.line(n.String())
	return nil
}

func (f *formatter) VisitNot(n *Not) interface{} {
	f.line(n.String())
	return nil
}
