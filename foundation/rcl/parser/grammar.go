// File: grammar.go
// Title: RCL Grammar Classes
// Description: Fixed table of token classes used by the parser for
//              lookahead decisions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial grammar table

package parser

import (
	"regexp"
	"strings"
)

// Class is a named predicate over a single token
type Class struct {
	Name  string
	match func(string) bool
}

// Match reports whether the token belongs to the class
func (c Class) Match(token string) bool {
	return c.match(token)
}

func (c Class) String() string {
	return c.Name
}

func literal(s string) Class {
	return Class{
		Name:  "'" + s + "'",
		match: func(tok string) bool { return tok == s },
	}
}

func oneOf(name string, words ...string) Class {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return Class{
		Name: name + " (" + strings.Join(words, "|") + ")",
		match: func(tok string) bool {
			_, ok := set[tok]
			return ok
		},
	}
}

var numberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

// Token classes of the grammar
var (
	ClassNumber = Class{Name: "number", match: numberPattern.MatchString}

	ClassOpenParen  = literal("(")
	ClassCloseParen = literal(")")
	ClassOpenBrace  = literal("{")
	ClassCloseBrace = literal("}")
	ClassComma      = literal(",")
	ClassSemicolon  = literal(";")

	ClassLoop  = literal("loop")
	ClassWhile = literal("while")
	ClassIf    = literal("if")
	ClassElse  = literal("else")
	ClassNot   = literal("not")

	ClassAction = oneOf("action",
		"move", "turnL", "turnR", "takeFuel", "wait", "shieldOn", "shieldOff", "turnAround")
	ClassControl = oneOf("control", "loop", "while", "if")
	ClassSensor  = oneOf("sensor",
		"fuelLeft", "oppLR", "oppFB", "numBarrels", "barrelLR", "barrelFB", "wallDist")
	ClassRelOp   = oneOf("relational operator", "lt", "gt", "eq")
	ClassArithOp = oneOf("arithmetic operator", "add", "sub", "mul", "div")
	ClassLogicOp = oneOf("logical operator", "and", "or", "not")
)
