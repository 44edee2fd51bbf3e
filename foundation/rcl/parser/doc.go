// File: doc.go
// Title: RCL Parser
// Description: Package documentation for the robot control language
//              tokenizer, grammar classes and recursive descent parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package parser turns RCL source text into an ast.Program.
//
// The Tokenizer splits source into whitespace separated tokens, with each
// of ( ) { } , ; always forming a token of its own. Grammar classes are
// fixed predicates over single tokens. The Parser has one function per
// nonterminal and decides every choice with a single token of lookahead:
//
//	PROG    := STMT*
//	STMT    := ACT | LOOP | IF | WHILE
//	ACT     := ('move' ('(' EXP ')')? | 'turnL' | 'turnR' | 'takeFuel'
//	          | 'wait' ('(' EXP ')')? | 'shieldOn' | 'shieldOff'
//	          | 'turnAround') ';'
//	LOOP    := 'loop' BLOCK
//	WHILE   := 'while' '(' COND ')' BLOCK
//	IF      := 'if' '(' COND ')' BLOCK ('else' BLOCK)?
//	BLOCK   := '{' STMT* '}'
//	COND    := RELOP '(' EXP ',' EXP ')' | 'and' '(' COND ',' COND ')'
//	          | 'or' '(' COND ',' COND ')' | 'not' '(' COND ')'
//	EXP     := NUMBER | SENSOR | OP '(' EXP ',' EXP ')'
//
// Any mismatch aborts the parse with a *ParseError that carries up to five
// of the following tokens as context. Every nonterminal rejects an
// exhausted token stream, so empty source never parses.
package parser
