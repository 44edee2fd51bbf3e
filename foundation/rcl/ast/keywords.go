// File: keywords.go
// Title: RCL Keyword Kinds
// Description: Enumerations for actions, sensors and operators together
//              with their surface keywords.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial keyword tables

package ast

import "sort"

// ActionKind identifies a primitive robot action
type ActionKind int

const (
	ActMove ActionKind = iota
	ActTurnLeft
	ActTurnRight
	ActTakeFuel
	ActWait
	ActTurnAround
	ActShieldOn
	ActShieldOff
)

var actionKeywords = map[ActionKind]string{
	ActMove:       "move",
	ActTurnLeft:   "turnL",
	ActTurnRight:  "turnR",
	ActTakeFuel:   "takeFuel",
	ActWait:       "wait",
	ActTurnAround: "turnAround",
	ActShieldOn:   "shieldOn",
	ActShieldOff:  "shieldOff",
}

// String returns the surface keyword of the action
func (k ActionKind) String() string {
	if s, ok := actionKeywords[k]; ok {
		return s
	}
	return "unknown"
}

// Repeatable reports whether the action accepts a repeat count
func (k ActionKind) Repeatable() bool {
	return k == ActMove || k == ActWait
}

func (k ActionKind) apply(robot Robot) {
	switch k {
	case ActMove:
		robot.Move()
	case ActTurnLeft:
		robot.TurnLeft()
	case ActTurnRight:
		robot.TurnRight()
	case ActTakeFuel:
		robot.TakeFuel()
	case ActWait:
		robot.IdleWait()
	case ActTurnAround:
		robot.TurnAround()
	case ActShieldOn:
		robot.SetShield(true)
	case ActShieldOff:
		robot.SetShield(false)
	}
}

// SensorKind identifies a robot sensor reading
type SensorKind int

const (
	SenFuelLeft SensorKind = iota
	SenOppLR
	SenOppFB
	SenNumBarrels
	SenBarrelLR
	SenBarrelFB
	SenWallDist
)

var sensorKeywords = map[SensorKind]string{
	SenFuelLeft:   "fuelLeft",
	SenOppLR:      "oppLR",
	SenOppFB:      "oppFB",
	SenNumBarrels: "numBarrels",
	SenBarrelLR:   "barrelLR",
	SenBarrelFB:   "barrelFB",
	SenWallDist:   "wallDist",
}

// String returns the surface keyword of the sensor
func (k SensorKind) String() string {
	if s, ok := sensorKeywords[k]; ok {
		return s
	}
	return "unknown"
}

func (k SensorKind) read(robot Robot) int {
	switch k {
	case SenFuelLeft:
		return robot.Fuel()
	case SenOppLR:
		return robot.OpponentLR()
	case SenOppFB:
		return robot.OpponentFB()
	case SenNumBarrels:
		return robot.NumBarrels()
	case SenBarrelLR:
		return robot.ClosestBarrelLR()
	case SenBarrelFB:
		return robot.ClosestBarrelFB()
	case SenWallDist:
		return robot.WallDistance()
	}
	return 0
}

// ArithOp identifies a binary arithmetic operator
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

var arithKeywords = map[ArithOp]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
}

func (op ArithOp) String() string {
	if s, ok := arithKeywords[op]; ok {
		return s
	}
	return "unknown"
}

// RelOp identifies a relational comparison
type RelOp int

const (
	RelLT RelOp = iota
	RelGT
	RelEQ
)

var relKeywords = map[RelOp]string{
	RelLT: "lt",
	RelGT: "gt",
	RelEQ: "eq",
}

func (op RelOp) String() string {
	if s, ok := relKeywords[op]; ok {
		return s
	}
	return "unknown"
}

// LogicOp identifies a binary logical combinator
type LogicOp int

const (
	LogicAnd LogicOp = iota
	LogicOr
)

func (op LogicOp) String() string {
	switch op {
	case LogicAnd:
		return "and"
	case LogicOr:
		return "or"
	}
	return "unknown"
}

// LookupAction returns the action kind for a keyword
func LookupAction(keyword string) (ActionKind, bool) {
	for k, s := range actionKeywords {
		if s == keyword {
			return k, true
		}
	}
	return 0, false
}

// LookupSensor returns the sensor kind for a keyword
func LookupSensor(keyword string) (SensorKind, bool) {
	for k, s := range sensorKeywords {
		if s == keyword {
			return k, true
		}
	}
	return 0, false
}

// LookupArith returns the arithmetic operator for a keyword
func LookupArith(keyword string) (ArithOp, bool) {
	for k, s := range arithKeywords {
		if s == keyword {
			return k, true
		}
	}
	return 0, false
}

// LookupRel returns the relational operator for a keyword
func LookupRel(keyword string) (RelOp, bool) {
	for k, s := range relKeywords {
		if s == keyword {
			return k, true
		}
	}
	return 0, false
}

// SensorKinds returns every sensor in declaration order
func SensorKinds() []SensorKind {
	return []SensorKind{SenFuelLeft, SenOppLR, SenOppFB, SenNumBarrels, SenBarrelLR, SenBarrelFB, SenWallDist}
}

// Keywords returns every reserved word of the language
func Keywords() []string {
	words := []string{"loop", "while", "if", "else", "not", "and", "or"}
	for _, s := range actionKeywords {
		words = append(words, s)
	}
	for _, s := range sensorKeywords {
		words = append(words, s)
	}
	for _, s := range arithKeywords {
		words = append(words, s)
	}
	for _, s := range relKeywords {
		words = append(words, s)
	}
	sort.Strings(words)
	return words
}
