// File: robot.go
// Title: Robot Handle Contract
// Description: Defines the interface a controlled robot must provide to
//              execute RCL programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial robot contract

package ast

// Robot is the handle a program is executed against. Mutators perform one
// primitive step; accessors are pure reads of the robot's current view of
// the arena. Implementations own their synchronization.
type Robot interface {
	Move()
	TurnLeft()
	TurnRight()
	TakeFuel()
	IdleWait()
	TurnAround()
	SetShield(on bool)

	Fuel() int
	OpponentLR() int
	OpponentFB() int
	NumBarrels() int
	ClosestBarrelLR() int
	ClosestBarrelFB() int
	WallDistance() int
}
