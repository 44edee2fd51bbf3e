// Package error provides coded, contextual errors for the roboarena foundation.
//
// Package: error
// Title: Structured Errors
// Description: An Error carries a message, a Code for classification, a Severity,
//              the operation that failed, free-form details and an optional cause.
//              It implements Unwrap, so errors.Is and errors.As reach the cause.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-19 v0.2.0: Robot control language codes, dropped stack capture
//
// Usage:
//
//	err := mdwerror.Wrap(parseErr, "program rejected").
//		WithCode(mdwerror.CodeRCLSyntax).
//		WithOperation("rcl.Parse").
//		WithDetail("file", path)
package error
