// Package assert provides runtime assertions for internal invariants.
//
// Assertions panic on failure. They are compiled in by default and become
// no-ops when building with the assertions_disabled tag:
//
//	go build -tags assertions_disabled ./...
//
// Use them for conditions that indicate a bug in this module, never for
// validating caller input.
package assert
