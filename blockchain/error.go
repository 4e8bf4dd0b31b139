// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// AssertError identifies an error that indicates an internal code
// consistency issue and should be treated as a critical and unrecoverable
// error.
type AssertError string

// Error returns the assertion error as a human-readable string and
// satisfies the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrInvalidCompact indicates a compact ("nBits") value decoded to a
	// negative value, an overflowed value, a zero target, or a target
	// above the network's proof-of-work limit.
	ErrInvalidCompact ErrorCode = iota

	// ErrHighHash indicates the block hash exceeded the target difficulty
	// encoded in its nBits.
	ErrHighHash
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidCompact: "ErrInvalidCompact",
	ErrHighHash:       "ErrHighHash",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block header failed due to one of the proof-of-work
// validation rules. The caller can use type assertions to determine if a
// failure was specifically due to a rule violation and access the
// ErrorCode field to ascertain the specific reason for it.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints a human-readable error.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
