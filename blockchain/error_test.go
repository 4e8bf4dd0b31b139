// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "testing"

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrInvalidCompact, "ErrInvalidCompact"},
		{ErrHighHash, "ErrHighHash"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\ngot: %s\nwant: %s", i, result, test.want)
		}
	}
}

// TestRuleError confirms RuleError carries its ErrorCode through and
// formats as its description.
func TestRuleError(t *testing.T) {
	err := ruleError(ErrHighHash, "block hash exceeds target")
	if err.ErrorCode != ErrHighHash {
		t.Errorf("ErrorCode = %v, want %v", err.ErrorCode, ErrHighHash)
	}
	if err.Error() != "block hash exceeds target" {
		t.Errorf("Error() = %q, want %q", err.Error(), "block hash exceeds target")
	}
}

// TestAssertError confirms AssertError prefixes its message to distinguish
// it from an ordinary RuleError in logs.
func TestAssertError(t *testing.T) {
	err := AssertError("tip has no ancestor 159 blocks back")
	want := "assertion failed: tip has no ancestor 159 blocks back"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
