// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGenesisHashes confirms each network's cached GenesisHash matches the
// hash actually produced by hashing its GenesisBlock header, so the two
// stay in sync if either is ever edited independently.
func TestGenesisHashes(t *testing.T) {
	tests := []*Params{
		&MainNetParams,
		&TestNetParams,
		&RegressionNetParams,
	}

	for _, params := range tests {
		got := params.GenesisBlock.BlockHash()
		require.Truef(t, got.IsEqual(params.GenesisHash),
			"%s: genesis block hashes to %s, want %s", params.Name, got, params.GenesisHash)
	}
}

// TestCheckpointsWellFormed checks the invariants every network's
// checkpoint table must hold: heights strictly ascending, and if a height-0
// entry is present it names the genesis hash.
func TestCheckpointsWellFormed(t *testing.T) {
	tests := []*Params{
		&MainNetParams,
		&TestNetParams,
		&RegressionNetParams,
		&UnitTestParams,
	}

	for _, params := range tests {
		var prevHeight int64 = -1
		for _, cp := range params.Checkpoints {
			if cp.Height <= prevHeight {
				t.Errorf("%s: checkpoint heights not strictly ascending at height %d", params.Name, cp.Height)
			}
			prevHeight = cp.Height
			if cp.Height == 0 && !cp.Hash.IsEqual(params.GenesisHash) {
				t.Errorf("%s: height-0 checkpoint %s does not match genesis hash %s", params.Name, cp.Hash, params.GenesisHash)
			}
		}
	}
}

// TestConsensusRetargetInterval confirms RetargetInterval divides evenly
// and is at least one block for every registered network, since a
// fractional or zero interval would make the min-difficulty walk-back loop
// degenerate.
func TestConsensusRetargetInterval(t *testing.T) {
	tests := []*Params{
		&MainNetParams,
		&TestNetParams,
		&RegressionNetParams,
		&UnitTestParams,
	}

	for _, params := range tests {
		c := params.Consensus
		if c.TargetSpacing <= 0 {
			t.Fatalf("%s: TargetSpacing must be positive, got %d", params.Name, c.TargetSpacing)
		}
		if c.TargetTimespan%c.TargetSpacing != 0 {
			t.Errorf("%s: TargetTimespan %d is not an even multiple of TargetSpacing %d", params.Name, c.TargetTimespan, c.TargetSpacing)
		}
		if interval := c.RetargetInterval(); interval < 1 {
			t.Errorf("%s: RetargetInterval = %d, want >= 1", params.Name, interval)
		}
	}
}

// TestSubsidyAt checks the halving schedule halves on interval boundaries
// and eventually reaches zero rather than looping forever at 1.
func TestSubsidyAt(t *testing.T) {
	c := MainNetParams.Consensus
	const baseSubsidy = 50 * 1e8

	if got := c.SubsidyAt(0, baseSubsidy); got != baseSubsidy {
		t.Errorf("SubsidyAt(0) = %d, want %v", got, baseSubsidy)
	}
	if got := c.SubsidyAt(c.SubsidyHalvingInterval, baseSubsidy); got != baseSubsidy/2 {
		t.Errorf("SubsidyAt(interval) = %d, want %v", got, baseSubsidy/2)
	}
	if got := c.SubsidyAt(c.SubsidyHalvingInterval*64, baseSubsidy); got != 0 {
		t.Errorf("SubsidyAt(64*interval) = %d, want 0", got)
	}
}

// TestRegisterDuplicate confirms Register rejects a network that has
// already been registered by this package's init function.
func TestRegisterDuplicate(t *testing.T) {
	err := Register(&MainNetParams)
	if err != ErrDuplicateNet {
		t.Fatalf("Register(MainNetParams) = %v, want ErrDuplicateNet", err)
	}
}

// TestSelectParams confirms SelectParams/ActiveParams round trip for each
// registered network, and that ActiveParams panics before any selection.
func TestSelectParams(t *testing.T) {
	saved := activeParams
	defer func() { activeParams = saved }()

	activeParams = nil
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("ActiveParams did not panic before SelectParams was called")
			}
		}()
		ActiveParams()
	}()

	SelectParams(TestNet)
	if got := ActiveParams(); got != &TestNetParams {
		t.Fatalf("ActiveParams() = %p, want %p", got, &TestNetParams)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("SelectParams did not panic on an unregistered network")
			}
		}()
		SelectParams(Network(0xdeadbeef))
	}()
}

// TestParamsForNetwork confirms the lookup helper resolves every registered
// network without disturbing the process-wide active selection.
func TestParamsForNetwork(t *testing.T) {
	saved := activeParams
	defer func() { activeParams = saved }()

	SelectParams(MainNet)
	if _, ok := ParamsForNetwork(Network(0xdeadbeef)); ok {
		t.Fatal("ParamsForNetwork(unknown) returned ok = true")
	}
	params, ok := ParamsForNetwork(RegTest)
	if !ok || params != &RegressionNetParams {
		t.Fatalf("ParamsForNetwork(RegTest) = %p, %v, want %p, true", params, ok, &RegressionNetParams)
	}
	if ActiveParams() != &MainNetParams {
		t.Fatal("ParamsForNetwork altered the active selection")
	}
}

// TestSelectParamsFromCommandLine confirms the mutually exclusive flag pair
// is rejected without disturbing the active selection, and that each valid
// combination selects the expected network.
func TestSelectParamsFromCommandLine(t *testing.T) {
	saved := activeParams
	defer func() { activeParams = saved }()

	activeParams = &RegressionNetParams
	if err := SelectParamsFromCommandLine(true, true); err == nil {
		t.Fatal("SelectParamsFromCommandLine(true, true) = nil error, want non-nil")
	}
	if ActiveParams() != &RegressionNetParams {
		t.Fatal("SelectParamsFromCommandLine altered the active selection on error")
	}

	if err := SelectParamsFromCommandLine(true, false); err != nil {
		t.Fatalf("SelectParamsFromCommandLine(true, false): %v", err)
	}
	if ActiveParams() != &TestNetParams {
		t.Fatalf("ActiveParams() = %p, want %p", ActiveParams(), &TestNetParams)
	}

	if err := SelectParamsFromCommandLine(false, true); err != nil {
		t.Fatalf("SelectParamsFromCommandLine(false, true): %v", err)
	}
	if ActiveParams() != &RegressionNetParams {
		t.Fatalf("ActiveParams() = %p, want %p", ActiveParams(), &RegressionNetParams)
	}

	if err := SelectParamsFromCommandLine(false, false); err != nil {
		t.Fatalf("SelectParamsFromCommandLine(false, false): %v", err)
	}
	if ActiveParams() != &MainNetParams {
		t.Fatalf("ActiveParams() = %p, want %p", ActiveParams(), &MainNetParams)
	}
}
