// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/jouleco/jouled/chaincfg"
	"github.com/jouleco/jouled/chainhash"
)

// CheckpointConfirmations is the number of blocks before the end of the
// current best block chain that a good checkpoint candidate must be.
const CheckpointConfirmations = 4096

// CheckpointSet is a sorted, immutable table of known-good (height, hash)
// pairs for one network, used to reject reorgs that would orphan a
// checkpointed ancestor and to estimate initial block download progress.
// A zero-value CheckpointSet with a nil table behaves as "disabled": every
// membership check passes and there is nothing to look up.
type CheckpointSet struct {
	checkpoints []chaincfg.Checkpoint
	data        chaincfg.CheckpointData
	byHeight    map[int64]*chainhash.Hash
}

// NewCheckpointSet builds a CheckpointSet from a network's checkpoint table
// and checkpoint statistics, as carried on chaincfg.Params.
func NewCheckpointSet(checkpoints []chaincfg.Checkpoint, data chaincfg.CheckpointData) CheckpointSet {
	byHeight := make(map[int64]*chainhash.Hash, len(checkpoints))
	for i := range checkpoints {
		byHeight[checkpoints[i].Height] = checkpoints[i].Hash
	}
	return CheckpointSet{checkpoints: checkpoints, data: data, byHeight: byHeight}
}

// Enabled reports whether the set carries any checkpoints at all. A
// disabled set (the zero value, or one built from an empty table) never
// rejects anything.
func (c CheckpointSet) Enabled() bool {
	return len(c.checkpoints) > 0
}

// Contains reports whether the table has an entry at height.
func (c CheckpointSet) Contains(height int64) bool {
	_, ok := c.byHeight[height]
	return ok
}

// ExpectedHash returns the hash the table requires at height, and whether
// the table has an entry there at all.
func (c CheckpointSet) ExpectedHash(height int64) (*chainhash.Hash, bool) {
	hash, ok := c.byHeight[height]
	return hash, ok
}

// Check reports whether hash is acceptable at height: true when the set is
// disabled, when there is no entry for height, or when the entry matches
// hash exactly.
func (c CheckpointSet) Check(height int64, hash *chainhash.Hash) bool {
	if !c.Enabled() {
		return true
	}
	expected, ok := c.byHeight[height]
	if !ok {
		return true
	}
	if !expected.IsEqual(hash) {
		return false
	}
	log.Infof("Verified checkpoint at height %d/block %s", height, hash)
	return true
}

// TotalBlocksEstimate returns the height of the last checkpoint, or 0 if
// the set is disabled. It is a lower bound on chain length, used by callers
// that want a rough progress denominator before the real tip is known.
func (c CheckpointSet) TotalBlocksEstimate() int64 {
	if !c.Enabled() {
		return 0
	}
	return c.checkpoints[len(c.checkpoints)-1].Height
}

// LastCheckpointIn scans the table in descending height order and returns
// the block index for the first checkpoint whose hash is present in known,
// a map from block hash to HeaderCtx such as a caller's block index. It
// returns nil if the set is disabled or none of its checkpoints are known
// yet, which is expected for any chain shorter than the first checkpoint.
func (c CheckpointSet) LastCheckpointIn(known map[chainhash.Hash]HeaderCtx) HeaderCtx {
	if !c.Enabled() {
		return nil
	}
	for i := len(c.checkpoints) - 1; i >= 0; i-- {
		if node, ok := known[*c.checkpoints[i].Hash]; ok {
			return node
		}
	}
	return nil
}

// IsCandidate reports whether the block at height is deep enough behind
// bestHeight to be considered for addition to a future checkpoint table.
// This is a tooling heuristic for human review, not a consensus rule: it
// does not inspect the block's contents the way an online candidate scan
// over a live database would, since this package has no database of its
// own to query.
func (CheckpointSet) IsCandidate(height, bestHeight int64) bool {
	return height <= bestHeight-CheckpointConfirmations
}

// GuessVerificationProgress estimates, as a value in [0, 1], how far
// through initial block download a node at index is, using the checkpoint
// statistics and an assumed constant transaction rate past the last
// checkpoint. sigChecks weights the assumed cost of the post-checkpoint
// region higher, since blocks near the chain tip are not yet covered by
// any checkpoint and so need full signature validation. now is the current
// time, threaded through rather than read from the clock so the estimate
// is reproducible in tests.
func (c CheckpointSet) GuessVerificationProgress(index HeaderCtx, sigChecks bool, now time.Time) float64 {
	factor := 1.0
	if sigChecks {
		factor = 5.0
	}

	var before, after float64
	if index.ChainTx() <= c.data.TxsLastCheckpoint {
		before = float64(index.ChainTx())
		daysSince := now.Sub(c.data.TimeLastCheckpoint).Hours() / 24
		after = float64(c.data.TxsLastCheckpoint-index.ChainTx()) + daysSince*c.data.TxsPerDay*factor
	} else {
		before = float64(c.data.TxsLastCheckpoint) + float64(index.ChainTx()-c.data.TxsLastCheckpoint)*factor
		daysSince := now.Sub(time.Unix(index.Timestamp(), 0)).Hours() / 24
		after = daysSince * c.data.TxsPerDay * factor
	}

	if before+after == 0 {
		return 1.0
	}
	return before / (before + after)
}
