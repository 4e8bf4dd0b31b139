// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/jouleco/jouled/chaincfg"
	"github.com/jouleco/jouled/chainhash"
	"github.com/jouleco/jouled/chainwork"
)

// Regime retargeting constants. These are fixed properties of the
// retargeting algorithm itself, not configuration: every node on every
// network that has passed height H2 or H3 must use the averaging window and
// clamp percentages below, regardless of what its chaincfg.Params says about
// its normal target spacing. Only the AllowMinDifficultyBlocks special case
// below consults the network's own Consensus fields.
const (
	// regimeOneAveragingBlocks is the averaging window used below height
	// H2.
	regimeOneAveragingBlocks = 160

	// regimeTwoAveragingBlocks and regimeThreeAveragingBlocks are the
	// averaging window used from H2 onward.
	regimeTwoAveragingBlocks   = 8
	regimeThreeAveragingBlocks = 8

	// H2 and H3 are the heights at which the retargeting algorithm
	// switches regimes. They are hard constants with no transition
	// smoothing.
	H2 int64 = 32000
	H3 int64 = 90000

	// maxUpPercent and maxDownPercent bound how far the actual timespan
	// observed over the averaging window can pull the next target away
	// from the previous one, expressed as a percentage of the averaging
	// window's target timespan.
	regimeOneMaxDownPercent   = 10
	regimeOneMaxUpPercent     = 1
	regimeTwoMaxDownPercent   = 1
	regimeTwoMaxUpPercent     = 1
	regimeThreeMaxDownPercent = 3
	regimeThreeMaxUpPercent   = 1

	// targetSpacing is the block spacing, in seconds, from which the
	// regime averaging timespans and clamp bounds are computed.
	targetSpacing int64 = 45
)

// regimeParams bundles the averaging window and clamp bounds for one of the
// three retargeting regimes, derived from the constants above and a block
// spacing.
type regimeParams struct {
	averagingBlocks int64
	minActual       int64
	maxActual       int64
}

// selectRegime returns the retargeting regime that applies to the block at
// nextHeight, given the block spacing in seconds.
func selectRegime(nextHeight, targetSpacing int64) regimeParams {
	var averagingBlocks, maxDownPercent, maxUpPercent int64
	switch {
	case nextHeight < H2:
		averagingBlocks, maxDownPercent, maxUpPercent = regimeOneAveragingBlocks, regimeOneMaxDownPercent, regimeOneMaxUpPercent
	case nextHeight < H3:
		averagingBlocks, maxDownPercent, maxUpPercent = regimeTwoAveragingBlocks, regimeTwoMaxDownPercent, regimeTwoMaxUpPercent
	default:
		averagingBlocks, maxDownPercent, maxUpPercent = regimeThreeAveragingBlocks, regimeThreeMaxDownPercent, regimeThreeMaxUpPercent
	}

	averagingTargetTimespan := averagingBlocks * targetSpacing
	return regimeParams{
		averagingBlocks: averagingBlocks,
		minActual:       averagingTargetTimespan * (100 - maxUpPercent) / 100,
		maxActual:       averagingTargetTimespan * (100 + maxDownPercent) / 100,
	}
}

// maxAveragingWindow is the largest averaging window across all three
// regimes. A chain shorter than this has no history to retarget from.
const maxAveragingWindow = regimeOneAveragingBlocks

// clampInt64 bounds v to the inclusive range [lo, hi].
func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DifficultyEngine computes the proof-of-work target a block must meet and
// the amount of chainwork a block contributes, given a chain's header
// history and its network's consensus parameters. It carries no state of
// its own; every method takes the chain and parameters it needs explicitly,
// so a single DifficultyEngine value can be shared and called concurrently
// from any number of goroutines.
type DifficultyEngine struct{}

// NextWorkRequired calculates the compact difficulty target required for
// the block that extends tip, given the block's proposed timestamp and the
// network's parameters. tip is nil when there is no previous block, that is,
// for the genesis block itself.
func (DifficultyEngine) NextWorkRequired(tip HeaderCtx, newBlockTime int64, params *chaincfg.Params) uint32 {
	consensus := &params.Consensus

	if tip == nil {
		return consensus.PowLimitBits
	}

	nextHeight := tip.Height() + 1
	if nextHeight < maxAveragingWindow {
		return consensus.PowLimitBits
	}

	if consensus.AllowMinDifficultyBlocks {
		if newBlockTime > tip.Timestamp()+2*consensus.TargetSpacing {
			return consensus.PowLimitBits
		}
		return findLastNonMinDifficultyBits(tip, consensus)
	}

	regime := selectRegime(nextHeight, targetSpacing)

	first := tip.RelativeAncestorCtx(regime.averagingBlocks - 1)
	if first == nil {
		// nextHeight >= maxAveragingWindow already guaranteed a chain
		// this long exists; a tip whose ancestor walk runs out before
		// that is an inconsistent block index, not a retargeting case.
		panic(AssertError(fmt.Sprintf(
			"NextWorkRequired: tip at height %d has no ancestor %d blocks back",
			tip.Height(), regime.averagingBlocks-1)))
	}

	actualTimespan := tip.Timestamp() - first.Timestamp()
	adjustedTimespan := clampInt64(actualTimespan, regime.minActual, regime.maxActual)

	oldTarget, _, _ := chainwork.DecodeCompact(chainwork.CompactTarget(tip.Bits()))
	averagingTargetTimespan := regime.averagingBlocks * targetSpacing
	newTarget := new(chainwork.BigUint256).MulDivUint64(oldTarget, uint64(adjustedTimespan), uint64(averagingTargetTimespan))

	if newTarget.Cmp(consensus.PowLimit) > 0 {
		newTarget.Set(consensus.PowLimit)
	}

	newBits := chainwork.EncodeCompact(newTarget, false)
	log.Debugf("Difficulty retarget at block height %d", nextHeight)
	log.Debugf("Old target %08x, new target %08x", tip.Bits(), uint32(newBits))
	log.Debugf("Actual timespan %d, adjusted timespan %d, averaging target timespan %d",
		actualTimespan, adjustedTimespan, averagingTargetTimespan)

	return uint32(newBits)
}

// findLastNonMinDifficultyBits walks back from tip to the most recent block
// that was not given the special minimum-difficulty exemption, returning
// its bits. The walk stops at any block whose height is a multiple of the
// network's RetargetInterval. Where that interval is 1 (UnitTestParams, or
// MainNetParams with AllowMinDifficultyBlocks turned on) every height is a
// multiple, so the loop takes no step and the tip's own bits are returned.
// TestNetParams and RegressionNetParams derive an interval of 2016 from
// their TargetTimespan and TargetSpacing, so there the walk can step back
// through a run of exempt blocks.
func findLastNonMinDifficultyBits(tip HeaderCtx, consensus *chaincfg.Consensus) uint32 {
	interval := consensus.RetargetInterval()

	iter := tip
	for iter != nil && iter.Height()%interval != 0 && iter.Bits() == consensus.PowLimitBits {
		iter = iter.Parent()
	}
	if iter == nil {
		return consensus.PowLimitBits
	}
	return iter.Bits()
}

// HashToBig converts a chainhash.Hash into a BigUint256 for numeric
// comparison against a decoded target. A hash is stored as little-endian
// bytes (the reverse of its displayed hex order), so its bytes are read
// directly as a little-endian number.
func HashToBig(hash chainhash.Hash) *chainwork.BigUint256 {
	return new(chainwork.BigUint256).SetLittleEndianBytes(hash[:])
}

// CheckProofOfWork reports whether hash satisfies the target encoded by
// nBits, and that nBits itself is a validly encoded, in-range target for
// the network described by params. It always returns true if params has
// SkipPowCheck set, since blocks on the unit test network are constructed
// by hand and are never expected to satisfy a real difficulty target.
func (DifficultyEngine) CheckProofOfWork(hash chainhash.Hash, nBits uint32, params *chaincfg.Params) bool {
	if params.SkipPowCheck {
		return true
	}

	target, negative, overflow := chainwork.DecodeCompact(chainwork.CompactTarget(nBits))
	if negative || overflow || target.IsZero() {
		err := ruleError(ErrInvalidCompact, fmt.Sprintf(
			"block target %08x is negative, overflowed, or zero", nBits))
		log.Debugf("CheckProofOfWork: %v", err)
		return false
	}
	if target.Cmp(params.Consensus.PowLimit) > 0 {
		err := ruleError(ErrInvalidCompact, fmt.Sprintf(
			"block target %08x is higher than max of %08x", nBits, params.Consensus.PowLimitBits))
		log.Debugf("CheckProofOfWork: %v", err)
		return false
	}

	hashNum := HashToBig(hash)
	if hashNum.Cmp(target) > 0 {
		err := ruleError(ErrHighHash, fmt.Sprintf(
			"block hash %s is higher than expected max of %s", hashNum, target))
		log.Debugf("CheckProofOfWork: %v", err)
		return false
	}
	return true
}

// BlockProof returns the amount of work a block with index's bits
// contributes to the chain's cumulative proof-of-work, computed as
// floor(2^256 / (target+1)). An invalidly encoded target contributes zero;
// callers summing chainwork across a chain must treat that as "no
// contribution," not as an error, since BlockProof has no way to report one.
func (DifficultyEngine) BlockProof(index HeaderCtx) *chainwork.BigUint256 {
	target, negative, overflow := chainwork.DecodeCompact(chainwork.CompactTarget(index.Bits()))
	if negative || overflow || target.IsZero() {
		return new(chainwork.BigUint256)
	}

	denom := new(chainwork.BigUint256).Add(target, chainwork.NewFromUint64(1))
	if denom.IsZero() {
		// target was the all-ones value; (target+1) wrapped to zero.
		return new(chainwork.BigUint256)
	}

	work := new(chainwork.BigUint256).Not(target)
	work, _ = work.DivMod(work, denom)
	return work.Add(work, chainwork.NewFromUint64(1))
}
