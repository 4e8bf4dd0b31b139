// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"time"

	"github.com/jouleco/jouled/chainhash"
	"github.com/jouleco/jouled/chainwork"
	"github.com/jouleco/jouled/wire"
)

// Network identifies one of the networks a node can run on.
type Network uint32

// Networks supported by this implementation, matching the magic four-byte
// message-start sequences each one uses on the wire.
const (
	MainNet Network = 0x5579c0a5
	TestNet Network = 0x1273c00a
	RegTest Network = 0x5cc50ffa
	// UnitTest has its own magic, distinct from every other network's; it
	// is used only within this process and is never put on the wire.
	UnitTest Network = 0x756e6974
)

// String returns the Network in human-readable form.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "main"
	case TestNet:
		return "test"
	case RegTest:
		return "regtest"
	case UnitTest:
		return "unittest"
	default:
		return "unknown"
	}
}

// Checkpoint identifies a known good point in the block chain. Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int64
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed used to discover peers on first start.
type DNSSeed struct {
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// CheckpointData records statistics about the set of hardcoded checkpoints
// used to estimate initial block download progress before the chain tip is
// known. The values are taken from the most recently added checkpoint.
type CheckpointData struct {
	// TimeLastCheckpoint is the block time of the last checkpoint.
	TimeLastCheckpoint time.Time

	// TxsLastCheckpoint is the total number of transactions between the
	// genesis block and the last checkpoint, inclusive.
	TxsLastCheckpoint int64

	// TxsPerDay is the estimated number of transactions per day on the
	// network after the last checkpoint.
	TxsPerDay float64
}

// Consensus groups the parameters that govern block validation and reward
// issuance: everything a node needs to decide whether a block extends the
// best chain, independent of how it talks to peers.
type Consensus struct {
	// SubsidyHalvingInterval is the number of blocks between each halving
	// of the block subsidy.
	SubsidyHalvingInterval int64

	// EnforceBlockUpgradeMajority, RejectBlockOutdatedMajority, and
	// ToCheckBlockUpgradeMajority control the soft-fork version voting
	// super-majority thresholds carried over from the original chain.
	EnforceBlockUpgradeMajority int64
	RejectBlockOutdatedMajority int64
	ToCheckBlockUpgradeMajority int64

	// PowLimit is the highest allowed proof-of-work target for a block.
	PowLimit *chainwork.BigUint256

	// PowLimitBits is PowLimit in its compact ("nBits") representation.
	PowLimitBits uint32

	// TargetTimespan and TargetSpacing are the retargeting window and
	// desired block interval, both in seconds. TargetTimespan equal to
	// TargetSpacing means the difficulty is retargeted at every block.
	TargetTimespan int64
	TargetSpacing  int64

	// AllowMinDifficultyBlocks, when true, lets a block more than two
	// spacing intervals late use the minimum difficulty, the behavior
	// used on test networks to keep them mineable without dedicated
	// hash power.
	AllowMinDifficultyBlocks bool

	// MaxTipAge is the maximum number of seconds the tip's timestamp can
	// lag behind the current time before the node considers itself not
	// yet synced to the chain.
	MaxTipAge time.Duration
}

// RetargetInterval returns the number of blocks between difficulty
// retargets, derived the same way the original chain derives it:
// TargetTimespan divided by TargetSpacing.
func (c *Consensus) RetargetInterval() int64 {
	return c.TargetTimespan / c.TargetSpacing
}

// SubsidyAt returns the block subsidy, in the smallest currency unit, paid
// by the coinbase of the block at the given height. It halves every
// SubsidyHalvingInterval blocks and drops to zero once it would otherwise
// require shifting the base subsidy out of existence, matching the integer
// right-shift halving used throughout this chain's lineage.
func (c *Consensus) SubsidyAt(height int64, baseSubsidy int64) int64 {
	halvings := height / c.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return baseSubsidy >> uint(halvings)
}

// Params defines the parameters of a network: everything that must be
// agreed on chain-wide in order for nodes to interoperate, plus the
// peer-discovery and address-formatting details that vary by network.
type Params struct {
	// Name is the human-readable identifier for the network.
	Name string

	// Net is the network's magic four-byte message-start sequence.
	Net Network

	// DefaultPort is the default peer-to-peer TCP port for the network.
	DefaultPort string

	// DNSSeeds lists the DNS seeds used to discover peers on first start.
	DNSSeeds []DNSSeed

	// GenesisBlock is the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash, cached so callers don't
	// need to rehash the genesis block on every comparison.
	GenesisHash *chainhash.Hash

	// Consensus holds the block-validation and reward-issuance rules.
	Consensus Consensus

	// Checkpoints is the hardcoded list of known-good height/hash pairs
	// for this network, ordered by ascending height.
	Checkpoints []Checkpoint

	// CheckpointData carries the statistics used to estimate initial
	// block download progress relative to the checkpoint list above.
	CheckpointData CheckpointData

	// PubKeyHashAddrID is the byte used when encoding pay-to-pubkey-hash
	// addresses for this network.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the byte used when encoding pay-to-script-hash
	// addresses for this network.
	ScriptHashAddrID byte

	// PrivateKeyID is the byte used when encoding WIF private keys for
	// this network.
	PrivateKeyID byte

	// HDPublicKeyID and HDPrivateKeyID are the four-byte version
	// prefixes used when encoding extended public and private keys.
	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte

	// RequireStandard, when true, rejects non-standard transactions and
	// scripts from the mempool and relay.
	RequireStandard bool

	// MineBlocksOnDemand allows generating blocks without waiting for
	// the normal block interval, used by regression test networks.
	MineBlocksOnDemand bool

	// SkipPowCheck disables proof-of-work verification entirely. It exists
	// only for the unit test network, where blocks are constructed by hand
	// and are never expected to satisfy any real difficulty target.
	SkipPowCheck bool
}

var (
	// registeredNets tracks which networks have been registered to
	// detect accidental double registration.
	registeredNets = make(map[Network]struct{})

	// ErrDuplicateNet is returned by Register when the network has
	// already been registered, either by a previous call to Register or
	// because it is one of the default networks registered by this
	// package's init function.
	ErrDuplicateNet = errors.New("duplicate network")
)

// Register registers the network parameters for a network so that it can be
// looked up later. Network parameters should be registered as early as
// possible in a main package, generally from an init function.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error, which should only happen due to a programming error in
// this package's own init function.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("chaincfg: failed to register default network " + params.Name + ": " + err.Error())
	}
}
