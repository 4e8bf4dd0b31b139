// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/jouleco/jouled/chainhash"
	"github.com/jouleco/jouled/chainwork"
	"github.com/jouleco/jouled/wire"
)

// genesisCoinbaseTx is the coinbase transaction for the genesis block shared
// by the main, test, and regression test networks. Its output cannot be
// spent, since it was never recorded in any network's unspent output set.
var genesisCoinbaseTx = wire.MsgTx{
	Version: 1,
	TxIn: []*wire.TxIn{
		{
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: wire.MaxPrevOutIndex,
			},
			SignatureScript: []byte{
				/* OP_PUSHBYTES(4) 486604799 as a CScriptNum */
				0x04, 0xff, 0xff, 0x00, 0x1d,
				/* OP_PUSHBYTES(1) extra nonce */
				0x01, 0x04,
				/* OP_PUSHBYTES(67) pszTimestamp */
				0x43,
				0x53, 0x6c, 0x61, 0x73, 0x68, 0x64, 0x6f, 0x74,
				0x20, 0x32, 0x32, 0x20, 0x53, 0x65, 0x70, 0x20,
				0x32, 0x30, 0x31, 0x33, 0x20, 0x2d, 0x20, 0x52,
				0x53, 0x41, 0x20, 0x57, 0x61, 0x72, 0x6e, 0x73,
				0x20, 0x44, 0x65, 0x76, 0x65, 0x6c, 0x6f, 0x70,
				0x65, 0x72, 0x73, 0x20, 0x4e, 0x6f, 0x74, 0x20,
				0x54, 0x6f, 0x20, 0x55, 0x73, 0x65, 0x20, 0x52,
				0x53, 0x41, 0x20, 0x50, 0x72, 0x6f, 0x64, 0x75,
				0x63, 0x74, 0x73,
			},
			Sequence: wire.MaxPrevOutIndex,
		},
	},
	TxOut: []*wire.TxOut{
		{
			Value: 0,
			PkScript: []byte{
				/* OP_PUSHBYTES(65) uncompressed pubkey */
				0x41,
				0x04, 0x67, 0x8a, 0xfd, 0xb0, 0xfe, 0x55, 0x48,
				0x27, 0x19, 0x67, 0xf1, 0xa6, 0x71, 0x30, 0xb7,
				0x10, 0x5c, 0xd6, 0xa8, 0x28, 0xe0, 0x39, 0x09,
				0xa6, 0x79, 0x62, 0xe0, 0xea, 0x1f, 0x61, 0xde,
				0xb6, 0x49, 0xf6, 0xbc, 0x3f, 0x4c, 0xef, 0x38,
				0xc4, 0xf3, 0x55, 0x04, 0xe5, 0x1e, 0xc1, 0x12,
				0xde, 0x5c, 0x38, 0x4d, 0xf7, 0xba, 0x0b, 0x8d,
				0x57, 0x8a, 0x4c, 0x70, 0x2b, 0x6b, 0xf1, 0x1d,
				0x5f,
				/* OP_CHECKSIG */
				0xac,
			},
		},
	},
	LockTime: 0,
}

// genesisMerkleRoot is the merkle root of the genesis block's single
// coinbase transaction, shared by the main, test, and regression test
// networks.
var genesisMerkleRoot = genesisCoinbaseTx.TxHash()

// genesisBlock is the genesis block for the main network.
var genesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: genesisMerkleRoot,
		Timestamp:  time.Unix(1379833106, 0),
		Bits:       0x1e0fffff,
		Nonce:      2092237480,
	},
	Transactions: []*wire.MsgTx{&genesisCoinbaseTx},
}

// genesisHash is the hash of the first block in the block chain for the
// main network.
var genesisHash = genesisBlock.BlockHash()

// testNetGenesisBlock is the genesis block for the test network. It reuses
// the main network's coinbase and merkle root but has its own, earlier
// timestamp and nonce.
var testNetGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: genesisMerkleRoot,
		Timestamp:  time.Unix(1379797212, 0),
		Bits:       0x1e0fffff,
		Nonce:      415605766,
	},
	Transactions: []*wire.MsgTx{&genesisCoinbaseTx},
}

var testNetGenesisHash = testNetGenesisBlock.BlockHash()

// regTestGenesisBlock is the genesis block for the regression test network.
var regTestGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: genesisMerkleRoot,
		Timestamp:  time.Unix(1296688602, 0),
		Bits:       0x207fffff,
		Nonce:      3,
	},
	Transactions: []*wire.MsgTx{&genesisCoinbaseTx},
}

var regTestGenesisHash = regTestGenesisBlock.BlockHash()

// mainPowLimit is the highest proof-of-work target a main or test network
// block can have: 2^236 - 1.
func mainPowLimit() *chainwork.BigUint256 {
	limit := new(chainwork.BigUint256).Lsh(chainwork.NewFromUint64(1), 236)
	return limit.Sub(limit, chainwork.NewFromUint64(1))
}

// regTestPowLimit is the highest proof-of-work target a regression test
// network block can have: 2^255 - 1.
func regTestPowLimit() *chainwork.BigUint256 {
	limit := new(chainwork.BigUint256).Lsh(chainwork.NewFromUint64(1), 255)
	return limit.Sub(limit, chainwork.NewFromUint64(1))
}

func mustHash(s string) *chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic("chaincfg: invalid hardcoded hash " + s + ": " + err.Error())
	}
	return h
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:        "main",
	Net:         MainNet,
	DefaultPort: "26789",
	DNSSeeds: []DNSSeed{
		{Host: "seed1.jouleco.in"},
		{Host: "seed2.jouleco.in"},
		{Host: "seed3.jouleco.in"},
		{Host: "seed4.jouleco.in"},
		{Host: "joulecoin1.chickenkiller.com"},
		{Host: "joulecoin2.crabdance.com"},
	},

	GenesisBlock: &genesisBlock,
	GenesisHash:  &genesisHash,

	Consensus: Consensus{
		SubsidyHalvingInterval:      1401600, // 2 years at 45s blocks
		EnforceBlockUpgradeMajority: 7500,
		RejectBlockOutdatedMajority: 9500,
		ToCheckBlockUpgradeMajority: 10000,
		PowLimit:                    mainPowLimit(),
		PowLimitBits:                0x1e0fffff,
		TargetTimespan:              45,
		TargetSpacing:               45,
		AllowMinDifficultyBlocks:    false,
		MaxTipAge:                   24 * time.Hour,
	},

	Checkpoints: []Checkpoint{
		{0, mustHash("0000077e5cce889f0920029bf89e8ecb16f7be38e1019c3e21c26d4687ce11f5")},
		{21998, mustHash("000000000029b7b1ea497dd917ba5bb78b8453759acc145918c6446205fd7e49")},
		{34124, mustHash("000000000019c6d8dbd8f693077b5b09dc0df722f4b548ca6cbc9e712aa94935")},
		{68073, mustHash("00000000000ed8b4432909814f2f0a6a699625833d0e4b88fe69a5807f116ae0")},
		{90016, mustHash("0000000000156c5c7e98211d60c1bd644ca6cfb0b8ef8b484adc663708d64e5b")},
		{189383, mustHash("0000000000013e11c889a3d1ebb0d1833227ffa7fb6d06f7ce42e8d8e1fb7dce")},
		{245624, mustHash("00000000000142ce3a43b4304ab6f886c6fd9a806d83a72c344b24a7d24da7fc")},
		{328190, mustHash("000000000000f2f362d4f78cad2fa5c03452b90213a29b6be9c94827ce73e1b3")},
		{386194, mustHash("000000000001bf145fa37e30dea68857ea0248548f71f02d413ec9a1dd5db3f5")},
		{531401, mustHash("000000000000bd31475b4f382103a3f62202dbaf680decb86fa5f8193feda765")},
		{572400, mustHash("000000000001d794102460c50af76523672953ca17797624a0c7d6076f7d0023")},
		{661339, mustHash("000000000000f17fbee03e58700c625b4a1eca8d41fca6aef505c4d928a88aa4")},
		{957592, mustHash("0000000000006461aa6dc976cb61e010b4b794e6ce904146ce3f781df0eeaf60")},
		{1082978, mustHash("000000000000a55c12da9d532c5c19ac53ad7d25b4b67aca77adad8191752e6e")},
		{1150502, mustHash("000000000000660efa747fee365969d424965bfdebbc6feb034863608241e2c3")},
		{1908153, mustHash("00000000000148056ebc887282146af6e0cb267ecd83bb71105afddc5706f066")},
		{2600671, mustHash("0000000000004c3bfb23dca6507f29805f4e42247542e433fdae49d8d5ca6bed")},
	},
	CheckpointData: CheckpointData{
		TimeLastCheckpoint: time.Unix(1495074242, 0),
		TxsLastCheckpoint:  3142416,
		TxsPerDay:          1920,
	},

	PubKeyHashAddrID: 43,
	ScriptHashAddrID: 11,
	PrivateKeyID:     143,
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xB2, 0x1E},
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xAD, 0xE4},

	RequireStandard:    true,
	MineBlocksOnDemand: false,
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:        "test",
	Net:         TestNet,
	DefaultPort: "26783",
	DNSSeeds: []DNSSeed{
		{Host: "testseed1.jouleco.in"},
	},

	GenesisBlock: &testNetGenesisBlock,
	GenesisHash:  &testNetGenesisHash,

	Consensus: Consensus{
		SubsidyHalvingInterval:      1401600,
		EnforceBlockUpgradeMajority: 51,
		RejectBlockOutdatedMajority: 75,
		ToCheckBlockUpgradeMajority: 100,
		PowLimit:                    mainPowLimit(),
		PowLimitBits:                0x1e0fffff,
		TargetTimespan:              14 * 24 * 60 * 60,
		TargetSpacing:               10 * 60,
		AllowMinDifficultyBlocks:    true,
		MaxTipAge:                   time.Duration(1<<31-1) * time.Second,
	},

	Checkpoints: []Checkpoint{
		{0, mustHash("00000b82bf616429efb8ef55f10da775bf4a6ea54e72ce9c3d6510dd8af1616e")},
	},
	CheckpointData: CheckpointData{
		TimeLastCheckpoint: time.Unix(1379797212, 0),
		TxsLastCheckpoint:  0,
		TxsPerDay:          1920,
	},

	PubKeyHashAddrID: 83,
	ScriptHashAddrID: 13,
	PrivateKeyID:     212,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},

	RequireStandard:    false,
	MineBlocksOnDemand: false,
}

// RegressionNetParams defines the network parameters for the regression
// test network, used for local consensus-rule testing without connecting
// to any real network.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         RegTest,
	DefaultPort: "18444",
	DNSSeeds:    nil,

	GenesisBlock: &regTestGenesisBlock,
	GenesisHash:  &regTestGenesisHash,

	Consensus: Consensus{
		SubsidyHalvingInterval:      150,
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		PowLimit:                    regTestPowLimit(),
		PowLimitBits:                0x207fffff,
		TargetTimespan:              14 * 24 * 60 * 60,
		TargetSpacing:               10 * 60,
		AllowMinDifficultyBlocks:    true,
		MaxTipAge:                   24 * time.Hour,
	},

	Checkpoints: nil,

	PubKeyHashAddrID: 83,
	ScriptHashAddrID: 13,
	PrivateKeyID:     212,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},

	RequireStandard:    false,
	MineBlocksOnDemand: true,
}

// UnitTestParams defines network parameters used exclusively for this
// module's own tests. It shares the main network's genesis block and
// checkpoints but isolates itself under a distinct magic so it can be
// registered alongside the real networks without colliding.
var UnitTestParams = Params{
	Name:        "unittest",
	Net:         UnitTest,
	DefaultPort: "18445",

	GenesisBlock: &genesisBlock,
	GenesisHash:  &genesisHash,

	Consensus: Consensus{
		SubsidyHalvingInterval:      1401600,
		EnforceBlockUpgradeMajority: 7500,
		RejectBlockOutdatedMajority: 9500,
		ToCheckBlockUpgradeMajority: 10000,
		PowLimit:                    mainPowLimit(),
		PowLimitBits:                0x1e0fffff,
		TargetTimespan:              45,
		TargetSpacing:               45,
		AllowMinDifficultyBlocks:    false,
		MaxTipAge:                   24 * time.Hour,
	},

	Checkpoints:    MainNetParams.Checkpoints,
	CheckpointData: MainNetParams.CheckpointData,

	PubKeyHashAddrID: 43,
	ScriptHashAddrID: 11,
	PrivateKeyID:     143,
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xB2, 0x1E},
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xAD, 0xE4},

	RequireStandard:    false,
	MineBlocksOnDemand: true,
	SkipPowCheck:       true,
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
	mustRegister(&UnitTestParams)
}
