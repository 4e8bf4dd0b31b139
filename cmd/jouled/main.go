// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jouleco/jouled/blockchain"
	"github.com/jouleco/jouled/chaincfg"
)

var log btclog.Logger

// realMain is the real entry point for the daemon. It is kept separate from
// main so deferred cleanup always runs even when an error forces an early
// exit, which os.Exit would otherwise skip.
func realMain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	backendLogger := btclog.NewBackend(os.Stdout)
	log = backendLogger.Logger("MAIN")
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log.SetLevel(level)

	chaincfgLog := backendLogger.Logger("CHCF")
	chaincfgLog.SetLevel(level)
	chaincfg.UseLogger(chaincfgLog)

	blockchainLog := backendLogger.Logger("CHAN")
	blockchainLog.SetLevel(level)
	blockchain.UseLogger(blockchainLog)

	if err := chaincfg.SelectParamsFromCommandLine(cfg.TestNet, cfg.RegTest); err != nil {
		return err
	}

	params := chaincfg.ActiveParams()
	log.Infof("Selected network: %s", params.Name)
	log.Infof("Genesis hash: %s", params.GenesisHash)

	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
