// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

const defaultLogLevel = "info"

// config defines the command-line options this daemon understands. It is
// intentionally minimal: the node's consensus behavior is otherwise fixed
// by the selected network's chaincfg.Params, not by flags.
type config struct {
	TestNet    bool   `long:"testnet" description:"Use the test network"`
	RegTest    bool   `long:"regtest" description:"Use the regression test network"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}" default:"info"`
}

// loadConfig parses the command line into a config, returning an error if
// the testnet and regtest flags were both set or the flag parser itself
// failed.
func loadConfig() (*config, error) {
	cfg := config{DebugLevel: defaultLogLevel}

	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if cfg.TestNet && cfg.RegTest {
		return nil, fmt.Errorf("the testnet and regtest params can't be used together -- choose one of the two")
	}

	return &cfg, nil
}
