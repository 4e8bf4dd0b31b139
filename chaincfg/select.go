// Copyright (c) 2010 Satoshi Nakamoto
// Copyright (c) 2009-2014 The Bitcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "errors"

// activeParams holds the network parameters selected by the most recent
// call to SelectParams for this process. It starts out nil: every process
// must select a network exactly once, early in startup, before any package
// that consults ActiveParams runs.
var activeParams *Params

// SelectParams sets the network parameters to be returned by ActiveParams
// for the remainder of the process's lifetime. It panics if net does not
// name one of the networks registered by this package.
func SelectParams(net Network) {
	switch net {
	case MainNet:
		activeParams = &MainNetParams
	case TestNet:
		activeParams = &TestNetParams
	case RegTest:
		activeParams = &RegressionNetParams
	case UnitTest:
		activeParams = &UnitTestParams
	default:
		panic("chaincfg: SelectParams called with unregistered network")
	}
	log.Debugf("Selected network parameters for %s", activeParams.Name)
}

// ActiveParams returns the network parameters selected by SelectParams. It
// panics if no network has been selected yet: every code path that needs
// consensus parameters is expected to run after startup has chosen a
// network, and a silent fallback to a default network would risk
// validating blocks against the wrong rules.
func ActiveParams() *Params {
	if activeParams == nil {
		panic("chaincfg: ActiveParams called before SelectParams")
	}
	return activeParams
}

// SelectParamsFromCommandLine chooses the active network from a pair of
// mutually exclusive flags, matching the -testnet/-regtest pair long
// carried by this lineage's daemon entry point. It returns an error without
// calling SelectParams if both flags are set, leaving the active selection
// untouched so a caller can report the error and exit before anything else
// runs.
func SelectParamsFromCommandLine(testNet, regTest bool) error {
	if testNet && regTest {
		return errors.New("chaincfg: the testnet and regtest params can't be used together -- choose one")
	}
	switch {
	case testNet:
		SelectParams(TestNet)
	case regTest:
		SelectParams(RegTest)
	default:
		SelectParams(MainNet)
	}
	return nil
}

// ParamsForNetwork returns the registered Params for net without affecting
// the process-wide active selection, for callers that need to inspect a
// network's parameters without switching to it.
func ParamsForNetwork(net Network) (*Params, bool) {
	switch net {
	case MainNet:
		return &MainNetParams, true
	case TestNet:
		return &TestNetParams, true
	case RegTest:
		return &RegressionNetParams, true
	case UnitTest:
		return &UnitTestParams, true
	default:
		return nil, false
	}
}
