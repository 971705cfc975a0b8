// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package netparams holds the network parameters selected for the running
// process.
//
// Consensus code receives a *chaincfg.Params explicitly.  This package exists
// only for the outermost composition boundary, such as a command's main
// function, that selects a network once at startup and hands it to every
// other component.
package netparams

import (
	"fmt"
	"sync/atomic"

	"github.com/The1Anubis/Zcents/chaincfg"
)

// current is the selected network.  It is nil until Select succeeds.
var current atomic.Pointer[chaincfg.Params]

// Adjustment modifies freshly constructed parameters before they are
// validated and published.  It is typically one of the regression test
// Update methods.
type Adjustment func(p *chaincfg.Params) error

// Select constructs the parameters for the network with the provided
// identifier, applies the adjustments in order, validates the result and
// publishes it as the current network.  Nothing is published when any step
// fails.
//
// Select must be called before any goroutine calls Current.
func Select(networkID string, adjustments ...Adjustment) (*chaincfg.Params, error) {
	params, err := chaincfg.ParamsForNetwork(networkID)
	if err != nil {
		return nil, err
	}
	for _, adjust := range adjustments {
		if err := adjust(params); err != nil {
			return nil, err
		}
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters for network %s: %w",
			params.Name, err)
	}

	if prev := current.Swap(params); prev != nil {
		log.Warnf("Replacing selected network %s with %s", prev.Name,
			params.Name)
	}
	log.Infof("Selected network %s", params.Name)
	return params, nil
}

// Current returns the selected network.
//
// It panics when no network has been selected.
func Current() *chaincfg.Params {
	params := current.Load()
	if params == nil {
		panic("netparams: no network has been selected")
	}
	return params
}

// IsSelected returns whether a network has been selected.
func IsSelected() bool {
	return current.Load() != nil
}

// Reset clears the selected network.  It is only intended for tests.
func Reset() {
	current.Store(nil)
}
