// Copyright (c) 2017-2019 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// validateNetworks fully validates the parameters of every standard network.
// Any failure is an error in the hard-coded network data, so it panics.
func validateNetworks() {
	allParams := []*Params{MainNetParams(), TestNetParams(), RegNetParams()}
	for _, params := range allParams {
		if err := params.Validate(); err != nil {
			panic(fmt.Sprintf("invalid parameters for network %v: %v",
				params.Name, err))
		}
	}
}

func init() {
	validateNetworks()
}
