// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main Zcents network, which is intended for the transfer
// of monetary value, there also exists two standard networks: the public test
// network and the regression test network.  These networks are incompatible
// with each other and software should handle errors where input intended for
// one network is used on an application instance running on a different
// network.
//
// Beyond the scalar constants of a network, the parameters are a
// deterministic, height-indexed schedule.  Given a block height they answer
// which network upgrade is active, which funding streams are paid and to
// whom, which one-time lockbox disbursements are due at exactly that height
// and which founders reward address applies.  Every query is a pure function
// of the parameters and the height.  Queries made with heights that violate
// their contract panic with an Error so the violation can never be silently
// tolerated.
//
// Every call to a network constructor returns a new, independent instance:
//
//	params := chaincfg.MainNetParams()
//	for _, fs := range params.ActiveFundingStreams(height) {
//		recipient := params.RecipientAt(fs, height)
//		fmt.Println(fs.ID, recipient)
//	}
//
// The regression test network additionally supports the Update methods which
// override its schedule for test harnesses.  The result should be checked
// with Validate before use:
//
//	params := chaincfg.RegNetParams()
//	if err := params.UpdateUpgradeActivation(chaincfg.UpgradeNU6_1, 10); err != nil {
//		return err
//	}
//	if err := params.Validate(); err != nil {
//		return err
//	}
//
// If an application does not use one of the standard networks, a new Params
// struct may be created which defines the parameters for the non-standard
// network.  Funding streams and one-time lockbox disbursements are registered
// on such a struct with the Add methods, which reject malformed schedules.
package chaincfg
