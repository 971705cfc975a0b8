// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// TestNetParams returns the network parameters for the public Zcents test
// network.
func TestNetParams() *Params {
	// genesis is the first block of the test network.
	genesis := newGenesisBlock(time.Unix(1704067201, 0)) // 2024-01-01 00:00:01 +0000 UTC
	genesisHash := genesis.BlockHash()

	params := &Params{
		Name:             "testnet",
		NetworkID:        TestNetID,
		Net:              [4]byte{0x52, 0xc9, 0x81, 0x4a},
		DefaultPort:      "29333",
		CurrencyUnits:    "TZCT",
		SLIP0044CoinType: 1, // SLIP0044, Testnet (all coins)
		PruneAfterHeight: 1000,
		GenesisTimestamp: genesis.Timestamp,
		GenesisBlock:     genesis,
		GenesisHash:      genesisHash,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, &genesisHash},
		},
		LastCheckpointTime: genesis.Timestamp,

		Upgrades: [NumUpgrades]Upgrade{
			BaseSprout:        {ProtocolVersion: 170002, ActivationHeight: AlwaysActive},
			UpgradeTestDummy:  {ProtocolVersion: 170002, ActivationHeight: NoActivationHeight},
			UpgradeOverwinter: {ProtocolVersion: 170003, ActivationHeight: 1},
			UpgradeSapling:    {ProtocolVersion: 170007, ActivationHeight: 1},
			UpgradeBlossom:    {ProtocolVersion: 170008, ActivationHeight: 1},
			UpgradeHeartwood:  {ProtocolVersion: 170010, ActivationHeight: 1},
			UpgradeCanopy:     {ProtocolVersion: 170012, ActivationHeight: 1},
			UpgradeNU5:        {ProtocolVersion: 170050, ActivationHeight: 1},
			UpgradeNU6:        {ProtocolVersion: 170110, ActivationHeight: 1},
			UpgradeNU6_1:      {ProtocolVersion: 170130, ActivationHeight: 1},
			UpgradeZFuture:    {ProtocolVersion: 0x7fffffff, ActivationHeight: NoActivationHeight},
		},
		CoinbaseMustBeShielded: true,

		// Subsidy parameters.
		SubsidySlowStartInterval:          20000,
		PreBlossomSubsidyHalvingInterval:  preBlossomHalvingInterval,
		PostBlossomSubsidyHalvingInterval: preBlossomHalvingInterval * 2,
		FundingPeriodLength:               preBlossomHalvingInterval * 2 / FundingPeriodsPerHalving,

		MajorityEnforceBlockUpgrade: 51,
		MajorityRejectBlockOutdated: 75,
		MajorityWindow:              400,

		// Proof of work parameters.
		EquihashN:                              200,
		EquihashK:                              9,
		PowLimit:                               hexToUint256("07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowAveragingWindow:                     17,
		PowMaxAdjustDown:                       32,
		PowMaxAdjustUp:                         16,
		PreBlossomPowTargetSpacing:             preBlossomPowTargetSpacing,
		PostBlossomPowTargetSpacing:            postBlossomPowTargetSpacing,
		PowAllowMinDifficultyBlocksAfterHeight: 299187,
		MinimumChainWork:                       hexToUint256("00"),

		// The Sprout value pool starts empty with no checkpoint block.
		SproutValuePoolCheckpointHeight:  0,
		SproutValuePoolCheckpointBalance: 0,
		ZIP209Enabled:                    false,

		MiningRequiresPeers:           true,
		RequireStandard:               true,
		TestnetToBeDeprecatedFieldRPC: true,

		// Address encoding magics.
		PubKeyHashAddrID: [2]byte{0x0d, 0xdb}, // starts with Rc
		ScriptHashAddrID: [2]byte{0x0e, 0x00}, // starts with Rs
		PrivateKeyID:     0x01,

		HDPrivateKeyID: [4]byte{0x05, 0x62, 0x98, 0x19},
		HDPublicKeyID:  [4]byte{0x05, 0x62, 0xa3, 0x1f},

		SproutPaymentAddrID: [2]byte{0x14, 0x3c},
		SproutViewingKeyID:  [3]byte{0x04, 0x93, 0xd6},
		SproutSpendingKeyID: [2]byte{0x05, 0xff},

		SaplingPaymentAddrHRP:         "ztestsapling",
		SaplingFullViewingKeyHRP:      "zviewtestsapling",
		SaplingIncomingViewingKeyHRP:  "zivktestsapling",
		SaplingExtendedSpendKeyHRP:    "secret-extended-key-test",
		SaplingExtendedFullViewKeyHRP: "zxviewtestsapling",
		TEXAddrHRP:                    "textest",
	}

	// The tightened future timestamp rule activates six blocks after
	// Blossom so that seven minimum difficulty blocks fit within it.
	blossom := params.Upgrades[UpgradeBlossom].ActivationHeight
	params.FutureTimestampSoftForkHeight = blossom + 6

	return params
}
