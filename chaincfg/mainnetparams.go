// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

const (
	// preBlossomHalvingInterval is the pre-Blossom subsidy halving interval
	// of the public networks.
	preBlossomHalvingInterval = 840000

	// preBlossomPowTargetSpacing and postBlossomPowTargetSpacing are the
	// target block spacings of every network.
	preBlossomPowTargetSpacing  = 150 * time.Second
	postBlossomPowTargetSpacing = 75 * time.Second
)

// MainNetParams returns the network parameters for the main Zcents network.
func MainNetParams() *Params {
	// genesis is the first block of the main network.
	genesis := newGenesisBlock(time.Unix(1704067200, 0)) // 2024-01-01 00:00:00 +0000 UTC
	genesisHash := genesis.BlockHash()

	return &Params{
		Name:             "mainnet",
		NetworkID:        MainNetID,
		Net:              [4]byte{0xa3, 0xf1, 0xc7, 0x2d},
		DefaultPort:      "19333",
		CurrencyUnits:    "ZCT",
		SLIP0044CoinType: 840,
		PruneAfterHeight: 100000,
		GenesisTimestamp: genesis.Timestamp,
		GenesisBlock:     genesis,
		GenesisHash:      genesisHash,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, &genesisHash},
		},
		LastCheckpointTime:         genesis.Timestamp,
		TransactionsLastCheckpoint: 0,
		TransactionsPerDay:         0,

		// Every upgrade through NU6.1 is active from the first block after
		// genesis.
		Upgrades: [NumUpgrades]Upgrade{
			BaseSprout:        {ProtocolVersion: 170002, ActivationHeight: AlwaysActive},
			UpgradeTestDummy:  {ProtocolVersion: 170002, ActivationHeight: NoActivationHeight},
			UpgradeOverwinter: {ProtocolVersion: 170005, ActivationHeight: 1},
			UpgradeSapling:    {ProtocolVersion: 170007, ActivationHeight: 1},
			UpgradeBlossom:    {ProtocolVersion: 170009, ActivationHeight: 1},
			UpgradeHeartwood:  {ProtocolVersion: 170011, ActivationHeight: 1},
			UpgradeCanopy:     {ProtocolVersion: 170013, ActivationHeight: 1},
			UpgradeNU5:        {ProtocolVersion: 170100, ActivationHeight: 1},
			UpgradeNU6:        {ProtocolVersion: 170120, ActivationHeight: 1},
			UpgradeNU6_1:      {ProtocolVersion: 170140, ActivationHeight: 1},
			UpgradeZFuture:    {ProtocolVersion: 0x7fffffff, ActivationHeight: NoActivationHeight},
		},
		CoinbaseMustBeShielded: true,

		// Subsidy parameters.
		SubsidySlowStartInterval:          20000,
		PreBlossomSubsidyHalvingInterval:  preBlossomHalvingInterval,
		PostBlossomSubsidyHalvingInterval: preBlossomHalvingInterval * 2,
		FundingPeriodLength:               preBlossomHalvingInterval * 2 / FundingPeriodsPerHalving,

		MajorityEnforceBlockUpgrade: 750,
		MajorityRejectBlockOutdated: 950,
		MajorityWindow:              4000,

		// Proof of work parameters.
		EquihashN:                              200,
		EquihashK:                              9,
		PowLimit:                               hexToUint256("0007ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowAveragingWindow:                     17,
		PowMaxAdjustDown:                       32,
		PowMaxAdjustUp:                         16,
		PreBlossomPowTargetSpacing:             preBlossomPowTargetSpacing,
		PostBlossomPowTargetSpacing:            postBlossomPowTargetSpacing,
		PowAllowMinDifficultyBlocksAfterHeight: NoActivationHeight,
		FutureTimestampSoftForkHeight:          NoActivationHeight,
		MinimumChainWork:                       hexToUint256("00"),

		// The founders reward is disabled and no funding streams or one-time
		// lockbox disbursements are registered.
		FoundersRewardAddresses: nil,

		// The Sprout value pool starts empty with no checkpoint block.
		SproutValuePoolCheckpointHeight:  0,
		SproutValuePoolCheckpointBalance: 0,
		SproutValuePoolCheckpointBlock:   nil,
		ZIP209Enabled:                    false,

		MiningRequiresPeers: true,
		RequireStandard:     true,

		// Address encoding magics.
		PubKeyHashAddrID: [2]byte{0x12, 0x5c}, // starts with Zc
		ScriptHashAddrID: [2]byte{0x12, 0x81}, // starts with Zs
		PrivateKeyID:     0x0d,

		HDPrivateKeyID: [4]byte{0x03, 0x5a, 0x31, 0x2b},
		HDPublicKeyID:  [4]byte{0x03, 0x5a, 0x3c, 0x2f},

		SproutPaymentAddrID: [2]byte{0x0c, 0xc8}, // starts with Za
		SproutViewingKeyID:  [3]byte{0x02, 0xe3, 0x78},
		SproutSpendingKeyID: [2]byte{0x03, 0xc8},

		SaplingPaymentAddrHRP:         "zs",
		SaplingFullViewingKeyHRP:      "zviews",
		SaplingIncomingViewingKeyHRP:  "zivks",
		SaplingExtendedSpendKeyHRP:    "secret-extended-key-main",
		SaplingExtendedFullViewKeyHRP: "zxviews",
		TEXAddrHRP:                    "tex",
	}
}
