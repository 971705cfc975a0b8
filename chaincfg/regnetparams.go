// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/decred/dcrd/math/uint256"
)

// preBlossomRegNetHalvingInterval is the pre-Blossom subsidy halving interval
// of the regression test network.
const preBlossomRegNetHalvingInterval = 144

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network.  The purpose of
// this network is primarily for unit tests and test harnesses, which is why it
// is the only network that supports the Update methods.
//
// Since this network is only intended for unit testing, its values are subject
// to change even if it would cause a hard fork.
func RegNetParams() *Params {
	// genesis is the first block of the regression test network.
	genesis := newGenesisBlock(time.Unix(1704067202, 0)) // 2024-01-01 00:00:02 +0000 UTC
	genesisHash := genesis.BlockHash()

	return &Params{
		Name:             "regtest",
		NetworkID:        RegNetID,
		Net:              [4]byte{0xc5, 0x9e, 0x4b, 0x2f},
		DefaultPort:      "39333",
		CurrencyUnits:    "RZCT",
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
			UpgradeSapling:    {ProtocolVersion: 170006, ActivationHeight: 1},
			UpgradeBlossom:    {ProtocolVersion: 170008, ActivationHeight: 1},
			UpgradeHeartwood:  {ProtocolVersion: 170010, ActivationHeight: 1},
			UpgradeCanopy:     {ProtocolVersion: 170012, ActivationHeight: 1},
			UpgradeNU5:        {ProtocolVersion: 170050, ActivationHeight: 1},
			UpgradeNU6:        {ProtocolVersion: 170110, ActivationHeight: 1},
			UpgradeNU6_1:      {ProtocolVersion: 170130, ActivationHeight: 1},
			UpgradeZFuture:    {ProtocolVersion: 0x7fffffff, ActivationHeight: NoActivationHeight},
		},

		// Subsidy parameters.
		SubsidySlowStartInterval:          0,
		PreBlossomSubsidyHalvingInterval:  preBlossomRegNetHalvingInterval,
		PostBlossomSubsidyHalvingInterval: preBlossomRegNetHalvingInterval * 2,
		FundingPeriodLength:               preBlossomRegNetHalvingInterval * 2 / FundingPeriodsPerHalving,

		MajorityEnforceBlockUpgrade: 750,
		MajorityRejectBlockOutdated: 950,
		MajorityWindow:              1000,

		// Proof of work parameters.  Any larger limit would allow the sum
		// of the averaging window targets to overflow.
		EquihashN:                              48,
		EquihashK:                              5,
		PowLimit:                               hexToUint256("0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f"),
		PowAveragingWindow:                     17,
		PowMaxAdjustDown:                       0,
		PowMaxAdjustUp:                         0,
		PreBlossomPowTargetSpacing:             preBlossomPowTargetSpacing,
		PostBlossomPowTargetSpacing:            postBlossomPowTargetSpacing,
		PowAllowMinDifficultyBlocksAfterHeight: 0,
		PowNoRetargeting:                       true,
		FutureTimestampSoftForkHeight:          NoActivationHeight,
		MinimumChainWork:                       hexToUint256("00"),

		// Coinbase outputs may be spent transparently and the shielded
		// value pools are not monitored unless enabled by a harness.
		CoinbaseMustBeShielded: false,
		ZIP209Enabled:          false,

		DefaultConsistencyChecks: true,
		MineBlocksOnDemand:       true,

		// Address encoding magics.  These are the same as the test network.
		PubKeyHashAddrID: [2]byte{0x0d, 0xdb}, // starts with Rc
		ScriptHashAddrID: [2]byte{0x0e, 0x00}, // starts with Rs
		PrivateKeyID:     0x01,

		HDPrivateKeyID: [4]byte{0x05, 0x62, 0x98, 0x19},
		HDPublicKeyID:  [4]byte{0x05, 0x62, 0xa3, 0x1f},

		SproutPaymentAddrID: [2]byte{0x14, 0x3c},
		SproutViewingKeyID:  [3]byte{0x04, 0x93, 0xd6},
		SproutSpendingKeyID: [2]byte{0x05, 0xff},

		SaplingPaymentAddrHRP:         "zregtestsapling",
		SaplingFullViewingKeyHRP:      "zviewregtestsapling",
		SaplingIncomingViewingKeyHRP:  "zivkregtestsapling",
		SaplingExtendedSpendKeyHRP:    "secret-extended-key-regtest",
		SaplingExtendedFullViewKeyHRP: "zxviewregtestsapling",
		TEXAddrHRP:                    "texregtest",
	}
}

// checkRegTest returns an error when the parameters are not for the
// regression test network.
func (p *Params) checkRegTest(what string) error {
	if !p.IsRegTest() {
		str := fmt.Sprintf("cannot %s on network %s", what, p.Name)
		return makeError(ErrNotRegTest, str)
	}
	return nil
}

// The Update methods below override the consensus schedule of the regression
// test network.  They are intended for test harnesses only and are unsafe to
// use on a live network.  They perform no locking, so they must only be
// called while no other goroutine is querying the parameters.  Checks that
// span several entries, such as upgrade ordering, are left to Validate so a
// harness may apply a series of overrides before validating the result.

// UpdateUpgradeActivation overrides the activation height of the provided
// upgrade.
func (p *Params) UpdateUpgradeActivation(id UpgradeID, activationHeight int64) error {
	if err := p.checkRegTest("update upgrade activation"); err != nil {
		return err
	}
	if id <= BaseSprout || id >= NumUpgrades {
		str := fmt.Sprintf("upgrade id %d cannot be updated", int(id))
		return makeError(ErrUnknownUpgrade, str)
	}
	if activationHeight < NoActivationHeight {
		str := fmt.Sprintf("invalid activation height %d for upgrade %s",
			activationHeight, id)
		return makeError(ErrInvalidHeight, str)
	}

	p.Upgrades[id].ActivationHeight = activationHeight
	log.Infof("%s: upgrade %s activation height set to %d", p.Name, id,
		activationHeight)
	return nil
}

// UpdateFundingStream replaces the funding stream with the provided
// identifier by one paying the provided addresses over the range
// [startHeight, endHeight).  An empty address list replaces it by a lockbox
// stream.
func (p *Params) UpdateFundingStream(id FundingStreamID, startHeight, endHeight int64, addresses []string) error {
	if err := p.checkRegTest("update funding stream"); err != nil {
		return err
	}
	if len(addresses) == 0 {
		return p.AddLockboxStream(id, startHeight, endHeight)
	}
	return p.AddFundingStream(id, startHeight, endHeight, addresses)
}

// UpdateLockboxStream replaces the funding stream with the provided
// identifier by one whose value accrues to the lockbox over the range
// [startHeight, endHeight).
func (p *Params) UpdateLockboxStream(id FundingStreamID, startHeight, endHeight int64) error {
	if err := p.checkRegTest("update lockbox stream"); err != nil {
		return err
	}
	return p.AddLockboxStream(id, startHeight, endHeight)
}

// UpdateOnetimeLockboxDisbursement replaces the one-time lockbox disbursement
// with the provided identifier.  The documented totals of the affected
// upgrades are adjusted by the change in amount.
func (p *Params) UpdateOnetimeLockboxDisbursement(id OnetimeDisbursementID, upgrade UpgradeID, amount int64, address string) error {
	if err := p.checkRegTest("update one-time lockbox disbursement"); err != nil {
		return err
	}
	ld := &OnetimeLockboxDisbursement{
		ID:      id,
		Upgrade: upgrade,
		Amount:  amount,
		Address: address,
	}
	if err := validateDisbursement(ld); err != nil {
		return err
	}

	if p.disbursementTotals == nil {
		p.disbursementTotals = make(map[UpgradeID]int64)
	}
	if old := p.disbursements[id]; old != nil {
		p.disbursementTotals[old.Upgrade] -= old.Amount
		if p.disbursementTotals[old.Upgrade] == 0 {
			delete(p.disbursementTotals, old.Upgrade)
		}
	}
	p.disbursements[id] = ld
	p.disbursementTotals[upgrade] += amount
	log.Infof("%s: one-time lockbox disbursement %s set to %d at upgrade %s",
		p.Name, id, amount, upgrade)
	return nil
}

// UpdateCoinbaseMustBeShielded requires coinbase outputs to be spent to a
// shielded address so harnesses can exercise the coinbase consensus rule.
func (p *Params) UpdateCoinbaseMustBeShielded() error {
	if err := p.checkRegTest("require shielded coinbase"); err != nil {
		return err
	}
	p.CoinbaseMustBeShielded = true
	log.Infof("%s: coinbase outputs must be shielded", p.Name)
	return nil
}

// UpdateZIP209Enabled enables shielded value pool monitoring so that blocks
// driving a pool balance negative are rejected.
func (p *Params) UpdateZIP209Enabled() error {
	if err := p.checkRegTest("enable shielded value pool monitoring"); err != nil {
		return err
	}
	p.ZIP209Enabled = true
	log.Infof("%s: shielded value pool monitoring enabled", p.Name)
	return nil
}

// UpdateProofOfWorkLimits overrides the difficulty adjustment limits, the
// proof of work limit and whether difficulty retargeting is disabled.
func (p *Params) UpdateProofOfWorkLimits(maxAdjustDown, maxAdjustUp int64, powLimit *uint256.Uint256, noRetargeting bool) error {
	if err := p.checkRegTest("update proof of work limits"); err != nil {
		return err
	}
	if maxAdjustDown < 0 || maxAdjustUp < 0 {
		str := fmt.Sprintf("difficulty adjustment limits %d%% down and %d%% "+
			"up must not be negative", maxAdjustDown, maxAdjustUp)
		return makeError(ErrPowLimit, str)
	}
	if powLimit == nil || powLimit.IsZero() {
		return makeError(ErrPowLimit, "proof of work limit is not set")
	}

	limit := *powLimit
	prevLimit := p.PowLimit
	p.PowLimit = &limit
	if err := p.validatePowLimit(); err != nil {
		p.PowLimit = prevLimit
		return err
	}

	p.PowMaxAdjustDown = maxAdjustDown
	p.PowMaxAdjustUp = maxAdjustUp
	p.PowNoRetargeting = noRetargeting
	log.Infof("%s: proof of work limit set to %s (max adjust down %d%%, up "+
		"%d%%, no retargeting %v)", p.Name, uint256Hex(&limit), maxAdjustDown,
		maxAdjustUp, noRetargeting)
	return nil
}
