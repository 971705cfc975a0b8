// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/math/uint256"
)

// These constants are the network identifiers accepted by ParamsForNetwork.
const (
	MainNetID = "main"
	TestNetID = "test"
	RegNetID  = "regtest"
)

// Checkpoint identifies a known good point in the block chain.
type Checkpoint struct {
	Height int64
	Hash   *chainhash.Hash
}

// Params defines a Zcents network by its parameters.  These parameters are
// the consensus schedule of the network (upgrade activations, funding streams,
// one-time lockbox disbursements and the founders reward) together with the
// scalar constants applications use to differentiate networks as well as
// addresses and keys for one network from those intended for use on another.
//
// The parameters of the main and test networks must be treated as read only
// once constructed.  Only the regression test network supports the Update
// methods.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// NetworkID is the identifier used to select the network.
	NetworkID string

	// Net defines the magic bytes used to identify the network.
	Net [4]byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// CurrencyUnits is the ticker of the network currency.
	CurrencyUnits string

	// SLIP0044CoinType is the SLIP0044 coin type used in HD derivation
	// paths.
	SLIP0044CoinType uint32

	// PruneAfterHeight is the height below which block data may be pruned.
	PruneAfterHeight int64

	// GenesisTimestamp is the timestamp of the genesis block.
	GenesisTimestamp time.Time

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *GenesisBlock

	// GenesisHash is the starting block hash.
	GenesisHash chainhash.Hash

	// Checkpoints ordered from oldest to newest.  The first checkpoint is
	// always the genesis block.
	Checkpoints []Checkpoint

	// LastCheckpointTime, TransactionsLastCheckpoint and TransactionsPerDay
	// estimate verification progress past the latest checkpoint.
	LastCheckpointTime         time.Time
	TransactionsLastCheckpoint int64
	TransactionsPerDay         float64

	// Upgrades holds the activation of every network upgrade, indexed by
	// upgrade identifier.
	Upgrades [NumUpgrades]Upgrade

	// CoinbaseMustBeShielded requires coinbase outputs to be spent to a
	// shielded address.
	CoinbaseMustBeShielded bool

	// Subsidy parameters.

	// SubsidySlowStartInterval is the number of blocks over which the block
	// subsidy ramps up linearly.
	SubsidySlowStartInterval int64

	// PreBlossomSubsidyHalvingInterval is the halving interval in blocks
	// prior to the Blossom upgrade.
	PreBlossomSubsidyHalvingInterval int64

	// PostBlossomSubsidyHalvingInterval is the halving interval in blocks
	// once the Blossom upgrade is active.
	PostBlossomSubsidyHalvingInterval int64

	// FundingPeriodLength is the number of blocks in one funding period.
	FundingPeriodLength int64

	// Majority thresholds for block version upgrades.

	// MajorityEnforceBlockUpgrade is the number of blocks in the majority
	// window that must signal a new version before it is enforced.
	MajorityEnforceBlockUpgrade int

	// MajorityRejectBlockOutdated is the number of blocks in the majority
	// window that must signal a new version before older versions are
	// rejected.
	MajorityRejectBlockOutdated int

	// MajorityWindow is the number of recent blocks considered.
	MajorityWindow int

	// Proof of work parameters.

	// EquihashN and EquihashK are the Equihash solver parameters.
	EquihashN uint32
	EquihashK uint32

	// PowLimit defines the highest allowed proof of work value for a block.
	PowLimit *uint256.Uint256

	// PowAveragingWindow is the number of blocks averaged when retargeting.
	PowAveragingWindow int64

	// PowMaxAdjustDown and PowMaxAdjustUp are the maximum difficulty
	// adjustments in percent.
	PowMaxAdjustDown int64
	PowMaxAdjustUp   int64

	// PreBlossomPowTargetSpacing and PostBlossomPowTargetSpacing are the
	// target block spacings before and after the Blossom upgrade.
	PreBlossomPowTargetSpacing  time.Duration
	PostBlossomPowTargetSpacing time.Duration

	// PowAllowMinDifficultyBlocksAfterHeight is the height after which
	// minimum difficulty blocks are allowed.  NoActivationHeight disables
	// them.
	PowAllowMinDifficultyBlocksAfterHeight int64

	// PowNoRetargeting disables difficulty retargeting.
	PowNoRetargeting bool

	// FutureTimestampSoftForkHeight is the height at which the tightened
	// future timestamp rule activates.  NoActivationHeight disables it.
	FutureTimestampSoftForkHeight int64

	// MinimumChainWork is the minimum amount of work the best chain is
	// expected to have.
	MinimumChainWork *uint256.Uint256

	// FoundersRewardAddresses holds one address per founders reward address
	// change interval.  An empty list disables the founders reward.
	FoundersRewardAddresses []string

	// Sprout value pool monitoring.

	// SproutValuePoolCheckpointHeight and SproutValuePoolCheckpointBalance
	// are the fallback Sprout shielded value pool balance for nodes that
	// have not reindexed.  SproutValuePoolCheckpointBlock is nil when no
	// checkpoint block is pinned.
	SproutValuePoolCheckpointHeight  int64
	SproutValuePoolCheckpointBalance int64
	SproutValuePoolCheckpointBlock   *chainhash.Hash

	// ZIP209Enabled rejects blocks that would drive a shielded value pool
	// balance negative.
	ZIP209Enabled bool

	// Node policy.

	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	TestnetToBeDeprecatedFieldRPC bool

	// Address encoding magics.
	PubKeyHashAddrID [2]byte
	ScriptHashAddrID [2]byte
	PrivateKeyID     byte

	// BIP32 hierarchical deterministic extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// Sprout key encoding magics.
	SproutPaymentAddrID [2]byte
	SproutViewingKeyID  [3]byte
	SproutSpendingKeyID [2]byte

	// Sapling bech32 human-readable parts.
	SaplingPaymentAddrHRP         string
	SaplingFullViewingKeyHRP      string
	SaplingIncomingViewingKeyHRP  string
	SaplingExtendedSpendKeyHRP    string
	SaplingExtendedFullViewKeyHRP string

	// TEXAddrHRP is the bech32m human-readable part of transparent-source
	// only addresses.
	TEXAddrHRP string

	fundingStreams     [NumFundingStreams]*FundingStream
	disbursements      [NumOnetimeDisbursements]*OnetimeLockboxDisbursement
	disbursementTotals map[UpgradeID]int64
}

// ParamsForNetwork returns newly constructed parameters for the network with
// the provided identifier.
func ParamsForNetwork(networkID string) (*Params, error) {
	switch networkID {
	case MainNetID:
		return MainNetParams(), nil
	case TestNetID:
		return TestNetParams(), nil
	case RegNetID:
		return RegNetParams(), nil
	}
	str := fmt.Sprintf("unknown network %q", networkID)
	return nil, makeError(ErrUnknownNetwork, str)
}

// IsRegTest returns whether the parameters are for the regression test
// network.
func (p *Params) IsRegTest() bool {
	return p.NetworkID == RegNetID
}

// AllowMinDifficultyBlocks returns whether a minimum difficulty block may be
// mined at the given height.
func (p *Params) AllowMinDifficultyBlocks(height int64) bool {
	after := p.PowAllowMinDifficultyBlocksAfterHeight
	return after != NoActivationHeight && height > after
}

// IsFutureTimestampSoftForkActive returns whether the tightened future
// timestamp rule applies at the given height.
func (p *Params) IsFutureTimestampSoftForkActive(height int64) bool {
	h := p.FutureTimestampSoftForkHeight
	return h != NoActivationHeight && height >= h
}

// AddrIDPubKeyHash returns the magic prefix bytes for pay-to-pubkey-hash
// addresses.
//
// This is part of the stdaddr.AddressParams interface.
func (p *Params) AddrIDPubKeyHash() [2]byte {
	return p.PubKeyHashAddrID
}

// AddrIDScriptHash returns the magic prefix bytes for pay-to-script-hash
// addresses.
//
// This is part of the stdaddr.AddressParams interface.
func (p *Params) AddrIDScriptHash() [2]byte {
	return p.ScriptHashAddrID
}

// SaplingPaymentAddressHRP returns the bech32 human-readable part of Sapling
// payment addresses.
//
// This is part of the stdaddr.AddressParams interface.
func (p *Params) SaplingPaymentAddressHRP() string {
	return p.SaplingPaymentAddrHRP
}

// Validate performs every construction-time consistency check of the
// parameters.  It is run for every standard network during package
// initialization and must be run again after any regression test override.
func (p *Params) Validate() error {
	if err := validateUpgrades(&p.Upgrades); err != nil {
		return err
	}

	pre, post := p.PreBlossomPowTargetSpacing, p.PostBlossomPowTargetSpacing
	if post <= 0 || pre < post || pre%post != 0 {
		str := fmt.Sprintf("pre-Blossom target spacing %v is not a whole "+
			"multiple of post-Blossom target spacing %v", pre, post)
		return makeError(ErrTargetSpacing, str)
	}
	ratio := p.BlossomPowTargetSpacingRatio()
	if p.PreBlossomSubsidyHalvingInterval <= 0 ||
		p.PostBlossomSubsidyHalvingInterval != p.PreBlossomSubsidyHalvingInterval*ratio {

		str := fmt.Sprintf("post-Blossom halving interval %d is not the "+
			"pre-Blossom interval %d scaled by the spacing ratio %d",
			p.PostBlossomSubsidyHalvingInterval,
			p.PreBlossomSubsidyHalvingInterval, ratio)
		return makeError(ErrTargetSpacing, str)
	}

	if p.FundingPeriodLength <= 0 || p.FundingPeriodLength !=
		p.PostBlossomSubsidyHalvingInterval/FundingPeriodsPerHalving {

		str := fmt.Sprintf("funding period length %d does not divide the "+
			"post-Blossom halving interval %d into %d periods",
			p.FundingPeriodLength, p.PostBlossomSubsidyHalvingInterval,
			FundingPeriodsPerHalving)
		return makeError(ErrFundingPeriodLength, str)
	}

	if err := p.validatePowLimit(); err != nil {
		return err
	}
	if err := p.validateCheckpoints(); err != nil {
		return err
	}

	numFounders := int64(len(p.FoundersRewardAddresses))
	if last := p.LastFoundersRewardBlockHeight(0); numFounders > last {
		str := fmt.Sprintf("%d founders reward addresses exceed the %d "+
			"blocks paying the founders reward", numFounders, last)
		return makeError(ErrFoundersRewardAddresses, str)
	}

	for _, fs := range p.fundingStreams {
		if fs == nil {
			continue
		}
		if err := p.validateFundingStream(fs); err != nil {
			return err
		}
	}
	return p.validateDisbursements()
}

// validateCheckpoints ensures the genesis block hashes to the genesis hash and
// the checkpoints start at the genesis block with increasing heights.
func (p *Params) validateCheckpoints() error {
	if p.GenesisBlock == nil || p.GenesisBlock.BlockHash() != p.GenesisHash {
		str := fmt.Sprintf("genesis block does not hash to %v", p.GenesisHash)
		return makeError(ErrGenesisHash, str)
	}
	if len(p.Checkpoints) == 0 || p.Checkpoints[0].Height != 0 ||
		p.Checkpoints[0].Hash == nil || *p.Checkpoints[0].Hash != p.GenesisHash {

		return makeError(ErrCheckpoint, "first checkpoint is not the genesis "+
			"block")
	}
	for i := 1; i < len(p.Checkpoints); i++ {
		cp := &p.Checkpoints[i]
		if cp.Hash == nil || cp.Height <= p.Checkpoints[i-1].Height {
			str := fmt.Sprintf("checkpoint %d at height %d is out of order "+
				"or has no hash", i, cp.Height)
			return makeError(ErrCheckpoint, str)
		}
	}
	return nil
}

// LatestCheckpoint returns the most recent checkpoint.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// validatePowLimit ensures the proof of work limit is set and small enough
// that summing the targets of the averaging window cannot overflow.
func (p *Params) validatePowLimit() error {
	if p.PowLimit == nil || p.PowLimit.IsZero() {
		return makeError(ErrPowLimit, "proof of work limit is not set")
	}
	if p.PowAveragingWindow <= 0 {
		str := fmt.Sprintf("proof of work averaging window %d is not "+
			"positive", p.PowAveragingWindow)
		return makeError(ErrPowLimit, str)
	}

	maxDiv := new(uint256.Uint256).Not().Div(p.PowLimit)
	window := new(uint256.Uint256).SetUint64(uint64(p.PowAveragingWindow))
	if maxDiv.Lt(window) {
		str := fmt.Sprintf("proof of work limit %s is too large for an "+
			"averaging window of %d blocks", uint256Hex(p.PowLimit),
			p.PowAveragingWindow)
		return makeError(ErrPowLimit, str)
	}
	return nil
}

// HexToUint256 converts the passed big-endian hex string of at most 64 digits
// into an unsigned 256-bit integer.
func HexToUint256(hexStr string) (*uint256.Uint256, error) {
	if len(hexStr)%2 != 0 {
		hexStr = "0" + hexStr
	}
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, err
	}
	if len(b) > 32 {
		return nil, fmt.Errorf("hex value %q exceeds 256 bits", hexStr)
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return new(uint256.Uint256).SetBytes(&buf), nil
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs.  It will only (and must only) be called with
// hard-coded values.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// hexToUint256 is the same as HexToUint256 except it panics on error.  It
// will only (and must only) be called with hard-coded values.
func hexToUint256(hexStr string) *uint256.Uint256 {
	n, err := HexToUint256(hexStr)
	if err != nil {
		panic(err)
	}
	return n
}

// uint256Hex returns the zero-padded big-endian hex encoding of n.
func uint256Hex(n *uint256.Uint256) string {
	b := n.Bytes()
	return hex.EncodeToString(b[:])
}
