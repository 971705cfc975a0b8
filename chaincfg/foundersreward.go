// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"
)

// SubsidySlowStartShift returns the number of blocks the halving schedule is
// shifted by the slow start of the block subsidy.
func (p *Params) SubsidySlowStartShift() int64 {
	return p.SubsidySlowStartInterval / 2
}

// BlossomPowTargetSpacingRatio returns the factor by which the target block
// spacing decreased at the Blossom upgrade.
func (p *Params) BlossomPowTargetSpacingRatio() int64 {
	return int64(p.PreBlossomPowTargetSpacing / p.PostBlossomPowTargetSpacing)
}

// PowTargetSpacing returns the target block spacing in effect at the given
// height.
func (p *Params) PowTargetSpacing(height int64) time.Duration {
	if p.IsUpgradeActive(height, UpgradeBlossom) {
		return p.PostBlossomPowTargetSpacing
	}
	return p.PreBlossomPowTargetSpacing
}

// Halving returns the number of subsidy halvings that have occurred by the
// given height.
func (p *Params) Halving(height int64) int64 {
	shift := p.SubsidySlowStartShift()
	if !p.IsUpgradeActive(height, UpgradeBlossom) {
		return (height - shift) / p.PreBlossomSubsidyHalvingInterval
	}

	// The pre-Blossom halving fraction is scaled by the spacing ratio so it
	// can be expressed in post-Blossom blocks without a rational number.
	blossom := p.Upgrades[UpgradeBlossom].ActivationHeight
	scaled := (blossom-shift)*p.BlossomPowTargetSpacingRatio() + (height - blossom)
	return scaled / p.PostBlossomSubsidyHalvingInterval
}

// HalvingHeight returns the height of the halving with the provided index
// according to the rules in effect at the given height.  The index must be
// positive.
func (p *Params) HalvingHeight(height int64, halvingIndex int64) int64 {
	checkHeight(height)
	if halvingIndex <= 0 {
		str := fmt.Sprintf("halving index %d is not positive", halvingIndex)
		panic(makeError(ErrInvalidHeight, str))
	}

	shift := p.SubsidySlowStartShift()
	if !p.IsUpgradeActive(height, UpgradeBlossom) {
		return p.PreBlossomSubsidyHalvingInterval*halvingIndex + shift
	}

	blossom := p.Upgrades[UpgradeBlossom].ActivationHeight
	ratio := p.BlossomPowTargetSpacingRatio()
	return p.PostBlossomSubsidyHalvingInterval*halvingIndex -
		ratio*(blossom-shift) + blossom
}

// LastFoundersRewardBlockHeight returns the last height that pays the
// founders reward according to the rules in effect at the given height.  It
// is zero when the network has no founders reward addresses.
func (p *Params) LastFoundersRewardBlockHeight(height int64) int64 {
	if len(p.FoundersRewardAddresses) == 0 {
		return 0
	}
	return p.HalvingHeight(height, 1) - 1
}

// FoundersRewardAddressAtHeight returns the founders reward address for the
// block at the given height.  After Blossom the height is mapped back onto the
// pre-Blossom schedule so the address rotates at the same wall clock cadence.
//
// It panics when the height is outside of (0, LastFoundersRewardBlockHeight].
func (p *Params) FoundersRewardAddressAtHeight(height int64) string {
	checkHeight(height)
	last := p.LastFoundersRewardBlockHeight(height)
	if height <= 0 || height > last {
		str := fmt.Sprintf("height %d is outside of the founders reward "+
			"range (0, %d]", height, last)
		panic(makeError(ErrFoundersRewardRange, str))
	}

	if p.IsUpgradeActive(height, UpgradeBlossom) {
		blossom := p.Upgrades[UpgradeBlossom].ActivationHeight
		height = blossom + (height-blossom)/p.BlossomPowTargetSpacingRatio()
	}

	// The interval rounds the same way as every prior release.  Changing it
	// would change the address selected at interval boundaries.
	preBlossomMax := p.LastFoundersRewardBlockHeight(0)
	numAddrs := int64(len(p.FoundersRewardAddresses))
	interval := (preBlossomMax + numAddrs) / numAddrs
	return p.FoundersRewardAddressAtIndex(height / interval)
}

// FoundersRewardAddressAtIndex returns the founders reward address with the
// provided index.
//
// It panics when the index is out of range.
func (p *Params) FoundersRewardAddressAtIndex(i int64) string {
	if i < 0 || i >= int64(len(p.FoundersRewardAddresses)) {
		str := fmt.Sprintf("founders reward address index %d is out of "+
			"range [0, %d)", i, len(p.FoundersRewardAddresses))
		panic(makeError(ErrFoundersRewardRange, str))
	}
	return p.FoundersRewardAddresses[i]
}
