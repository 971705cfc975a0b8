// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strings"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// UpgradeID identifies a network upgrade.  The identifiers form a closed set
// and their numeric order is the order in which the upgrades activate.
type UpgradeID int

// These constants define the known network upgrades.
const (
	BaseSprout UpgradeID = iota
	UpgradeTestDummy
	UpgradeOverwinter
	UpgradeSapling
	UpgradeBlossom
	UpgradeHeartwood
	UpgradeCanopy
	UpgradeNU5
	UpgradeNU6
	UpgradeNU6_1
	UpgradeZFuture

	// NumUpgrades is the number of known network upgrades.  It must be the
	// final entry.
	NumUpgrades
)

const (
	// AlwaysActive is the activation height of an upgrade whose rules are in
	// effect from the genesis block.
	AlwaysActive int64 = 0

	// NoActivationHeight is the activation height of an upgrade that is not
	// scheduled to activate.
	NoActivationHeight int64 = -1
)

// upgradeNames maps each upgrade to the canonical name used in configuration
// and logging.
var upgradeNames = [NumUpgrades]string{
	BaseSprout:        "sprout",
	UpgradeTestDummy:  "testdummy",
	UpgradeOverwinter: "overwinter",
	UpgradeSapling:    "sapling",
	UpgradeBlossom:    "blossom",
	UpgradeHeartwood:  "heartwood",
	UpgradeCanopy:     "canopy",
	UpgradeNU5:        "nu5",
	UpgradeNU6:        "nu6",
	UpgradeNU6_1:      "nu6.1",
	UpgradeZFuture:    "zfuture",
}

// String returns the canonical name of the upgrade.
func (id UpgradeID) String() string {
	if id < 0 || id >= NumUpgrades {
		return fmt.Sprintf("Unknown UpgradeID (%d)", int(id))
	}
	return upgradeNames[id]
}

// ParseUpgradeID returns the upgrade with the provided canonical name.  The
// comparison is case insensitive.
func ParseUpgradeID(name string) (UpgradeID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id := BaseSprout; id < NumUpgrades; id++ {
		if upgradeNames[id] == name {
			return id, nil
		}
	}
	str := fmt.Sprintf("unknown network upgrade %q", name)
	return 0, makeError(ErrUnknownUpgrade, str)
}

// Upgrade describes the activation of a single network upgrade.
type Upgrade struct {
	// ProtocolVersion is the minimum peer protocol version that supports
	// the upgrade.
	ProtocolVersion uint32

	// ActivationHeight is the first block height at which the upgrade rules
	// are enforced.  AlwaysActive and NoActivationHeight have their
	// documented meanings.
	ActivationHeight int64

	// ActivationBlock optionally pins the hash of the block at the
	// activation height.  Nodes that see a different block at that height
	// are on a different chain.
	ActivationBlock *chainhash.Hash
}

// hasActivationHeight returns whether the upgrade is scheduled to activate.
func (u *Upgrade) hasActivationHeight() bool {
	return u.ActivationHeight != NoActivationHeight
}

// checkHeight panics when the provided height is negative.  Callers passing a
// negative height have violated the query contract.
func checkHeight(height int64) {
	if height < 0 {
		str := fmt.Sprintf("block height %d is negative", height)
		panic(makeError(ErrInvalidHeight, str))
	}
}

// checkUpgradeID panics when the provided identifier is outside of the closed
// set of upgrades.
func checkUpgradeID(id UpgradeID) {
	if id < 0 || id >= NumUpgrades {
		str := fmt.Sprintf("upgrade id %d is out of range", int(id))
		panic(makeError(ErrUnknownUpgrade, str))
	}
}

// IsUpgradeActive returns whether the rules of the provided upgrade are in
// effect at the given block height.
//
// It panics when the height is negative or the upgrade is unknown.
func (p *Params) IsUpgradeActive(height int64, id UpgradeID) bool {
	checkHeight(height)
	checkUpgradeID(id)

	u := &p.Upgrades[id]
	return u.hasActivationHeight() && height >= u.ActivationHeight
}

// ActiveUpgrade returns the highest upgrade whose rules are in effect at the
// given block height.  Since BaseSprout is always active, there is always a
// result.
//
// It panics when the height is negative.
func (p *Params) ActiveUpgrade(height int64) UpgradeID {
	checkHeight(height)

	for id := NumUpgrades - 1; id > BaseSprout; id-- {
		if p.IsUpgradeActive(height, id) {
			return id
		}
	}
	return BaseSprout
}

// UpgradeActivationHeight returns the activation height of the provided
// upgrade and whether it is scheduled to activate at all.
func (p *Params) UpgradeActivationHeight(id UpgradeID) (int64, bool) {
	checkUpgradeID(id)

	u := &p.Upgrades[id]
	return u.ActivationHeight, u.hasActivationHeight()
}

// IsActivationHeight returns whether the given height is exactly the
// activation height of the provided upgrade.
func (p *Params) IsActivationHeight(height int64, id UpgradeID) bool {
	checkHeight(height)
	checkUpgradeID(id)

	u := &p.Upgrades[id]
	return u.hasActivationHeight() && height == u.ActivationHeight
}

// NextUpgrade returns the first upgrade with a defined activation height that
// is not yet active at the given height.  The boolean is false when every
// scheduled upgrade is already active.
func (p *Params) NextUpgrade(height int64) (UpgradeID, bool) {
	checkHeight(height)

	for id := BaseSprout + 1; id < NumUpgrades; id++ {
		u := &p.Upgrades[id]
		if u.hasActivationHeight() && height < u.ActivationHeight {
			return id, true
		}
	}
	return 0, false
}

// CheckActivationBlock returns false only when the provided upgrade pins an
// activation block, the height is its activation height and the hash does not
// match the pinned one.
func (p *Params) CheckActivationBlock(id UpgradeID, height int64, hash *chainhash.Hash) bool {
	checkHeight(height)
	checkUpgradeID(id)

	u := &p.Upgrades[id]
	if u.ActivationBlock == nil || height != u.ActivationHeight {
		return true
	}
	return u.ActivationBlock.IsEqual(hash)
}

// validateUpgrades ensures BaseSprout is always active and the defined
// activation heights do not decrease in upgrade order.
func validateUpgrades(upgrades *[NumUpgrades]Upgrade) error {
	if upgrades[BaseSprout].ActivationHeight != AlwaysActive {
		str := fmt.Sprintf("upgrade %s must always be active", BaseSprout)
		return makeError(ErrUpgradeOrder, str)
	}

	prevID := BaseSprout
	for id := BaseSprout + 1; id < NumUpgrades; id++ {
		u := &upgrades[id]
		if u.ActivationHeight < NoActivationHeight {
			str := fmt.Sprintf("upgrade %s has invalid activation height %d",
				id, u.ActivationHeight)
			return makeError(ErrUpgradeOrder, str)
		}

		// Upgrades that never activate, and the test dummy which exists
		// solely to be toggled by tests, do not participate in ordering.
		if !u.hasActivationHeight() || id == UpgradeTestDummy {
			continue
		}
		prev := upgrades[prevID].ActivationHeight
		if u.ActivationHeight < prev {
			str := fmt.Sprintf("upgrade %s activates at height %d before "+
				"upgrade %s at height %d", id, u.ActivationHeight, prevID,
				prev)
			return makeError(ErrUpgradeOrder, str)
		}
		prevID = id
	}
	return nil
}
