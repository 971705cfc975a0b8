// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// AtomsPerCoin is the number of atomic units in one coin.
const AtomsPerCoin int64 = 1e8

// OnetimeDisbursementID identifies a one-time lockbox disbursement.
type OnetimeDisbursementID int

// These constants define the known one-time lockbox disbursements.  The NU6.1
// disbursement is split into ten equal chunks.
const (
	DisbursementNU61Chunk1 OnetimeDisbursementID = iota
	DisbursementNU61Chunk2
	DisbursementNU61Chunk3
	DisbursementNU61Chunk4
	DisbursementNU61Chunk5
	DisbursementNU61Chunk6
	DisbursementNU61Chunk7
	DisbursementNU61Chunk8
	DisbursementNU61Chunk9
	DisbursementNU61Chunk10

	// NumOnetimeDisbursements is the number of known one-time lockbox
	// disbursements.  It must be the final entry.
	NumOnetimeDisbursements
)

// String returns a human-readable name for the disbursement.
func (id OnetimeDisbursementID) String() string {
	if id < 0 || id >= NumOnetimeDisbursements {
		return fmt.Sprintf("Unknown OnetimeDisbursementID (%d)", int(id))
	}
	return fmt.Sprintf("nu6.1-chunk-%d", int(id-DisbursementNU61Chunk1)+1)
}

// OnetimeLockboxDisbursement is a fixed amount paid out of the lockbox once,
// in the block at which its governing upgrade activates.
type OnetimeLockboxDisbursement struct {
	ID      OnetimeDisbursementID
	Upgrade UpgradeID
	Amount  int64
	Address string
}

// validateDisbursement checks the fields of a single disbursement.
func validateDisbursement(ld *OnetimeLockboxDisbursement) error {
	if ld.ID < 0 || ld.ID >= NumOnetimeDisbursements {
		str := fmt.Sprintf("one-time disbursement id %d is out of range",
			int(ld.ID))
		return makeError(ErrUnknownDisbursement, str)
	}
	if ld.Upgrade < 0 || ld.Upgrade >= NumUpgrades {
		str := fmt.Sprintf("one-time disbursement %s references unknown "+
			"upgrade %d", ld.ID, int(ld.Upgrade))
		return makeError(ErrUnknownUpgrade, str)
	}
	if ld.Amount <= 0 {
		str := fmt.Sprintf("one-time disbursement %s has non-positive amount "+
			"%d", ld.ID, ld.Amount)
		return makeError(ErrDisbursementAmount, str)
	}
	if ld.Address == "" {
		str := fmt.Sprintf("one-time disbursement %s has no destination",
			ld.ID)
		return makeError(ErrDisbursementAddress, str)
	}
	return nil
}

// AddOnetimeLockboxDisbursements registers a group of disbursements governed
// by the provided upgrade.  The amounts of the group must sum to total, which
// becomes the documented total for the upgrade.
func (p *Params) AddOnetimeLockboxDisbursements(upgrade UpgradeID, total int64, entries []OnetimeLockboxDisbursement) error {
	var sum int64
	seen := make(map[OnetimeDisbursementID]struct{}, len(entries))
	for i := range entries {
		ld := &entries[i]
		if ld.Upgrade != upgrade {
			str := fmt.Sprintf("one-time disbursement %s is governed by "+
				"upgrade %s, not %s", ld.ID, ld.Upgrade, upgrade)
			return makeError(ErrDisbursementTotal, str)
		}
		if err := validateDisbursement(ld); err != nil {
			return err
		}
		if _, ok := seen[ld.ID]; ok || p.disbursements[ld.ID] != nil {
			str := fmt.Sprintf("one-time disbursement %s is registered more "+
				"than once", ld.ID)
			return makeError(ErrDuplicateDisbursement, str)
		}
		seen[ld.ID] = struct{}{}
		sum += ld.Amount
	}
	if sum != total {
		str := fmt.Sprintf("one-time disbursements for upgrade %s sum to %d, "+
			"want %d", upgrade, sum, total)
		return makeError(ErrDisbursementTotal, str)
	}

	for i := range entries {
		ld := entries[i]
		p.disbursements[ld.ID] = &ld
	}
	if p.disbursementTotals == nil {
		p.disbursementTotals = make(map[UpgradeID]int64)
	}
	p.disbursementTotals[upgrade] += total
	log.Debugf("%s: registered %d one-time lockbox disbursements totaling %d "+
		"for upgrade %s", p.Name, len(entries), total, upgrade)
	return nil
}

// OnetimeLockboxDisbursements returns every registered disbursement in
// identifier order.
func (p *Params) OnetimeLockboxDisbursements() []OnetimeLockboxDisbursement {
	var all []OnetimeLockboxDisbursement
	for _, ld := range p.disbursements {
		if ld != nil {
			all = append(all, *ld)
		}
	}
	return all
}

// OnetimeLockboxDisbursementsAt returns the disbursements paid in the block at
// the given height, in identifier order.  A disbursement is paid only at the
// exact activation height of its governing upgrade, so the result is usually
// empty.  Callers must pay the sum of all returned amounts.
//
// It panics when the height is negative.
func (p *Params) OnetimeLockboxDisbursementsAt(height int64) []OnetimeLockboxDisbursement {
	checkHeight(height)

	var due []OnetimeLockboxDisbursement
	for _, ld := range p.disbursements {
		if ld != nil && p.IsActivationHeight(height, ld.Upgrade) {
			due = append(due, *ld)
		}
	}
	return due
}

// TotalOnetimeLockboxDisbursement returns the sum of the amounts of every
// disbursement paid at the given height.
func (p *Params) TotalOnetimeLockboxDisbursement(height int64) int64 {
	var total int64
	for _, ld := range p.OnetimeLockboxDisbursementsAt(height) {
		total += ld.Amount
	}
	return total
}

// validateDisbursements ensures every registered disbursement is well formed
// and the disbursements of each upgrade still sum to the documented total.
func (p *Params) validateDisbursements() error {
	sums := make(map[UpgradeID]int64)
	for _, ld := range p.disbursements {
		if ld == nil {
			continue
		}
		if err := validateDisbursement(ld); err != nil {
			return err
		}
		sums[ld.Upgrade] += ld.Amount
	}
	for upgrade, total := range p.disbursementTotals {
		if sums[upgrade] != total {
			str := fmt.Sprintf("one-time disbursements for upgrade %s sum "+
				"to %d, want %d", upgrade, sums[upgrade], total)
			return makeError(ErrDisbursementTotal, str)
		}
	}
	for upgrade, sum := range sums {
		if _, ok := p.disbursementTotals[upgrade]; !ok {
			str := fmt.Sprintf("one-time disbursements for upgrade %s sum "+
				"to %d with no documented total", upgrade, sum)
			return makeError(ErrDisbursementTotal, str)
		}
	}
	return nil
}
