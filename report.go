// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/The1Anubis/Zcents/chaincfg"
	"github.com/The1Anubis/Zcents/internal/stdaddr"
)

// formatAtoms formats an amount of atoms as coins with eight decimals.
func formatAtoms(atoms int64) string {
	sign := ""
	if atoms < 0 {
		sign = "-"
		atoms = -atoms
	}
	return fmt.Sprintf("%s%d.%08d", sign, atoms/chaincfg.AtomsPerCoin,
		atoms%chaincfg.AtomsPerCoin)
}

// newTabWriter returns a tab writer aligning report columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

// writeUpgradeTable writes the activation of every network upgrade.
func writeUpgradeTable(w io.Writer, params *chaincfg.Params) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "UPGRADE\tPROTOCOL\tACTIVATION")
	for id := chaincfg.BaseSprout; id < chaincfg.NumUpgrades; id++ {
		activation := "never"
		if height, ok := params.UpgradeActivationHeight(id); ok {
			activation = strconv.FormatInt(height, 10)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", id,
			params.Upgrades[id].ProtocolVersion, activation)
	}
	return tw.Flush()
}

// recipientKind describes how a recipient is paid.
func recipientKind(decoder *stdaddr.Decoder, r chaincfg.Recipient) (string, error) {
	if r.IsLockbox() {
		return "lockbox", nil
	}
	addr, err := decoder.Decode(r.Address)
	if err != nil {
		return "", err
	}
	switch addr.(type) {
	case *stdaddr.AddressPubKeyHash:
		return "p2pkh", nil
	case *stdaddr.AddressScriptHash:
		return "p2sh", nil
	case *stdaddr.AddressSapling:
		return "sapling", nil
	}
	return "unknown", nil
}

// writeHeightReport writes the consensus schedule in effect at the provided
// height.  Funding stream payments are valued when the subsidy is positive.
func writeHeightReport(w io.Writer, params *chaincfg.Params, decoder *stdaddr.Decoder, height, subsidy int64) error {
	active := params.ActiveUpgrade(height)
	fmt.Fprintf(w, "Network:         %s\n", params.Name)
	fmt.Fprintf(w, "Height:          %d\n", height)
	fmt.Fprintf(w, "Active upgrade:  %s (protocol %d)\n", active,
		params.Upgrades[active].ProtocolVersion)
	if next, ok := params.NextUpgrade(height); ok {
		fmt.Fprintf(w, "Next upgrade:    %s at height %d\n", next,
			params.Upgrades[next].ActivationHeight)
	}
	fmt.Fprintf(w, "Halvings:        %d\n", params.Halving(height))
	fmt.Fprintf(w, "Target spacing:  %v\n", params.PowTargetSpacing(height))
	fmt.Fprintf(w, "Genesis:         %v\n", params.GenesisHash)
	if cp := params.LatestCheckpoint(); cp != nil {
		fmt.Fprintf(w, "Checkpoint:      %v at height %d\n", cp.Hash, cp.Height)
	}
	coinbase := "transparent"
	if params.CoinbaseMustBeShielded {
		coinbase = "shielded"
	}
	fmt.Fprintf(w, "Coinbase:        %s\n", coinbase)
	fmt.Fprintf(w, "ZIP 209:         %v\n", params.ZIP209Enabled)

	elems := params.ActiveFundingStreamElements(height)
	fmt.Fprintf(w, "\nFunding streams: %d active\n", len(elems))
	if len(elems) > 0 {
		tw := newTabWriter(w)
		fmt.Fprintln(tw, "STREAM\tSHARE\tPERIOD\tKIND\tRECIPIENT\tVALUE")
		for _, elem := range elems {
			fs := elem.Stream
			kind, err := recipientKind(decoder, elem.Recipient)
			if err != nil {
				return fmt.Errorf("funding stream %s recipient %s: %w", fs.ID,
					elem.Recipient, err)
			}
			info := fs.ID.Info()
			value := "-"
			if subsidy > 0 {
				value = formatAtoms(info.Value(subsidy))
			}
			fmt.Fprintf(tw, "%s\t%d/%d\t%d\t%s\t%s\t%s\n", fs.ID,
				info.Numerator, info.Denominator,
				params.FundingPeriodIndex(fs.StartHeight, height), kind,
				elem.Recipient, value)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	disbursements := params.OnetimeLockboxDisbursementsAt(height)
	if len(disbursements) > 0 {
		fmt.Fprintf(w, "\nOne-time lockbox disbursements: %s total\n",
			formatAtoms(params.TotalOnetimeLockboxDisbursement(height)))
		tw := newTabWriter(w)
		fmt.Fprintln(tw, "ID\tUPGRADE\tAMOUNT\tADDRESS")
		for _, ld := range disbursements {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ld.ID, ld.Upgrade,
				formatAtoms(ld.Amount), ld.Address)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	last := params.LastFoundersRewardBlockHeight(height)
	if height > 0 && height <= last {
		fmt.Fprintf(w, "\nFounders reward:  %s\n",
			params.FoundersRewardAddressAtHeight(height))
	}
	return nil
}
