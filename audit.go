// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/The1Anubis/Zcents/chaincfg"
	"github.com/The1Anubis/Zcents/internal/progresslog"
	"github.com/The1Anubis/Zcents/internal/stdaddr"
	"golang.org/x/sync/errgroup"
)

const (
	// auditBatchSize is the number of heights walked between progress
	// updates and interrupt checks.
	auditBatchSize = 10000
)

// errAuditInterrupted is returned when an audit is interrupted before every
// height has been walked.
var errAuditInterrupted = errors.New("audit interrupted")

// auditStream walks every height paid by the funding stream and ensures each
// resolved recipient is the lockbox for lockbox streams and otherwise decodes
// to a payable address of the network.
func auditStream(ctx context.Context, params *chaincfg.Params, decoder *stdaddr.Decoder, fs *chaincfg.FundingStream, progress *progresslog.Logger) error {
	var tally progresslog.Tally
	for height := fs.StartHeight; height < fs.EndHeight; height++ {
		r := params.RecipientAt(fs, height)
		switch {
		case fs.Lockbox != r.IsLockbox():
			return fmt.Errorf("funding stream %s resolves recipient %s at "+
				"height %d", fs.ID, r, height)
		case r.IsLockbox():
			tally.Lockbox++
		default:
			_, shielded, err := decoder.ScriptForRecipient(r.Address)
			if err != nil {
				return fmt.Errorf("funding stream %s recipient %s at "+
					"height %d: %w", fs.ID, r, height, err)
			}
			if shielded {
				tally.Shielded++
			} else {
				tally.Transparent++
			}
		}
		tally.Heights++

		if tally.Heights == auditBatchSize {
			progress.LogProgress(tally, height, false)
			tally = progresslog.Tally{}
			if shutdownRequested(ctx) {
				return errAuditInterrupted
			}
		}
	}
	progress.LogProgress(tally, fs.EndHeight-1, false)
	return nil
}

// auditDisbursements ensures every one-time lockbox disbursement address
// decodes and that the total paid at each activation height is the sum of the
// disbursements governed by the activating upgrade.
func auditDisbursements(params *chaincfg.Params, decoder *stdaddr.Decoder) error {
	sums := make(map[chaincfg.UpgradeID]int64)
	for _, ld := range params.OnetimeLockboxDisbursements() {
		if _, err := decoder.Decode(ld.Address); err != nil {
			return fmt.Errorf("one-time lockbox disbursement %s address "+
				"%s: %w", ld.ID, ld.Address, err)
		}
		sums[ld.Upgrade] += ld.Amount
	}
	for upgrade, sum := range sums {
		height, ok := params.UpgradeActivationHeight(upgrade)
		if !ok {
			continue
		}
		total := params.TotalOnetimeLockboxDisbursement(height)
		if total != sum {
			return fmt.Errorf("one-time lockbox disbursements at height %d "+
				"total %d atoms, want %d", height, total, sum)
		}
	}
	return nil
}

// auditFoundersReward ensures every founders reward address decodes.
func auditFoundersReward(params *chaincfg.Params, decoder *stdaddr.Decoder) error {
	for i, addr := range params.FoundersRewardAddresses {
		if _, err := decoder.Decode(addr); err != nil {
			return fmt.Errorf("founders reward address %d (%s): %w", i, addr,
				err)
		}
	}
	return nil
}

// auditSchedule walks the full range of every funding stream concurrently and
// checks the one-time lockbox disbursements and founders reward addresses of
// the network.  It returns the first error found.
func auditSchedule(ctx context.Context, params *chaincfg.Params, decoder *stdaddr.Decoder, progress *progresslog.Logger) error {
	if err := auditDisbursements(params, decoder); err != nil {
		return err
	}
	if err := auditFoundersReward(params, decoder); err != nil {
		return err
	}

	streams := params.FundingStreams()
	g, gctx := errgroup.WithContext(ctx)
	for _, fs := range streams {
		fs := fs
		g.Go(func() error {
			return auditStream(gctx, params, decoder, fs, progress)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if shutdownRequested(ctx) {
		return errAuditInterrupted
	}

	var last int64
	for _, fs := range streams {
		if fs.EndHeight-1 > last {
			last = fs.EndHeight - 1
		}
	}
	progress.LogProgress(progresslog.Tally{}, last, true)
	zcpmLog.Infof("Audited %d funding %s of the %s network (%d cached "+
		"%s)", len(streams), pickNoun(len(streams), "stream", "streams"),
		params.Name, decoder.CachedAddresses(),
		pickNoun(int(decoder.CachedAddresses()), "address", "addresses"))
	return nil
}

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
