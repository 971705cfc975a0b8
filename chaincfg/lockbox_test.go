// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// equalChunks returns count disbursements of the provided amount to the same
// address, identified sequentially from first.
func equalChunks(first OnetimeDisbursementID, count int, upgrade UpgradeID, amount int64, addr string) []OnetimeLockboxDisbursement {
	entries := make([]OnetimeLockboxDisbursement, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, OnetimeLockboxDisbursement{
			ID:      first + OnetimeDisbursementID(i),
			Upgrade: upgrade,
			Amount:  amount,
			Address: addr,
		})
	}
	return entries
}

// chunkedRegNetParams returns regression test parameters with NU6.1 activating
// at the provided height and ten equal disbursement chunks governed by it.
func chunkedRegNetParams(t *testing.T, nu61 int64) *Params {
	t.Helper()

	params := RegNetParams()
	if err := params.UpdateUpgradeActivation(UpgradeNU6_1, nu61); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := params.AddOnetimeLockboxDisbursements(UpgradeNU6_1,
		78750*AtomsPerCoin, equalChunks(DisbursementNU61Chunk1, 10,
			UpgradeNU6_1, 7875*AtomsPerCoin, regTestP2SH))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return params
}

// regTestP2SH is a pay-to-script-hash address of the regression test network.
const regTestP2SH = "RsK25ULBB2dcxCktTwPsZnDvZr2qK5tnp5C"

// TestOnetimeLockboxDisbursementsAt ensures disbursements are only due at the
// exact activation height of their governing upgrade and sum to the
// documented total.
func TestOnetimeLockboxDisbursementsAt(t *testing.T) {
	t.Parallel()

	const nu61 = 20
	params := chunkedRegNetParams(t, nu61)
	if err := params.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	due := params.OnetimeLockboxDisbursementsAt(nu61)
	if len(due) != 10 {
		t.Fatalf("got %d disbursements at height %d, want 10", len(due),
			nu61)
	}
	var sum int64
	for i, ld := range due {
		if ld.ID != DisbursementNU61Chunk1+OnetimeDisbursementID(i) ||
			ld.Upgrade != UpgradeNU6_1 || ld.Address != regTestP2SH ||
			ld.Amount != 7875*AtomsPerCoin {

			t.Errorf("unexpected disbursement %d: %v", i, spew.Sdump(ld))
		}
		sum += ld.Amount
	}
	if sum != 78750*AtomsPerCoin {
		t.Errorf("disbursements sum to %d", sum)
	}
	if got := params.TotalOnetimeLockboxDisbursement(nu61); got != sum {
		t.Errorf("total %d, want %d", got, sum)
	}

	for height := int64(0); height < 5000; height++ {
		if height == nu61 {
			continue
		}
		if due := params.OnetimeLockboxDisbursementsAt(height); len(due) != 0 {
			t.Errorf("got %d disbursements at height %d", len(due), height)
			break
		}
	}

	// Returned disbursements are copies.
	due[0].Amount = 1
	if got := params.TotalOnetimeLockboxDisbursement(nu61); got != sum {
		t.Errorf("total changed to %d through a returned copy", got)
	}

	assertPanicKind(t, "negative height", ErrInvalidHeight, func() {
		MainNetParams().OnetimeLockboxDisbursementsAt(-1)
	})
}

// TestAddOnetimeLockboxDisbursements ensures malformed disbursement groups are
// rejected when they are registered.
func TestAddOnetimeLockboxDisbursements(t *testing.T) {
	t.Parallel()

	const coin = AtomsPerCoin
	chunks := func(n int, amount int64) []OnetimeLockboxDisbursement {
		return equalChunks(DisbursementNU61Chunk1, n, UpgradeNU6_1, amount,
			"kho")
	}
	tests := []struct {
		name    string
		upgrade UpgradeID
		total   int64
		entries []OnetimeLockboxDisbursement
		err     error
	}{{
		name:    "ten chunks",
		upgrade: UpgradeNU6_1,
		total:   100 * coin,
		entries: chunks(10, 10*coin),
	}, {
		name:    "total mismatch",
		upgrade: UpgradeNU6_1,
		total:   101 * coin,
		entries: chunks(10, 10*coin),
		err:     ErrDisbursementTotal,
	}, {
		name:    "wrong governing upgrade",
		upgrade: UpgradeNU6,
		total:   100 * coin,
		entries: chunks(10, 10*coin),
		err:     ErrDisbursementTotal,
	}, {
		name:    "zero amount",
		upgrade: UpgradeNU6_1,
		total:   0,
		entries: chunks(2, 0),
		err:     ErrDisbursementAmount,
	}, {
		name:    "no destination",
		upgrade: UpgradeNU6_1,
		total:   coin,
		entries: []OnetimeLockboxDisbursement{{
			ID:      DisbursementNU61Chunk1,
			Upgrade: UpgradeNU6_1,
			Amount:  coin,
		}},
		err: ErrDisbursementAddress,
	}, {
		name:    "duplicate id",
		upgrade: UpgradeNU6_1,
		total:   2 * coin,
		entries: append(chunks(1, coin), chunks(1, coin)...),
		err:     ErrDuplicateDisbursement,
	}, {
		name:    "unknown id",
		upgrade: UpgradeNU6_1,
		total:   coin,
		entries: equalChunks(NumOnetimeDisbursements, 1, UpgradeNU6_1, coin,
			"kho"),
		err: ErrUnknownDisbursement,
	}}

	for _, test := range tests {
		params := RegNetParams()
		err := params.AddOnetimeLockboxDisbursements(test.upgrade, test.total,
			test.entries)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got err %v, want %v", test.name, err, test.err)
			continue
		}
		if test.err != nil {
			if n := len(params.OnetimeLockboxDisbursements()); n != 0 {
				t.Errorf("%s: %d rejected disbursements registered",
					test.name, n)
			}
			continue
		}
		if err := params.Validate(); err != nil {
			t.Errorf("%s: unexpected validation error: %v", test.name, err)
		}
	}

	// Registering the same disbursement again is rejected.
	params := RegNetParams()
	err := params.AddOnetimeLockboxDisbursements(UpgradeNU6_1, coin,
		chunks(1, coin))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = params.AddOnetimeLockboxDisbursements(UpgradeNU6_1, coin,
		chunks(1, coin))
	if !errors.Is(err, ErrDuplicateDisbursement) {
		t.Errorf("re-registration: got err %v, want %v", err,
			ErrDuplicateDisbursement)
	}
}

// TestValidateDisbursements ensures tampering with a registered disbursement
// is detected by validation.
func TestValidateDisbursements(t *testing.T) {
	t.Parallel()

	params := chunkedRegNetParams(t, 1)
	params.disbursements[DisbursementNU61Chunk3].Amount++
	if err := params.Validate(); !errors.Is(err, ErrDisbursementTotal) {
		t.Errorf("tampered amount: got err %v, want %v", err,
			ErrDisbursementTotal)
	}

	params = chunkedRegNetParams(t, 1)
	params.disbursements[DisbursementNU61Chunk3] = nil
	if err := params.Validate(); !errors.Is(err, ErrDisbursementTotal) {
		t.Errorf("removed chunk: got err %v, want %v", err,
			ErrDisbursementTotal)
	}
}

// TestOnetimeDisbursementIDStringer tests the stringized output for the
// OnetimeDisbursementID type.
func TestOnetimeDisbursementIDStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   OnetimeDisbursementID
		want string
	}{
		{DisbursementNU61Chunk1, "nu6.1-chunk-1"},
		{DisbursementNU61Chunk10, "nu6.1-chunk-10"},
		{NumOnetimeDisbursements, "Unknown OnetimeDisbursementID (10)"},
	}
	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("#%d: got: %s want: %s", i, got, test.want)
		}
	}
}
