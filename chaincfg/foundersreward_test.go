// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"testing"
	"time"
)

// foundersParams returns parameters with eight founders reward addresses, a
// pre-Blossom halving interval of 2000 blocks and Blossom activating at height
// 1 with a target spacing ratio of 4.
func foundersParams() *Params {
	params := RegNetParams()
	params.PreBlossomPowTargetSpacing = 300 * time.Second
	params.PostBlossomPowTargetSpacing = 75 * time.Second
	params.PreBlossomSubsidyHalvingInterval = 2000
	params.PostBlossomSubsidyHalvingInterval = 8000
	params.FundingPeriodLength = 8000 / FundingPeriodsPerHalving
	params.SubsidySlowStartInterval = 0
	for i := 0; i < 8; i++ {
		addr := fmt.Sprintf("founders-%d", i)
		params.FoundersRewardAddresses = append(params.FoundersRewardAddresses,
			addr)
	}
	return params
}

// TestFoundersRewardAddressAtHeight ensures founders reward addresses are
// selected from the remapped height once Blossom is active.
func TestFoundersRewardAddressAtHeight(t *testing.T) {
	t.Parallel()

	params := foundersParams()
	if err := params.Validate(); err != nil {
		t.Fatalf("invalid founders params: %v", err)
	}
	if got := params.BlossomPowTargetSpacingRatio(); got != 4 {
		t.Fatalf("spacing ratio %d, want 4", got)
	}
	if got := params.LastFoundersRewardBlockHeight(0); got != 1999 {
		t.Fatalf("pre-Blossom last founders height %d, want 1999", got)
	}
	last := params.LastFoundersRewardBlockHeight(1000)
	if last != 7996 {
		t.Fatalf("post-Blossom last founders height %d, want 7996", last)
	}

	tests := []struct {
		height int64
		want   string
	}{
		{1, "founders-0"},
		{996, "founders-0"},  // remaps to 249
		{997, "founders-1"},  // remaps to 250
		{1000, "founders-1"}, // remaps to 250, not 1000
		{1996, "founders-1"}, // remaps to 499
		{1997, "founders-2"}, // remaps to 500
		{7996, "founders-7"}, // remaps to 1999
	}
	for _, test := range tests {
		got := params.FoundersRewardAddressAtHeight(test.height)
		if got != test.want {
			t.Errorf("height %d: got %s, want %s", test.height, got,
				test.want)
		}
	}

	// Every height in the reward range resolves to an address.
	for height := int64(1); height <= last; height++ {
		params.FoundersRewardAddressAtHeight(height)
	}

	assertPanicKind(t, "genesis", ErrFoundersRewardRange, func() {
		params.FoundersRewardAddressAtHeight(0)
	})
	assertPanicKind(t, "after last", ErrFoundersRewardRange, func() {
		params.FoundersRewardAddressAtHeight(last + 1)
	})
	assertPanicKind(t, "negative", ErrInvalidHeight, func() {
		params.FoundersRewardAddressAtHeight(-1)
	})
}

// TestFoundersRewardPreBlossom ensures heights are used unchanged when Blossom
// is not active.
func TestFoundersRewardPreBlossom(t *testing.T) {
	t.Parallel()

	params := foundersParams()
	for id := UpgradeBlossom; id <= UpgradeNU6_1; id++ {
		params.Upgrades[id].ActivationHeight = NoActivationHeight
	}

	tests := []struct {
		height int64
		want   string
	}{
		{1, "founders-0"},
		{249, "founders-0"},
		{250, "founders-1"},
		{1000, "founders-4"},
		{1999, "founders-7"},
	}
	for _, test := range tests {
		got := params.FoundersRewardAddressAtHeight(test.height)
		if got != test.want {
			t.Errorf("height %d: got %s, want %s", test.height, got,
				test.want)
		}
	}
	assertPanicKind(t, "after last", ErrFoundersRewardRange, func() {
		params.FoundersRewardAddressAtHeight(2000)
	})
}

// TestFoundersRewardAddressAtIndex ensures the index accessor is bounds
// checked.
func TestFoundersRewardAddressAtIndex(t *testing.T) {
	t.Parallel()

	params := foundersParams()
	for i := int64(0); i < 8; i++ {
		want := fmt.Sprintf("founders-%d", i)
		if got := params.FoundersRewardAddressAtIndex(i); got != want {
			t.Errorf("index %d: got %s, want %s", i, got, want)
		}
	}
	assertPanicKind(t, "index -1", ErrFoundersRewardRange, func() {
		params.FoundersRewardAddressAtIndex(-1)
	})
	assertPanicKind(t, "index 8", ErrFoundersRewardRange, func() {
		params.FoundersRewardAddressAtIndex(8)
	})
}

// TestFoundersRewardDisabled ensures the standard networks have no founders
// reward.
func TestFoundersRewardDisabled(t *testing.T) {
	t.Parallel()

	for _, params := range []*Params{MainNetParams(), TestNetParams(), RegNetParams()} {
		for _, height := range []int64{0, 1, 1000000} {
			if got := params.LastFoundersRewardBlockHeight(height); got != 0 {
				t.Errorf("%s: last founders height at %d is %d, want 0",
					params.Name, height, got)
			}
		}
		assertPanicKind(t, params.Name, ErrFoundersRewardRange, func() {
			params.FoundersRewardAddressAtHeight(1)
		})
	}
}

// TestHalvingHeight ensures halving heights account for the slow start shift
// and the change of halving interval at Blossom.
func TestHalvingHeight(t *testing.T) {
	t.Parallel()

	main := MainNetParams()
	tests := []struct {
		name   string
		params *Params
		height int64
		index  int64
		want   int64
	}{
		{"main pre-Blossom first", main, 0, 1, 850000},
		{"main pre-Blossom second", main, 0, 2, 1690000},
		{"main post-Blossom first", main, 1, 1, 1699999},
		{"main post-Blossom second", main, 1, 2, 3379999},
		{"regtest post-Blossom first", RegNetParams(), 1, 1, 287},
		{"founders post-Blossom first", foundersParams(), 1, 1, 7997},
	}
	for _, test := range tests {
		got := test.params.HalvingHeight(test.height, test.index)
		if got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got, test.want)
			continue
		}

		// The halving count must step exactly at the halving height.
		if test.height == 0 {
			continue
		}
		if h := test.params.Halving(got); h != test.index {
			t.Errorf("%s: halving at %d is %d, want %d", test.name, got, h,
				test.index)
		}
		if h := test.params.Halving(got - 1); h != test.index-1 {
			t.Errorf("%s: halving at %d is %d, want %d", test.name, got-1,
				h, test.index-1)
		}
	}

	assertPanicKind(t, "zero index", ErrInvalidHeight, func() {
		main.HalvingHeight(1, 0)
	})

	if got := main.PowTargetSpacing(0); got != 150*time.Second {
		t.Errorf("genesis target spacing %v", got)
	}
	if got := main.PowTargetSpacing(1); got != 75*time.Second {
		t.Errorf("post-Blossom target spacing %v", got)
	}
}
