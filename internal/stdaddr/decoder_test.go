// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"errors"
	"testing"

	"github.com/The1Anubis/Zcents/chaincfg"
)

// TestDecoder ensures the decoder caches successfully decoded addresses and
// reports shielded recipients.
func TestDecoder(t *testing.T) {
	t.Parallel()

	decoder := NewDecoder(chaincfg.MainNetParams(), 2)
	const (
		p2sh    = "ZsFiYkXrMfduB9WeMA7v2tnkeXetvmZJuH8"
		p2pkh   = "ZcNDEKWphPxkktUV9FbbEx9gYEzN2UZosoL"
		sapling = "zs1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z5tpwxqergd3c8g7ruszzg3rysjjvfeg9y4zkvtfdeq"
	)

	first, err := decoder.Decode(p2sh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := decoder.Decode(p2sh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("second decode was not served from the cache")
	}

	if _, err := decoder.Decode("ZsFiYkXrMfduB9WeMA7v2tnkeXetvmZJuH9"); !errors.Is(err, ErrBadAddressChecksum) {
		t.Errorf("bad checksum: got err %v", err)
	}
	if n := decoder.CachedAddresses(); n != 1 {
		t.Errorf("got %d cached addresses, want 1", n)
	}

	script, shielded, err := decoder.ScriptForRecipient(p2pkh)
	if err != nil || shielded || len(script) != 25 {
		t.Errorf("p2pkh: script %x shielded %v err %v", script, shielded, err)
	}
	script, shielded, err = decoder.ScriptForRecipient(sapling)
	if err != nil || !shielded || script != nil {
		t.Errorf("sapling: script %x shielded %v err %v", script, shielded, err)
	}

	// The cache is bounded.
	if n := decoder.CachedAddresses(); n != 2 {
		t.Errorf("got %d cached addresses, want 2", n)
	}
}
