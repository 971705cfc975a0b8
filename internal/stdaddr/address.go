// Copyright (c) 2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stdaddr provides facilities for working with human-readable Zcents
// payment addresses.
//
// It decodes the recipients named by the consensus schedule, such as funding
// stream and one-time disbursement destinations, into the outputs that pay
// them.  Transparent addresses produce a standard output script while Sapling
// payment addresses are shielded and have none.
package stdaddr

import (
	"fmt"
	"strings"
)

// AddressParams defines an interface that is used to provide the parameters
// required when encoding and decoding addresses.  These values are typically
// well-defined and unique per network.
type AddressParams interface {
	// AddrIDPubKeyHash returns the magic prefix bytes for pay-to-pubkey-hash
	// addresses.
	AddrIDPubKeyHash() [2]byte

	// AddrIDScriptHash returns the magic prefix bytes for pay-to-script-hash
	// addresses.
	AddrIDScriptHash() [2]byte

	// SaplingPaymentAddressHRP returns the bech32 human-readable part of
	// Sapling payment addresses.
	SaplingPaymentAddressHRP() string
}

// Address represents any type of destination a transaction output may pay.
type Address interface {
	// Address returns the string encoding of the payment address.
	Address() string

	// PaymentScript returns a script to pay a transparent transaction output
	// to the address.  The boolean is false for shielded addresses, which
	// have no such script.
	PaymentScript() ([]byte, bool)
}

// DecodeAddress decodes the string encoding of an address and returns the
// relevant Address if it is a valid encoding for a known address type and is
// for the provided network.
func DecodeAddress(addr string, params AddressParams) (Address, error) {
	switch {
	case probablyBase58Addr(addr):
		return decodeTransparent(addr, params)

	case strings.LastIndexByte(addr, '1') > 0:
		return decodeSapling(addr, params)
	}

	str := fmt.Sprintf("address %q is not a supported type", addr)
	return nil, makeError(ErrUnsupportedAddress, str)
}
