// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"
	"strings"

	"github.com/decred/dcrd/bech32"
)

const (
	// saplingDiversifierSize is the size of the diversifier of a Sapling
	// payment address.
	saplingDiversifierSize = 11

	// saplingTransmissionKeySize is the size of the diversified transmission
	// key of a Sapling payment address.
	saplingTransmissionKeySize = 32

	// SaplingPayloadSize is the size of the raw Sapling payment address.
	SaplingPayloadSize = saplingDiversifierSize + saplingTransmissionKeySize
)

// AddressSapling specifies a shielded Sapling payment address.  Outputs to it
// are Sapling notes, so it has no transparent payment script.
type AddressSapling struct {
	hrp     string
	payload [SaplingPayloadSize]byte
}

// Ensure AddressSapling implements the Address interface.
var _ Address = (*AddressSapling)(nil)

// NewAddressSapling returns a Sapling payment address for the provided
// 43-byte payload, which is the diversifier followed by the diversified
// transmission key.
func NewAddressSapling(payload []byte, params AddressParams) (*AddressSapling, error) {
	if len(payload) != SaplingPayloadSize {
		str := fmt.Sprintf("sapling payment address is %d bytes vs required "+
			"%d bytes", len(payload), SaplingPayloadSize)
		return nil, makeError(ErrMalformedAddressData, str)
	}
	addr := &AddressSapling{hrp: params.SaplingPaymentAddressHRP()}
	copy(addr.payload[:], payload)
	return addr, nil
}

// Address returns the bech32 encoding of the payment address.
//
// This is part of the Address interface implementation.
func (addr *AddressSapling) Address() string {
	conv, err := bech32.ConvertBits(addr.payload[:], 8, 5, true)
	if err != nil {
		return ""
	}
	encoded, err := bech32.Encode(addr.hrp, conv)
	if err != nil {
		return ""
	}
	return encoded
}

// String returns a human-readable string for the address.
func (addr *AddressSapling) String() string {
	return addr.Address()
}

// PaymentScript always returns false since shielded addresses are not paid
// with a transparent script.
//
// This is part of the Address interface implementation.
func (addr *AddressSapling) PaymentScript() ([]byte, bool) {
	return nil, false
}

// Diversifier returns the diversifier of the address.
func (addr *AddressSapling) Diversifier() [saplingDiversifierSize]byte {
	var d [saplingDiversifierSize]byte
	copy(d[:], addr.payload[:saplingDiversifierSize])
	return d
}

// TransmissionKey returns the diversified transmission key of the address.
func (addr *AddressSapling) TransmissionKey() [saplingTransmissionKeySize]byte {
	var pkd [saplingTransmissionKeySize]byte
	copy(pkd[:], addr.payload[saplingDiversifierSize:])
	return pkd
}

// decodeSapling decodes a bech32 Sapling payment address for the network
// identified by the provided parameters.
func decodeSapling(addr string, params AddressParams) (Address, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		str := fmt.Sprintf("failed to decode address %q: %v", addr, err)
		return nil, makeError(ErrMalformedAddress, str)
	}
	if want := params.SaplingPaymentAddressHRP(); !strings.EqualFold(hrp, want) {
		str := fmt.Sprintf("address %q has human-readable part %q, want %q",
			addr, hrp, want)
		return nil, makeError(ErrWrongNetwork, str)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		str := fmt.Sprintf("address %q has malformed data: %v", addr, err)
		return nil, makeError(ErrMalformedAddressData, str)
	}
	return NewAddressSapling(payload, params)
}
