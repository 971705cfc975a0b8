// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// checksumSize is the number of double SHA-256 bytes appended to the
	// payload of a base58 address.
	checksumSize = 4

	// transparentAddrLen is the length of the base58 encoding of a
	// transparent address.
	transparentAddrLen = 35

	// Script opcodes used by the standard transparent output scripts.
	opDup         = 0x76
	opHash160     = 0xa9
	opData20      = 0x14
	opEqual       = 0x87
	opEqualVerify = 0x88
	opCheckSig    = 0xac
)

// probablyBase58Addr returns true when the provided string looks like a
// transparent address as determined by its length and only containing runes
// in the base58 alphabet.
func probablyBase58Addr(s string) bool {
	if len(s) != transparentAddrLen {
		return false
	}

	// The base58 alphabet is:
	//   123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz
	for _, r := range s {
		if r < '1' || r > 'z' ||
			r == 'I' || r == 'O' || r == 'l' ||
			(r > '9' && r < 'A') || (r > 'Z' && r < 'a') {

			return false
		}
	}
	return true
}

// doubleSHA256Checksum returns the first four bytes of the double SHA-256
// hash of the provided data.
func doubleSHA256Checksum(data []byte) [checksumSize]byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	var cksum [checksumSize]byte
	copy(cksum[:], second[:checksumSize])
	return cksum
}

// checkEncode prepends the two version bytes and appends the four byte
// checksum before base58 encoding the result.
func checkEncode(input []byte, version [2]byte) string {
	b := make([]byte, 0, len(version)+len(input)+checksumSize)
	b = append(b, version[:]...)
	b = append(b, input...)
	cksum := doubleSHA256Checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// checkDecode decodes a base58 string with a two byte version prefix and a
// four byte double SHA-256 checksum.
func checkDecode(addr string) ([]byte, [2]byte, error) {
	var version [2]byte
	decoded := base58.Decode(addr)
	if len(decoded) < len(version)+checksumSize {
		str := fmt.Sprintf("address %q is not valid base58check", addr)
		return nil, version, makeError(ErrMalformedAddress, str)
	}
	payload := decoded[:len(decoded)-checksumSize]
	cksum := doubleSHA256Checksum(payload)
	if !bytes.Equal(cksum[:], decoded[len(payload):]) {
		str := fmt.Sprintf("address %q has an invalid checksum", addr)
		return nil, version, makeError(ErrBadAddressChecksum, str)
	}
	copy(version[:], payload[:len(version)])
	return payload[len(version):], version, nil
}

// Hash160 calculates the RIPEMD-160 hash of the SHA-256 hash of the given
// data.
func Hash160(data []byte) []byte {
	h := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(h[:])
	return r.Sum(nil)
}

// AddressPubKeyHash specifies an address that represents a payment
// destination which imposes an encumbrance that requires a secp256k1 public
// key that hashes to the given public key hash along with a valid signature
// for that public key.
type AddressPubKeyHash struct {
	netID [2]byte
	hash  [ripemd160.Size]byte
}

// Ensure AddressPubKeyHash implements the Address interface.
var _ Address = (*AddressPubKeyHash)(nil)

// NewAddressPubKeyHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a secp256k1 public
// key that hashes to the provided 20-byte public key hash.
func NewAddressPubKeyHash(pkHash []byte, params AddressParams) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("public key hash is %d bytes vs required %d bytes",
			len(pkHash), ripemd160.Size)
		return nil, makeError(ErrMalformedAddressData, str)
	}
	addr := &AddressPubKeyHash{netID: params.AddrIDPubKeyHash()}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressPubKeyHashFromPubKey returns the pay-to-pubkey-hash address of
// the provided serialized secp256k1 public key.  The key is hashed in the
// compressed format regardless of how it was provided.
func NewAddressPubKeyHashFromPubKey(serializedPubKey []byte, params AddressParams) (*AddressPubKeyHash, error) {
	pubKey, err := secp256k1.ParsePubKey(serializedPubKey)
	if err != nil {
		str := fmt.Sprintf("invalid secp256k1 public key: %v", err)
		return nil, makeError(ErrMalformedAddressData, str)
	}
	return NewAddressPubKeyHash(Hash160(pubKey.SerializeCompressed()), params)
}

// Address returns the string encoding of the payment address.
//
// This is part of the Address interface implementation.
func (addr *AddressPubKeyHash) Address() string {
	return checkEncode(addr.hash[:], addr.netID)
}

// String returns a human-readable string for the address.
func (addr *AddressPubKeyHash) String() string {
	return addr.Address()
}

// PaymentScript returns a script that pays to the address.
//
// This is part of the Address interface implementation.
func (addr *AddressPubKeyHash) PaymentScript() ([]byte, bool) {
	// The script is of the form:
	//  DUP HASH160 <20-byte hash> EQUALVERIFY CHECKSIG
	script := make([]byte, 0, 25)
	script = append(script, opDup, opHash160, opData20)
	script = append(script, addr.hash[:]...)
	script = append(script, opEqualVerify, opCheckSig)
	return script, true
}

// Hash160 returns the underlying array of the public key hash.
func (addr *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// AddressScriptHash specifies an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the provided script hash along with all of the encumbrances that script
// itself imposes.  Funding stream recipients are usually of this type.
type AddressScriptHash struct {
	netID [2]byte
	hash  [ripemd160.Size]byte
}

// Ensure AddressScriptHash implements the Address interface.
var _ Address = (*AddressScriptHash)(nil)

// NewAddressScriptHashFromHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the provided 20-byte script hash.
func NewAddressScriptHashFromHash(scriptHash []byte, params AddressParams) (*AddressScriptHash, error) {
	if len(scriptHash) != ripemd160.Size {
		str := fmt.Sprintf("script hash is %d bytes vs required %d bytes",
			len(scriptHash), ripemd160.Size)
		return nil, makeError(ErrMalformedAddressData, str)
	}
	addr := &AddressScriptHash{netID: params.AddrIDScriptHash()}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// NewAddressScriptHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the same value as the provided redeem script.
func NewAddressScriptHash(redeemScript []byte, params AddressParams) (*AddressScriptHash, error) {
	return NewAddressScriptHashFromHash(Hash160(redeemScript), params)
}

// Address returns the string encoding of the payment address.
//
// This is part of the Address interface implementation.
func (addr *AddressScriptHash) Address() string {
	return checkEncode(addr.hash[:], addr.netID)
}

// String returns a human-readable string for the address.
func (addr *AddressScriptHash) String() string {
	return addr.Address()
}

// PaymentScript returns a script that pays to the address.
//
// This is part of the Address interface implementation.
func (addr *AddressScriptHash) PaymentScript() ([]byte, bool) {
	// The script is of the form:
	//  HASH160 <20-byte hash> EQUAL
	script := make([]byte, 0, 23)
	script = append(script, opHash160, opData20)
	script = append(script, addr.hash[:]...)
	script = append(script, opEqual)
	return script, true
}

// Hash160 returns the underlying array of the script hash.
func (addr *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// decodeTransparent decodes a base58 transparent address for the network
// identified by the provided parameters.
func decodeTransparent(addr string, params AddressParams) (Address, error) {
	decoded, addrID, err := checkDecode(addr)
	if err != nil {
		return nil, err
	}

	switch addrID {
	case params.AddrIDPubKeyHash():
		return NewAddressPubKeyHash(decoded, params)

	case params.AddrIDScriptHash():
		return NewAddressScriptHashFromHash(decoded, params)
	}

	str := fmt.Sprintf("address %q has prefix %x which is not a transparent "+
		"address prefix of this network", addr, addrID)
	return nil, makeError(ErrWrongNetwork, str)
}
