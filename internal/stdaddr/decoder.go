// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"github.com/decred/dcrd/container/lru"
)

// DefaultDecoderCacheSize is the default number of decoded addresses a
// Decoder retains.
const DefaultDecoderCacheSize = 256

// Decoder decodes addresses for a single network and caches the results.  The
// consensus schedule names the same few recipients at every height, so nearly
// every lookup after the first is served from the cache.
//
// It is safe for concurrent use.
type Decoder struct {
	params AddressParams
	cache  *lru.Map[string, Address]
}

// NewDecoder returns a decoder for the network identified by the provided
// parameters that retains up to cacheSize decoded addresses.
func NewDecoder(params AddressParams, cacheSize uint32) *Decoder {
	return &Decoder{
		params: params,
		cache:  lru.NewMap[string, Address](cacheSize),
	}
}

// Decode decodes the provided address.  Only successfully decoded addresses
// are cached.
func (d *Decoder) Decode(addr string) (Address, error) {
	if a, ok := d.cache.Get(addr); ok {
		return a, nil
	}
	a, err := DecodeAddress(addr, d.params)
	if err != nil {
		return nil, err
	}
	d.cache.Put(addr, a)
	return a, nil
}

// ScriptForRecipient decodes the provided recipient address and returns the
// transparent script paying it.  The shielded flag is set, with a nil script,
// when the recipient is a shielded address.
func (d *Decoder) ScriptForRecipient(addr string) (script []byte, shielded bool, err error) {
	a, err := d.Decode(addr)
	if err != nil {
		return nil, false, err
	}
	script, ok := a.PaymentScript()
	return script, !ok, nil
}

// CachedAddresses returns the number of decoded addresses currently cached.
func (d *Decoder) CachedAddresses() uint32 {
	return d.cache.Len()
}
