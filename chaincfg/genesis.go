// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// These constants define the genesis block shared by every network.  Only the
// timestamp differs between networks.
const (
	genesisVersion = 4
	genesisBits    = 0x207fffff

	genesisCoinbaseMessage = "Zcents 2024-01-01 Financial freedom starts " +
		"with every cent"
)

// genesisOutputPubKey is the uncompressed public key paid by the unspendable
// zero value output of the genesis coinbase.
var genesisOutputPubKey = hexDecode("04678afdb0fe5548271967f1a67130b7105cd6a" +
	"828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b" +
	"8d578a4c702b6bf11d5f")

// GenesisBlock is the first block of a network.  It carries a single coinbase
// transaction and is serialized with the Zcash block header format.
type GenesisBlock struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash

	// Commitments is the reserved block commitments field.
	Commitments chainhash.Hash
	Timestamp   time.Time
	Bits        uint32
	Nonce       chainhash.Hash
	Solution    []byte

	// Coinbase is the serialized coinbase transaction.
	Coinbase []byte
}

// newGenesisBlock returns the genesis block with the provided timestamp.
func newGenesisBlock(timestamp time.Time) *GenesisBlock {
	coinbase := genesisCoinbaseTx()
	return &GenesisBlock{
		Version:    genesisVersion,
		MerkleRoot: doubleHashH(coinbase),
		Timestamp:  timestamp,
		Bits:       genesisBits,
		Coinbase:   coinbase,
	}
}

// genesisCoinbaseTx returns the serialized version 1 coinbase transaction of
// the genesis block.
func genesisCoinbaseTx() []byte {
	var sigScript bytes.Buffer
	sigScript.Write([]byte{0x04, 0xff, 0xff, 0x07, 0x1f}) // push 520617983
	sigScript.Write([]byte{0x01, 0x04})                   // push 4
	writePushData(&sigScript, []byte(genesisCoinbaseMessage))

	var pkScript bytes.Buffer
	writePushData(&pkScript, genesisOutputPubKey)
	pkScript.WriteByte(0xac) // OP_CHECKSIG

	var buf bytes.Buffer
	writeUint32(&buf, 1) // version
	writeCompactSize(&buf, 1)
	buf.Write(make([]byte, chainhash.HashSize)) // null prevout hash
	writeUint32(&buf, 0xffffffff)               // null prevout index
	writeCompactSize(&buf, uint64(sigScript.Len()))
	buf.Write(sigScript.Bytes())
	writeUint32(&buf, 0xffffffff) // sequence
	writeCompactSize(&buf, 1)
	binary.Write(&buf, binary.LittleEndian, int64(0)) // value
	writeCompactSize(&buf, uint64(pkScript.Len()))
	buf.Write(pkScript.Bytes())
	writeUint32(&buf, 0) // lock time
	return buf.Bytes()
}

// SerializeHeader returns the serialized block header including the Equihash
// solution.
func (b *GenesisBlock) SerializeHeader() []byte {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(b.Version))
	buf.Write(b.PrevBlock[:])
	buf.Write(b.MerkleRoot[:])
	buf.Write(b.Commitments[:])
	writeUint32(&buf, uint32(b.Timestamp.Unix()))
	writeUint32(&buf, b.Bits)
	buf.Write(b.Nonce[:])
	writeCompactSize(&buf, uint64(len(b.Solution)))
	buf.Write(b.Solution)
	return buf.Bytes()
}

// BlockHash computes the block identifier hash for the genesis block.
func (b *GenesisBlock) BlockHash() chainhash.Hash {
	return doubleHashH(b.SerializeHeader())
}

// doubleHashH returns the double SHA-256 of the provided data.
func doubleHashH(b []byte) chainhash.Hash {
	first := sha256.Sum256(b)
	return chainhash.Hash(sha256.Sum256(first[:]))
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// writeCompactSize writes the variable length integer encoding of v.
func writeCompactSize(buf *bytes.Buffer, v uint64) {
	var b [9]byte
	switch {
	case v < 0xfd:
		buf.WriteByte(byte(v))
	case v <= 0xffff:
		b[0] = 0xfd
		binary.LittleEndian.PutUint16(b[1:], uint16(v))
		buf.Write(b[:3])
	case v <= 0xffffffff:
		b[0] = 0xfe
		binary.LittleEndian.PutUint32(b[1:], uint32(v))
		buf.Write(b[:5])
	default:
		b[0] = 0xff
		binary.LittleEndian.PutUint64(b[1:], v)
		buf.Write(b[:])
	}
}

// writePushData writes a script data push of at most 255 bytes.
func writePushData(buf *bytes.Buffer, data []byte) {
	const opPushData1 = 0x4c
	if len(data) >= opPushData1 {
		buf.WriteByte(opPushData1)
	}
	buf.WriteByte(byte(len(data)))
	buf.Write(data)
}
