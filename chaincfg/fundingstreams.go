// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// FundingPeriodsPerHalving is the number of funding periods in one
// post-Blossom halving interval.
const FundingPeriodsPerHalving = 48

// FundingStreamID identifies a funding stream.  The identifiers form a closed
// set and active streams are always reported in identifier order.
type FundingStreamID int

// These constants define the known funding streams.
const (
	FSBootstrapProject FundingStreamID = iota
	FSFoundation
	FSMajorGrants
	FSCommunityGrants
	FSDeferredLockbox
	FSCommunityGrantsH3
	FSCoinholderFundH3

	// NumFundingStreams is the number of known funding streams.  It must be
	// the final entry.
	NumFundingStreams
)

// FundingStreamInfo describes the recipient and the share of the block
// subsidy of a funding stream.
type FundingStreamInfo struct {
	Recipient   string
	Numerator   int64
	Denominator int64
}

// Value returns the portion of the provided block subsidy that is paid to the
// funding stream.
func (fsi *FundingStreamInfo) Value(blockSubsidy int64) int64 {
	return blockSubsidy * fsi.Numerator / fsi.Denominator
}

var fundingStreamInfo = [NumFundingStreams]FundingStreamInfo{
	FSBootstrapProject:  {"Bootstrap Project", 7, 100},
	FSFoundation:        {"Foundation", 5, 100},
	FSMajorGrants:       {"Major Grants", 8, 100},
	FSCommunityGrants:   {"Community Grants", 8, 100},
	FSDeferredLockbox:   {"Deferred Lockbox", 12, 100},
	FSCommunityGrantsH3: {"Community Grants to third halving", 8, 100},
	FSCoinholderFundH3:  {"Coinholder-Controlled Fund", 12, 100},
}

// String returns the name of the funding stream recipient.
func (id FundingStreamID) String() string {
	if id < 0 || id >= NumFundingStreams {
		return fmt.Sprintf("Unknown FundingStreamID (%d)", int(id))
	}
	return fundingStreamInfo[id].Recipient
}

// Info returns the recipient and subsidy share of the funding stream.
func (id FundingStreamID) Info() FundingStreamInfo {
	checkFundingStreamID(id)
	return fundingStreamInfo[id]
}

// checkFundingStreamID panics when the provided identifier is outside of the
// closed set of funding streams.
func checkFundingStreamID(id FundingStreamID) {
	if id < 0 || id >= NumFundingStreams {
		str := fmt.Sprintf("funding stream id %d is out of range", int(id))
		panic(makeError(ErrUnknownFundingStream, str))
	}
}

// Recipient is the destination of a funding stream for one funding period.
// The zero value is the lockbox, a protocol-internal pool with no external
// destination.
type Recipient struct {
	Address string
}

// LockboxRecipient is the recipient of every period of a lockbox stream.
var LockboxRecipient = Recipient{}

// IsLockbox returns whether the recipient is the protocol-internal lockbox.
func (r Recipient) IsLockbox() bool {
	return r.Address == ""
}

// String returns the address of the recipient or "lockbox".
func (r Recipient) String() string {
	if r.IsLockbox() {
		return "lockbox"
	}
	return r.Address
}

// FundingStream is a time-bounded allocation of part of the block subsidy to a
// recipient that may change every funding period.
type FundingStream struct {
	ID FundingStreamID

	// StartHeight is the first block height that pays the stream.
	StartHeight int64

	// EndHeight is the first block height after StartHeight that no longer
	// pays the stream.
	EndHeight int64

	// Recipients holds one recipient per funding period.
	Recipients []Recipient

	// Lockbox marks a stream whose value accrues to the lockbox.
	Lockbox bool
}

// IsActive returns whether the stream pays at the given block height.
func (fs *FundingStream) IsActive(height int64) bool {
	return fs.StartHeight <= height && height < fs.EndHeight
}

// clone returns a deep copy of the stream so callers may not alter the
// registered schedule through returned values.
func (fs *FundingStream) clone() *FundingStream {
	c := *fs
	c.Recipients = append([]Recipient(nil), fs.Recipients...)
	return &c
}

// FundingStreamElement pairs an active funding stream with the recipient it
// pays at a specific height.
type FundingStreamElement struct {
	Stream    *FundingStream
	Recipient Recipient
}

// FundingPeriodIndex returns the index of the funding period containing the
// given height for a stream that starts at startHeight.
func (p *Params) FundingPeriodIndex(startHeight, height int64) int64 {
	return (height - startHeight) / p.FundingPeriodLength
}

// NumFundingPeriods returns the number of funding periods, including a partial
// final one, spanned by the range [startHeight, endHeight).
func (p *Params) NumFundingPeriods(startHeight, endHeight int64) int64 {
	span := endHeight - startHeight
	return (span + p.FundingPeriodLength - 1) / p.FundingPeriodLength
}

// validateFundingStream ensures the stream has a non-empty range, exactly one
// recipient per funding period, and does not overlap the founders reward.
func (p *Params) validateFundingStream(fs *FundingStream) error {
	if fs.StartHeight < 0 || fs.EndHeight <= fs.StartHeight {
		str := fmt.Sprintf("funding stream %s has invalid range [%d, %d)",
			fs.ID, fs.StartHeight, fs.EndHeight)
		return makeError(ErrFundingStreamRange, str)
	}
	if p.FundingPeriodLength <= 0 {
		str := fmt.Sprintf("funding period length %d is not positive",
			p.FundingPeriodLength)
		return makeError(ErrFundingPeriodLength, str)
	}

	want := p.NumFundingPeriods(fs.StartHeight, fs.EndHeight)
	if int64(len(fs.Recipients)) != want {
		str := fmt.Sprintf("funding stream %s over [%d, %d) has %d "+
			"recipients, want one for each of %d funding periods", fs.ID,
			fs.StartHeight, fs.EndHeight, len(fs.Recipients), want)
		return makeError(ErrFundingStreamRecipients, str)
	}
	for i, r := range fs.Recipients {
		if r.IsLockbox() != fs.Lockbox {
			str := fmt.Sprintf("funding stream %s recipient %d (%s) does "+
				"not match the stream lockbox flag %v", fs.ID, i, r,
				fs.Lockbox)
			return makeError(ErrFundingStreamRecipients, str)
		}
	}

	if len(p.FoundersRewardAddresses) > 0 {
		last := p.LastFoundersRewardBlockHeight(fs.StartHeight)
		if fs.StartHeight <= last {
			str := fmt.Sprintf("funding stream %s starts at height %d "+
				"which is not after the last founders reward height %d",
				fs.ID, fs.StartHeight, last)
			return makeError(ErrFundingStreamOverlap, str)
		}
	}
	return nil
}

// setFundingStream validates and stores a funding stream, replacing any
// existing stream with the same identifier.
func (p *Params) setFundingStream(fs *FundingStream) error {
	if fs.ID < 0 || fs.ID >= NumFundingStreams {
		str := fmt.Sprintf("funding stream id %d is out of range", int(fs.ID))
		return makeError(ErrUnknownFundingStream, str)
	}
	if err := p.validateFundingStream(fs); err != nil {
		return err
	}
	p.fundingStreams[fs.ID] = fs.clone()
	log.Debugf("%s: registered funding stream %s over [%d, %d) with %d "+
		"funding periods", p.Name, fs.ID, fs.StartHeight, fs.EndHeight,
		len(fs.Recipients))
	return nil
}

// AddFundingStream registers a funding stream paying the provided addresses,
// one per funding period, over the range [startHeight, endHeight).  An error
// is returned when the range is empty or the number of addresses does not
// match the number of funding periods in the range.
func (p *Params) AddFundingStream(id FundingStreamID, startHeight, endHeight int64, addresses []string) error {
	recipients := make([]Recipient, 0, len(addresses))
	for i, addr := range addresses {
		if addr == "" {
			str := fmt.Sprintf("funding stream %s address %d is empty", id, i)
			return makeError(ErrFundingStreamRecipients, str)
		}
		recipients = append(recipients, Recipient{Address: addr})
	}
	return p.setFundingStream(&FundingStream{
		ID:          id,
		StartHeight: startHeight,
		EndHeight:   endHeight,
		Recipients:  recipients,
	})
}

// AddLockboxStream registers a funding stream over the range
// [startHeight, endHeight) whose value accrues to the lockbox for every
// funding period.
func (p *Params) AddLockboxStream(id FundingStreamID, startHeight, endHeight int64) error {
	var recipients []Recipient
	if endHeight > startHeight && p.FundingPeriodLength > 0 {
		n := p.NumFundingPeriods(startHeight, endHeight)
		recipients = make([]Recipient, n)
	}
	return p.setFundingStream(&FundingStream{
		ID:          id,
		StartHeight: startHeight,
		EndHeight:   endHeight,
		Recipients:  recipients,
		Lockbox:     true,
	})
}

// FundingStream returns a copy of the registered funding stream with the
// provided identifier, if any.
func (p *Params) FundingStream(id FundingStreamID) (*FundingStream, bool) {
	checkFundingStreamID(id)
	fs := p.fundingStreams[id]
	if fs == nil {
		return nil, false
	}
	return fs.clone(), true
}

// FundingStreams returns copies of every registered funding stream in
// identifier order.
func (p *Params) FundingStreams() []*FundingStream {
	var streams []*FundingStream
	for _, fs := range p.fundingStreams {
		if fs != nil {
			streams = append(streams, fs.clone())
		}
	}
	return streams
}

// ActiveFundingStreams returns copies of every registered funding stream that
// pays at the given height in identifier order.
//
// It panics when the height is negative.
func (p *Params) ActiveFundingStreams(height int64) []*FundingStream {
	checkHeight(height)

	var active []*FundingStream
	for _, fs := range p.fundingStreams {
		if fs != nil && fs.IsActive(height) {
			active = append(active, fs.clone())
		}
	}
	return active
}

// RecipientAt returns the recipient the provided stream pays at the given
// height.
//
// It panics when the height is outside of the half-open stream range
// [StartHeight, EndHeight), including the tail of a partial final funding
// period.
func (p *Params) RecipientAt(fs *FundingStream, height int64) Recipient {
	checkHeight(height)

	idx := p.FundingPeriodIndex(fs.StartHeight, height)
	if height < fs.StartHeight || height >= fs.EndHeight ||
		idx >= int64(len(fs.Recipients)) {
		str := fmt.Sprintf("funding stream %s has no recipient for height %d "+
			"(period index %d, %d recipients)", fs.ID, height, idx,
			len(fs.Recipients))
		panic(makeError(ErrFundingStreamIndex, str))
	}
	return fs.Recipients[idx]
}

// ActiveFundingStreamElements returns every funding stream that pays at the
// given height together with the recipient it pays.
func (p *Params) ActiveFundingStreamElements(height int64) []FundingStreamElement {
	active := p.ActiveFundingStreams(height)
	if len(active) == 0 {
		return nil
	}
	elements := make([]FundingStreamElement, 0, len(active))
	for _, fs := range active {
		elements = append(elements, FundingStreamElement{
			Stream:    fs,
			Recipient: p.RecipientAt(fs, height),
		})
	}
	return elements
}
