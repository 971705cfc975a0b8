// Copyright (c) 2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrUnknownNetwork indicates a network name that does not identify one
	// of the supported networks.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrUnknownUpgrade indicates an upgrade identifier or name outside of
	// the closed set of network upgrades.
	ErrUnknownUpgrade = ErrorKind("ErrUnknownUpgrade")

	// ErrInvalidHeight indicates a query was made with a negative block
	// height.
	ErrInvalidHeight = ErrorKind("ErrInvalidHeight")

	// ErrUpgradeOrder indicates the defined activation heights of the
	// upgrade table decrease in upgrade order.
	ErrUpgradeOrder = ErrorKind("ErrUpgradeOrder")

	// ErrUnknownFundingStream indicates a funding stream identifier outside
	// of the closed set of funding streams.
	ErrUnknownFundingStream = ErrorKind("ErrUnknownFundingStream")

	// ErrFundingStreamRange indicates a funding stream whose end height is
	// not after its start height.
	ErrFundingStreamRange = ErrorKind("ErrFundingStreamRange")

	// ErrFundingStreamRecipients indicates the number of recipients of a
	// funding stream does not match the number of funding periods it spans.
	ErrFundingStreamRecipients = ErrorKind("ErrFundingStreamRecipients")

	// ErrFundingStreamOverlap indicates a funding stream starts before the
	// founders reward has ended.
	ErrFundingStreamOverlap = ErrorKind("ErrFundingStreamOverlap")

	// ErrFundingStreamIndex indicates a recipient lookup resolved to a period
	// index outside of the recipient list.  It is only ever raised by a
	// panic since it means the schedule is internally inconsistent.
	ErrFundingStreamIndex = ErrorKind("ErrFundingStreamIndex")

	// ErrFundingPeriodLength indicates a funding period length that is not
	// positive or does not divide the post-Blossom halving interval into the
	// expected number of periods.
	ErrFundingPeriodLength = ErrorKind("ErrFundingPeriodLength")

	// ErrUnknownDisbursement indicates a one-time lockbox disbursement
	// identifier outside of the closed set of disbursements.
	ErrUnknownDisbursement = ErrorKind("ErrUnknownDisbursement")

	// ErrDisbursementAmount indicates a one-time lockbox disbursement with a
	// non-positive amount.
	ErrDisbursementAmount = ErrorKind("ErrDisbursementAmount")

	// ErrDisbursementAddress indicates a one-time lockbox disbursement with
	// no destination.
	ErrDisbursementAddress = ErrorKind("ErrDisbursementAddress")

	// ErrDuplicateDisbursement indicates the same one-time lockbox
	// disbursement identifier was registered more than once.
	ErrDuplicateDisbursement = ErrorKind("ErrDuplicateDisbursement")

	// ErrDisbursementTotal indicates the one-time lockbox disbursements
	// governed by an upgrade do not sum to the documented total.
	ErrDisbursementTotal = ErrorKind("ErrDisbursementTotal")

	// ErrFoundersRewardRange indicates a founders reward address was
	// requested for a height or index outside of the founders reward
	// schedule.
	ErrFoundersRewardRange = ErrorKind("ErrFoundersRewardRange")

	// ErrFoundersRewardAddresses indicates there are more founders reward
	// addresses than blocks paying the founders reward.
	ErrFoundersRewardAddresses = ErrorKind("ErrFoundersRewardAddresses")

	// ErrTargetSpacing indicates the pre-Blossom target spacing is not a
	// positive whole multiple of the post-Blossom target spacing.
	ErrTargetSpacing = ErrorKind("ErrTargetSpacing")

	// ErrPowLimit indicates a proof of work limit that is missing or too
	// large for the difficulty averaging window.
	ErrPowLimit = ErrorKind("ErrPowLimit")

	// ErrGenesisHash indicates the genesis block does not hash to the
	// configured genesis hash.
	ErrGenesisHash = ErrorKind("ErrGenesisHash")

	// ErrCheckpoint indicates checkpoints that do not start at the genesis
	// block or are not in increasing height order.
	ErrCheckpoint = ErrorKind("ErrCheckpoint")

	// ErrNotRegTest indicates a parameter override was attempted on a
	// network other than the regression test network.
	ErrNotRegTest = ErrorKind("ErrNotRegTest")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a network parameter error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
