// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// logInterval is the minimum time between unforced progress messages.
const logInterval = 10 * time.Second

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Tally holds the work done over a span of heights.
type Tally struct {
	Heights     uint64
	Transparent uint64
	Shielded    uint64
	Lockbox     uint64
}

// add accumulates the provided tally.
func (t *Tally) add(o Tally) {
	t.Heights += o.Heights
	t.Transparent += o.Transparent
	t.Shielded += o.Shielded
	t.Lockbox += o.Lockbox
}

// Logger provides periodic logging of progress towards some action such as
// auditing every height of a funding stream.  It is safe for concurrent use,
// so several walks may share one logger.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// received accumulates the work done between log statements.
	received Tally
}

// New returns a new progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the provided tally and periodically (every 10
// seconds) logs an information message to show progress to the user along
// with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The progress message is templated as follows:
//
//	{progressAction} {numHeights} {heights|height} in the last {timePeriod}
//	({numTransparent} transparent, {numShielded} shielded,
//	{numLockbox} lockbox {payments|payment}, height {lastHeight})
func (l *Logger) LogProgress(tally Tally, lastHeight int64, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	l.received.add(tally)
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < logInterval {
		return
	}
	if l.received.Heights == 0 {
		l.lastLogTime = now
		return
	}

	r := &l.received
	numPayments := r.Transparent + r.Shielded + r.Lockbox
	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%d transparent, "+
		"%d shielded, %d lockbox %s, height %d)", l.progressAction,
		r.Heights, pickNoun(r.Heights, "height", "heights"),
		duration.Seconds(), r.Transparent, r.Shielded, r.Lockbox,
		pickNoun(numPayments, "payment", "payments"), lastHeight)

	l.received = Tally{}
	l.lastLogTime = now
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
