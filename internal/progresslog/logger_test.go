// Copyright (c) 2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/decred/slog"
)

var (
	backendLog = slog.NewBackend(io.Discard)
	testLog    = backendLog.Logger("TEST")
)

// TestLogProgress ensures the logging functionality works as expected via a
// test logger.
func TestLogProgress(t *testing.T) {
	tallies := []Tally{
		{Heights: 35000, Transparent: 35000, Lockbox: 35000},
		{Heights: 35000, Transparent: 20000, Shielded: 15000},
		{Heights: 6, Lockbox: 6},
	}

	tests := []struct {
		name         string
		reset        bool
		tally        Tally
		forceLog     bool
		lastLogTime  time.Time
		wantReceived Tally
	}{{
		name:         "round 1, tally 0, last log time < 10 secs ago, not forced",
		tally:        tallies[0],
		lastLogTime:  time.Now(),
		wantReceived: tallies[0],
	}, {
		name:        "round 1, tally 1, last log time < 10 secs ago, not forced",
		tally:       tallies[1],
		lastLogTime: time.Now(),
		wantReceived: Tally{
			Heights:     70000,
			Transparent: 55000,
			Shielded:    15000,
			Lockbox:     35000,
		},
	}, {
		name:         "round 1, tally 2, last log time < 10 secs ago, forced",
		tally:        tallies[2],
		forceLog:     true,
		lastLogTime:  time.Now(),
		wantReceived: Tally{},
	}, {
		name:         "round 2, tally 0, last log time < 10 secs ago, not forced",
		reset:        true,
		tally:        tallies[0],
		lastLogTime:  time.Now(),
		wantReceived: tallies[0],
	}, {
		name:         "round 2, tally 1, last log time > 10 secs ago, not forced",
		tally:        tallies[1],
		lastLogTime:  time.Now().Add(-11 * time.Second),
		wantReceived: Tally{},
	}, {
		name:         "round 2, empty tally, forced",
		forceLog:     true,
		lastLogTime:  time.Now(),
		wantReceived: Tally{},
	}}

	logger := New("Audited", testLog)
	for _, test := range tests {
		if test.reset {
			logger = New("Audited", testLog)
		}
		logger.SetLastLogTime(test.lastLogTime)
		logger.LogProgress(test.tally, 100, test.forceLog)

		want := &Logger{
			subsystemLogger: logger.subsystemLogger,
			progressAction:  logger.progressAction,
			lastLogTime:     logger.lastLogTime,
			received:        test.wantReceived,
		}
		if !reflect.DeepEqual(logger, want) {
			t.Errorf("%s:\nwant: %+v\ngot: %+v\n", test.name, want, logger)
		}
	}
}

// TestPickNoun ensures the singular form is only chosen for a count of one.
func TestPickNoun(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{{0, "heights"}, {1, "height"}, {2, "heights"}}
	for _, test := range tests {
		if got := pickNoun(test.n, "height", "heights"); got != test.want {
			t.Errorf("%d: got %q, want %q", test.n, got, test.want)
		}
	}
}
