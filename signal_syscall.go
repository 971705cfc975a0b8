// Copyright (c) 2021-2022 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
//go:build aix || android || darwin || dragonfly || freebsd || hurd || illumos || ios || linux || netbsd || openbsd || solaris

package main

import (
	"syscall"
)

// SIGTERM also interrupts an audit in progress so a supervisor stopping the
// process still gets the partial audit progress logged.
func init() {
	interruptSignals = append(interruptSignals, syscall.SIGTERM)
}
