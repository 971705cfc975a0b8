// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/The1Anubis/Zcents/chaincfg"
	"github.com/The1Anubis/Zcents/internal/netparams"
	"github.com/The1Anubis/Zcents/internal/progresslog"
	"github.com/The1Anubis/Zcents/internal/stdaddr"
	"github.com/The1Anubis/Zcents/internal/version"
)

// run performs the queries requested by the provided config against the
// selected network and writes the reports to w.  The upgrade table is written
// when no query is requested.
func run(ctx context.Context, cfg *config, w io.Writer) error {
	if _, err := netparams.Select(cfg.networkID, cfg.adjustments...); err != nil {
		return err
	}
	params := netparams.Current()
	decoder := stdaddr.NewDecoder(params, stdaddr.DefaultDecoderCacheSize)

	queried := false
	if cfg.Upgrades || (cfg.Height == noHeight && !cfg.Audit) {
		if err := writeUpgradeTable(w, params); err != nil {
			return err
		}
		queried = true
	}
	if cfg.Height != noHeight {
		if queried {
			fmt.Fprintln(w)
		}
		err := writeHeightReport(w, params, decoder, cfg.Height, cfg.Subsidy)
		if err != nil {
			return err
		}
	}
	if cfg.Audit {
		progress := progresslog.New("Audited", zcpmLog)
		if err := auditSchedule(ctx, params, decoder, progress); err != nil {
			return err
		}
		fmt.Fprintf(w, "Audit of the %s network passed\n", params.Name)
	}
	return nil
}

// zcentsparamsMain is the real main function for zcentsparams.  It is
// necessary to work around the fact that deferred functions do not run when
// os.Exit() is called.
func zcentsparamsMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, _, err := loadConfig(appName, os.Args[1:])
	if err != nil {
		usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
		fmt.Fprintln(os.Stderr, err)
		var e errSuppressUsage
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	ctx := shutdownListener()

	zcpmLog.Debugf("Version %s (Go version %s %s/%s)", version.Full(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if cfg.NoFileLogging {
		zcpmLog.Debug("File logging disabled")
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		if errors.Is(err, chaincfg.ErrNotRegTest) {
			zcpmLog.Errorf("Overrides require --regtest: %v", err)
			return err
		}
		zcpmLog.Error(err)
		return err
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := zcentsparamsMain(); err != nil {
		os.Exit(1)
	}
}
