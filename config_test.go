// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/The1Anubis/Zcents/chaincfg"
	"github.com/The1Anubis/Zcents/internal/netparams"
	"github.com/decred/dcrd/dcrutil/v4"
)

const (
	regTestP2PKH = "RcRWm3K9WkxUXwijG2sYmqarTZNJQkWMbkT"
	regTestP2SH  = "RsK25ULBB2dcxCktTwPsZnDvZr2qK5tnp5C"
	mainNetP2PKH = "ZcNDEKWphPxkktUV9FbbEx9gYEzN2UZosoL"
)

// testConfig loads a config from the provided arguments with file logging
// disabled.
func testConfig(t *testing.T, args ...string) (*config, error) {
	t.Helper()
	args = append([]string{"--nofilelogging", "-d", "critical"}, args...)
	cfg, _, err := loadConfig("zcentsparams", args)
	return cfg, err
}

// TestLoadConfig ensures the network selection and query options are parsed
// and validated as expected.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		networkID string
		height    int64
		adjusts   int
		wantErr   bool
	}{{
		name:      "defaults",
		networkID: chaincfg.MainNetID,
		height:    noHeight,
	}, {
		name:      "testnet with height",
		args:      []string{"--testnet", "--height=1046400"},
		networkID: chaincfg.TestNetID,
		height:    1046400,
	}, {
		name:      "regtest with overrides",
		args:      []string{"--regtest", "--nuparams=zfuture:10", "--fundingstream=4:1:13:", "--regtestpow=32:16:07ff:false"},
		networkID: chaincfg.RegNetID,
		height:    noHeight,
		adjusts:   3,
	}, {
		name:      "regtest toggles",
		args:      []string{"--regtest", "--regtestshieldcoinbase", "--developersetpoolsizezero"},
		networkID: chaincfg.RegNetID,
		height:    noHeight,
		adjusts:   2,
	}, {
		name:    "testnet and regtest",
		args:    []string{"--testnet", "--regtest"},
		wantErr: true,
	}, {
		name:    "negative height",
		args:    []string{"--height=-2"},
		wantErr: true,
	}, {
		name:    "negative subsidy",
		args:    []string{"--subsidy=-1"},
		wantErr: true,
	}, {
		name:    "unexpected argument",
		args:    []string{"extra"},
		wantErr: true,
	}, {
		name:    "unknown flag",
		args:    []string{"--bogus"},
		wantErr: true,
	}, {
		name:    "zero log file size",
		args:    []string{"--maxlogfilesize=0"},
		wantErr: true,
	}, {
		name:    "malformed override",
		args:    []string{"--regtest", "--nuparams=zfuture"},
		wantErr: true,
	}, {
		name:    "invalid debug level",
		args:    []string{"--debuglevel=loud"},
		wantErr: true,
	}}

	for _, test := range tests {
		cfg, err := testConfig(t, test.args...)
		if test.wantErr {
			if err == nil {
				t.Errorf("%q: did not receive expected error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if cfg.networkID != test.networkID {
			t.Errorf("%q: mismatched network -- got %q, want %q", test.name,
				cfg.networkID, test.networkID)
		}
		if cfg.Height != test.height {
			t.Errorf("%q: mismatched height -- got %d, want %d", test.name,
				cfg.Height, test.height)
		}
		if len(cfg.adjustments) != test.adjusts {
			t.Errorf("%q: mismatched adjustments -- got %d, want %d",
				test.name, len(cfg.adjustments), test.adjusts)
		}
	}
}

// TestRegTestToggleAdjustments ensures the coinbase shielding and shielded
// value pool monitoring options adjust the regression test network only.
func TestRegTestToggleAdjustments(t *testing.T) {
	cfg, err := testConfig(t, "--regtestshieldcoinbase",
		"--developersetpoolsizezero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params := chaincfg.RegNetParams()
	for _, adjust := range cfg.adjustments {
		if err := adjust(params); err != nil {
			t.Fatalf("unexpected adjustment error: %v", err)
		}
	}
	if !params.CoinbaseMustBeShielded || !params.ZIP209Enabled {
		t.Errorf("toggles not applied: shielded coinbase %v, zip209 %v",
			params.CoinbaseMustBeShielded, params.ZIP209Enabled)
	}

	for _, adjust := range cfg.adjustments {
		err := adjust(chaincfg.MainNetParams())
		if !errors.Is(err, chaincfg.ErrNotRegTest) {
			t.Errorf("mainnet: got err %v, want %v", err,
				chaincfg.ErrNotRegTest)
		}
	}
}

// TestDefaultLogDir ensures logs default to the application data directory.
func TestDefaultLogDir(t *testing.T) {
	want := filepath.Join(dcrutil.AppDataDir("zcentsparams", false),
		defaultLogDirname)
	if defaultLogDir != want {
		t.Errorf("default log dir %q, want %q", defaultLogDir, want)
	}

	cfg, err := testConfig(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogDir != want {
		t.Errorf("config log dir %q, want %q", cfg.LogDir, want)
	}
}

// TestParseAndSetDebugLevels ensures subsystem log level pairs are validated.
func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"info", false},
		{"CHCF=debug,NETP=warn", false},
		{"ZCPM=trace", false},
		{"verbose", true},
		{"CHCF", true},
		{"CHCF=debug,NONE=info", true},
		{"NETP=loud", true},
	}

	defer setLogLevels(defaultLogLevel)
	for _, test := range tests {
		err := parseAndSetDebugLevels(test.level)
		if gotErr := err != nil; gotErr != test.wantErr {
			t.Errorf("%q: unexpected error result -- got %v, want error %v",
				test.level, err, test.wantErr)
		}
	}
}

// TestParseOverrideErrors ensures malformed override values are rejected
// before any network is constructed.
func TestParseOverrideErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (netparams.Adjustment, error)
		value string
	}{
		{"nuparams missing height", parseNUParams, "nu6"},
		{"nuparams unknown upgrade", parseNUParams, "nu7:10"},
		{"nuparams bad height", parseNUParams, "nu6:ten"},
		{"fundingstream missing fields", parseFundingStream, "0:1:13"},
		{"fundingstream bad id", parseFundingStream, "7:1:13:"},
		{"fundingstream negative id", parseFundingStream, "-1:1:13:"},
		{"fundingstream bad start", parseFundingStream, "0:x:13:"},
		{"fundingstream bad end", parseFundingStream, "0:1:x:"},
		{"disbursement bad id", parseDisbursement, "10:nu6.1:1:" + regTestP2SH},
		{"disbursement unknown upgrade", parseDisbursement, "0:nu9:1:" + regTestP2SH},
		{"disbursement bad amount", parseDisbursement, "0:nu6.1:lots:" + regTestP2SH},
		{"regtestpow missing fields", parseRegTestPow, "0:0:0f"},
		{"regtestpow bad down", parseRegTestPow, "x:0:0f:true"},
		{"regtestpow bad up", parseRegTestPow, "0:x:0f:true"},
		{"regtestpow bad limit", parseRegTestPow, "0:0:zz:true"},
		{"regtestpow bad flag", parseRegTestPow, "0:0:0f:maybe"},
	}

	for _, test := range tests {
		if _, err := test.parse(test.value); err == nil {
			t.Errorf("%q: did not receive expected error", test.name)
		}
	}
}

// TestOverridesApplied ensures parsed overrides modify the selected regression
// test network and are rejected by the other networks.
func TestOverridesApplied(t *testing.T) {
	defer netparams.Reset()

	args := []string{
		"--regtest",
		"--nuparams=zfuture:10",
		"--fundingstream=0:1:13:" + regTestP2PKH + "," + regTestP2SH,
		"--onetimelockboxdisbursement=0:nu6:200000000:" + regTestP2SH,
		"--regtestpow=32:16:07ff:false",
	}
	cfg, err := testConfig(t, args...)
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	params, err := netparams.Select(cfg.networkID, cfg.adjustments...)
	if err != nil {
		t.Fatalf("unexpected select error: %v", err)
	}

	if !params.IsUpgradeActive(10, chaincfg.UpgradeZFuture) {
		t.Error("zfuture is not active at its overridden height")
	}
	fs, ok := params.FundingStream(chaincfg.FSBootstrapProject)
	if !ok {
		t.Fatal("overridden funding stream is not registered")
	}
	if got := params.RecipientAt(fs, 7).Address; got != regTestP2SH {
		t.Errorf("mismatched recipient -- got %s, want %s", got, regTestP2SH)
	}
	if got := params.TotalOnetimeLockboxDisbursement(1); got != 2e8 {
		t.Errorf("mismatched disbursement total -- got %d, want %d", got,
			int64(2e8))
	}
	if params.PowNoRetargeting || params.PowMaxAdjustDown != 32 {
		t.Error("proof of work overrides were not applied")
	}

	// The same overrides must be refused by the main network.
	cfg, err = testConfig(t, "--nuparams=zfuture:10")
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	_, err = netparams.Select(cfg.networkID, cfg.adjustments...)
	if !errors.Is(err, chaincfg.ErrNotRegTest) {
		t.Errorf("mismatched error -- got %v, want %v", err,
			chaincfg.ErrNotRegTest)
	}
}
