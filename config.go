// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/The1Anubis/Zcents/chaincfg"
	"github.com/The1Anubis/Zcents/internal/netparams"
	"github.com/The1Anubis/Zcents/internal/version"
	"github.com/decred/dcrd/dcrutil/v4"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "zcentsparams.log"
	defaultMaxLogFileSize = 10 // MiB
	defaultMaxLogFiles    = 3
	noHeight              = -1
)

var (
	defaultHomeDir = dcrutil.AppDataDir("zcentsparams", false)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for zcentsparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`

	// Network selection.
	TestNet bool `long:"testnet" description:"Use the test network"`
	RegNet  bool `long:"regtest" description:"Use the regression test network"`

	// Queries.
	Height   int64 `long:"height" description:"Print the consensus schedule in effect at the given block height"`
	Subsidy  int64 `long:"subsidy" description:"Block subsidy in atoms used to value the funding stream payments of --height"`
	Upgrades bool  `long:"upgrades" description:"Print the network upgrade activation table"`
	Audit    bool  `long:"audit" description:"Resolve and decode every funding stream recipient over the full range of every stream"`

	// Regression test network overrides.
	NUParams       []string `long:"nuparams" description:"Override the activation height of a network upgrade on the regression test network; may be specified multiple times (<upgrade>:<height>)"`
	FundingStreams []string `long:"fundingstream" description:"Replace a funding stream on the regression test network; an empty address list makes it a lockbox stream; may be specified multiple times (<id>:<start>:<end>:<addr>,<addr>,...)"`
	Disbursements  []string `long:"onetimelockboxdisbursement" description:"Replace a one-time lockbox disbursement on the regression test network; may be specified multiple times (<id>:<upgrade>:<atoms>:<address>)"`
	RegTestPow     string   `long:"regtestpow" description:"Override the proof of work limits of the regression test network (<maxadjustdown>:<maxadjustup>:<hexpowlimit>:<noretargeting>)"`
	ShieldCoinbase bool     `long:"regtestshieldcoinbase" description:"Require coinbase outputs to be spent to a shielded address on the regression test network"`
	PoolSizeZero   bool     `long:"developersetpoolsizezero" description:"Enable shielded value pool monitoring (ZIP 209) on the regression test network"`

	// Logging.
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir         string `long:"logdir" description:"Directory to log output"`
	NoFileLogging  bool   `long:"nofilelogging" description:"Disable file logging"`
	MaxLogFileSize int64  `long:"maxlogfilesize" description:"Maximum size in MiB of a log file before it is rotated"`
	MaxLogFiles    int    `long:"maxlogfiles" description:"Maximum number of rotated log files to keep"`

	// The following fields are set by loadConfig.
	networkID   string
	adjustments []netparams.Adjustment
}

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		subsysID, logLevel, found := strings.Cut(logLevelPair, "=")
		if !found {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}
		setLogLevel(subsysID, logLevel)
	}
	return nil
}

// splitOverride splits a colon separated override into exactly n fields.
func splitOverride(flagName, value string, n int) ([]string, error) {
	fields := strings.SplitN(value, ":", n)
	if len(fields) != n {
		return nil, fmt.Errorf("--%s value %q must have %d colon separated "+
			"fields", flagName, value, n)
	}
	return fields, nil
}

// parseHeightField parses a block height field of an override.
func parseHeightField(flagName, field string) (int64, error) {
	height, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("--%s height %q is invalid: %v", flagName,
			field, err)
	}
	return height, nil
}

// parseNUParams parses a --nuparams value of the form <upgrade>:<height>.
func parseNUParams(value string) (netparams.Adjustment, error) {
	fields, err := splitOverride("nuparams", value, 2)
	if err != nil {
		return nil, err
	}
	id, err := chaincfg.ParseUpgradeID(fields[0])
	if err != nil {
		return nil, fmt.Errorf("--nuparams: %w", err)
	}
	height, err := parseHeightField("nuparams", fields[1])
	if err != nil {
		return nil, err
	}
	return func(p *chaincfg.Params) error {
		return p.UpdateUpgradeActivation(id, height)
	}, nil
}

// parseFundingStreamID parses the numeric identifier of a funding stream.
func parseFundingStreamID(field string) (chaincfg.FundingStreamID, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 || n >= int(chaincfg.NumFundingStreams) {
		return 0, fmt.Errorf("funding stream id %q is not in [0, %d)", field,
			int(chaincfg.NumFundingStreams))
	}
	return chaincfg.FundingStreamID(n), nil
}

// parseFundingStream parses a --fundingstream value of the form
// <id>:<start>:<end>:<addr>,<addr>,...
func parseFundingStream(value string) (netparams.Adjustment, error) {
	fields, err := splitOverride("fundingstream", value, 4)
	if err != nil {
		return nil, err
	}
	id, err := parseFundingStreamID(fields[0])
	if err != nil {
		return nil, fmt.Errorf("--fundingstream: %w", err)
	}
	start, err := parseHeightField("fundingstream", fields[1])
	if err != nil {
		return nil, err
	}
	end, err := parseHeightField("fundingstream", fields[2])
	if err != nil {
		return nil, err
	}
	var addrs []string
	if fields[3] != "" {
		addrs = strings.Split(fields[3], ",")
	}
	return func(p *chaincfg.Params) error {
		return p.UpdateFundingStream(id, start, end, addrs)
	}, nil
}

// parseDisbursement parses a --onetimelockboxdisbursement value of the form
// <id>:<upgrade>:<atoms>:<address>.
func parseDisbursement(value string) (netparams.Adjustment, error) {
	const flagName = "onetimelockboxdisbursement"
	fields, err := splitOverride(flagName, value, 4)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 || n >= int(chaincfg.NumOnetimeDisbursements) {
		return nil, fmt.Errorf("--%s id %q is not in [0, %d)", flagName,
			fields[0], int(chaincfg.NumOnetimeDisbursements))
	}
	id := chaincfg.OnetimeDisbursementID(n)
	upgrade, err := chaincfg.ParseUpgradeID(fields[1])
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagName, err)
	}
	amount, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("--%s amount %q is invalid: %v", flagName,
			fields[2], err)
	}
	addr := fields[3]
	return func(p *chaincfg.Params) error {
		return p.UpdateOnetimeLockboxDisbursement(id, upgrade, amount, addr)
	}, nil
}

// parseRegTestPow parses a --regtestpow value of the form
// <maxadjustdown>:<maxadjustup>:<hexpowlimit>:<noretargeting>.
func parseRegTestPow(value string) (netparams.Adjustment, error) {
	fields, err := splitOverride("regtestpow", value, 4)
	if err != nil {
		return nil, err
	}
	down, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("--regtestpow max adjust down %q is "+
			"invalid: %v", fields[0], err)
	}
	up, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("--regtestpow max adjust up %q is invalid: %v",
			fields[1], err)
	}
	powLimit, err := chaincfg.HexToUint256(fields[2])
	if err != nil {
		return nil, fmt.Errorf("--regtestpow limit %q is invalid: %v",
			fields[2], err)
	}
	noRetargeting, err := strconv.ParseBool(fields[3])
	if err != nil {
		return nil, fmt.Errorf("--regtestpow no retargeting flag %q is "+
			"invalid: %v", fields[3], err)
	}
	return func(p *chaincfg.Params) error {
		return p.UpdateProofOfWorkLimits(down, up, powLimit, noRetargeting)
	}, nil
}

// parseOverrides converts the regression test override options into
// adjustments applied in the order the option kinds are listed: upgrade
// activations first since the other overrides are checked against them.
func (cfg *config) parseOverrides() error {
	var pow []string
	if cfg.RegTestPow != "" {
		pow = []string{cfg.RegTestPow}
	}
	groups := []struct {
		values []string
		parse  func(string) (netparams.Adjustment, error)
	}{
		{cfg.NUParams, parseNUParams},
		{cfg.FundingStreams, parseFundingStream},
		{cfg.Disbursements, parseDisbursement},
		{pow, parseRegTestPow},
	}
	for _, group := range groups {
		for _, value := range group.values {
			adjust, err := group.parse(value)
			if err != nil {
				return err
			}
			cfg.adjustments = append(cfg.adjustments, adjust)
		}
	}

	if cfg.ShieldCoinbase {
		cfg.adjustments = append(cfg.adjustments, (*chaincfg.Params).UpdateCoinbaseMustBeShielded)
	}
	if cfg.PoolSizeZero {
		cfg.adjustments = append(cfg.adjustments, (*chaincfg.Params).UpdateZIP209Enabled)
	}
	return nil
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the provided arguments, exiting for --help and --version
//  3. Validate the network selection and parse the overrides
//  4. Initialize logging
//
// The returned error is an errSuppressUsage when the usage message should not
// be shown.
func loadConfig(appName string, args []string) (*config, []string, error) {
	cfg := config{
		Height:         noHeight,
		DebugLevel:     defaultLogLevel,
		LogDir:         defaultLogDir,
		MaxLogFileSize: defaultMaxLogFileSize,
		MaxLogFiles:    defaultMaxLogFiles,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		return nil, nil, err
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, version.Full())
		os.Exit(0)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	if len(remainingArgs) > 0 {
		str := "%s: unexpected arguments %v"
		return nil, nil, fmt.Errorf(str, appName, remainingArgs)
	}

	switch {
	case cfg.TestNet && cfg.RegNet:
		str := "%s: the testnet and regtest params can't be used together " +
			"-- choose one of the two"
		return nil, nil, fmt.Errorf(str, appName)
	case cfg.TestNet:
		cfg.networkID = chaincfg.TestNetID
	case cfg.RegNet:
		cfg.networkID = chaincfg.RegNetID
	default:
		cfg.networkID = chaincfg.MainNetID
	}

	if cfg.Height < noHeight {
		str := "%s: the block height %d is negative"
		return nil, nil, fmt.Errorf(str, appName, cfg.Height)
	}
	if cfg.Subsidy < 0 {
		str := "%s: the block subsidy %d is negative"
		return nil, nil, fmt.Errorf(str, appName, cfg.Subsidy)
	}
	if cfg.MaxLogFileSize <= 0 || cfg.MaxLogFiles < 0 {
		str := "%s: the log rotation limits must be positive"
		return nil, nil, fmt.Errorf(str, appName)
	}

	if err := cfg.parseOverrides(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", appName, err)
	}

	// Initialize log rotation.  After log rotation has been initialized, the
	// logger variables may be used.
	if !cfg.NoFileLogging {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile, cfg.MaxLogFileSize, cfg.MaxLogFiles); err != nil {
			return nil, nil, errSuppressUsage(err.Error())
		}
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", appName, err)
	}

	return &cfg, remainingArgs, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
