// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
zcentsparams resolves the consensus schedule of a Zcents network.

It selects the main, test or regression test network, applies any regression
test overrides, validates the result and then reports the network upgrade
activations, the funding stream recipients and one-time lockbox disbursements
in effect at a block height, or audits the full schedule by resolving and
decoding the recipient of every height of every funding stream.

Reports are written to standard output.  Log messages are written to standard
error and, unless disabled, to a rotated log file.

Usage:

	zcentsparams [OPTIONS]

Application Options:

	-V, --version                     Display version information and exit
	    --testnet                     Use the test network
	    --regtest                     Use the regression test network
	    --height=                     Print the consensus schedule in effect
	                                  at the given block height
	    --subsidy=                    Block subsidy in atoms used to value the
	                                  funding stream payments of --height
	    --upgrades                    Print the network upgrade activation
	                                  table
	    --audit                       Resolve and decode every funding stream
	                                  recipient over the full range of every
	                                  stream
	    --nuparams=                   Override the activation height of a
	                                  network upgrade on the regression test
	                                  network (<upgrade>:<height>)
	    --fundingstream=              Replace a funding stream on the
	                                  regression test network; an empty
	                                  address list makes it a lockbox stream
	                                  (<id>:<start>:<end>:<addr>,<addr>,...)
	    --onetimelockboxdisbursement= Replace a one-time lockbox disbursement
	                                  on the regression test network
	                                  (<id>:<upgrade>:<atoms>:<address>)
	    --regtestpow=                 Override the proof of work limits of the
	                                  regression test network
	                                  (<maxadjustdown>:<maxadjustup>:<hexpowlimit>:<noretargeting>)
	-d, --debuglevel=                 Logging level for all subsystems {trace,
	                                  debug, info, warn, error, critical} --
	                                  You may also specify
	                                  <subsystem>=<level>,<subsystem2>=<level>,...
	                                  to set the log level for individual
	                                  subsystems -- Use show to list available
	                                  subsystems (info)
	    --logdir=                     Directory to log output
	    --nofilelogging               Disable file logging
	    --maxlogfilesize=             Maximum size in MiB of a log file before
	                                  it is rotated (10)
	    --maxlogfiles=                Maximum number of rotated log files to
	                                  keep (3)

Help Options:

	-h, --help                        Show this help message

When no query is requested the upgrade activation table is printed.  The
overrides are only accepted together with --regtest.
*/
package main
