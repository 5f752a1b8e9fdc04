// Copyright (c) 2026 The Foundry developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	chainFlag = cli.StringFlag{
		Name:  "chain",
		Usage: "the chain to use (mainnet|solo|tendermint|corgi|beagle) or the path to a scheme file",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path of the TOML config file",
	}
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Usage: "directory for chain databases",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: -1,
		Usage: "log verbosity (0-4)",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "enable prometheus metrics collection",
	}
)
