// schemediff - dump and diff editor color schemes from the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/jeranaias/schemediff/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse()
	if err != nil {
		cli.PrintError(err)
		cli.Usage()
		os.Exit(cli.ExitCode(err))
	}

	switch cmd {
	case cli.CmdDump:
		err = cli.HandleDump(args)
	case cli.CmdDiff:
		err = cli.HandleDiff(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.Usage()
	}

	if err != nil {
		cli.PrintError(err)
		os.Exit(cli.ExitCode(err))
	}
}
