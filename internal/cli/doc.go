// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution
// for schemediff.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments
//
// # Usage
//
// Parse and execute commands:
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdDump:
//	    return cli.HandleDump(args)
//	case cli.CmdDiff:
//	    return cli.HandleDiff(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - (no args):  dump the built-in default scheme
//   - <path>:     diff the built-in default against <path>
//   - dump PATH:  dump an explicit scheme file
//   - diff A B:   diff two explicit scheme files
//   - version:    print version information
//   - help:       print usage
package cli
