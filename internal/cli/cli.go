// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for schemediff.

package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdDump Command = iota
	CmdDiff
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Path is the scheme file to dump, or the candidate side of a
	// diff. Empty means the configured default scheme.
	Path string

	// BaselinePath is the baseline side of a diff. Empty means the
	// configured default scheme.
	BaselinePath string

	// NoColor disables colored output regardless of TTY detection.
	NoColor bool

	// Raw holds the remaining arguments after flag parsing.
	Raw []string
}

const usageText = `schemediff - dump and diff editor color schemes

Schemediff loads an XML color-scheme file (named colors plus named
style attributes) and either dumps its full contents or compares it
against a baseline, classifying every attribute as changed, added,
or removed.

Usage:
  schemediff                   Dump the default scheme
  schemediff PATH              Diff the default scheme against PATH
  schemediff dump PATH         Dump an explicit scheme file
  schemediff diff A B          Diff scheme A (baseline) against B
  schemediff version           Print version information
  schemediff help              Show this help

Flags:
  --no-color      Disable colored output

Diff markers:
  ~ changed       Attribute present in both schemes with different values
  + added         Attribute present only in the candidate
  - removed       Attribute present only in the baseline

Exit codes:
  0  success
  1  scheme file not found or malformed
  2  usage error

The default scheme path comes from ~/.schemediff/config.toml
(scheme.default_path); colored output honors NO_COLOR and TTY
detection.`

// Usage prints the usage text to stdout.
func Usage() {
	fmt.Println(usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("schemediff version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Split out of Parse for
// testability.
func ParseArgs(argv []string) (Command, Args, error) {
	var args Args

	parser := NewArgParser(argv)
	args.NoColor = parser.BoolFlag("no-color")
	args.Raw = parser.PositionalFrom(0)

	if parser.BoolFlag("help") {
		return CmdHelp, args, nil
	}
	if parser.BoolFlag("version") {
		return CmdVersion, args, nil
	}

	positional := args.Raw

	// Zero positional arguments: dump the default scheme.
	if len(positional) == 0 {
		return CmdDump, args, nil
	}

	switch strings.ToLower(positional[0]) {
	case "help", "-h":
		return CmdHelp, args, nil

	case "version", "-v":
		return CmdVersion, args, nil

	case "dump":
		if len(positional) != 2 {
			return CmdHelp, args, &UsageError{Reason: "dump takes exactly one PATH argument"}
		}
		args.Path = positional[1]
		return CmdDump, args, nil

	case "diff":
		if len(positional) != 3 {
			return CmdHelp, args, &UsageError{Reason: "diff takes exactly two PATH arguments"}
		}
		args.BaselinePath = positional[1]
		args.Path = positional[2]
		return CmdDiff, args, nil

	default:
		// A single path argument: diff default against it.
		if len(positional) != 1 {
			return CmdHelp, args, &UsageError{Reason: "expected at most one PATH argument"}
		}
		args.Path = positional[0]
		return CmdDiff, args, nil
	}
}
