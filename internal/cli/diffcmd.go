// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diffcmd.go - Diff command: compare two schemes attribute by attribute.
//
// Command: diff
// Short:   Classify every attribute as changed, added, or removed
//
// Examples:
//   schemediff other.icls            Diff the default scheme against other.icls
//   schemediff diff a.icls b.icls    Diff two explicit scheme files
//
// Markers:
//   ~ changed    present in both schemes with different values
//   + added      present only in the candidate
//   - removed    present only in the baseline

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/schemediff/internal/config"
	"github.com/jeranaias/schemediff/internal/diff"
	"github.com/jeranaias/schemediff/internal/scheme"
)

// HandleDiff loads the baseline and candidate schemes, compares their
// attribute mappings, and prints the classified differences.
func HandleDiff(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ApplyColorMode(cfg.UI.Color, args.NoColor)

	baselinePath := args.BaselinePath
	if baselinePath == "" {
		baselinePath = cfg.Scheme.DefaultPath
	}

	baseline, err := scheme.ParseFile(baselinePath)
	if err != nil {
		return err
	}
	candidate, err := scheme.ParseFile(args.Path)
	if err != nil {
		return err
	}

	result := diff.Compare(baseline.Attributes, candidate.Attributes)
	fmt.Print(RenderDiff(result, baselinePath, args.Path))
	return nil
}

// RenderDiff renders a classified diff result.
func RenderDiff(result diff.Result, baselinePath, candidatePath string) string {
	var sb strings.Builder

	sb.WriteString(RenderConditional(TitleStyle, "Scheme diff") + "\n")
	sb.WriteString(RenderConditional(DimStyle, "  baseline:  "+baselinePath) + "\n")
	sb.WriteString(RenderConditional(DimStyle, "  candidate: "+candidatePath) + "\n")

	if result.Empty() {
		sb.WriteString("\n" + result.Summary() + "\n")
		return sb.String()
	}

	if len(result.Changed) > 0 {
		sb.WriteString(RenderConditional(SectionStyle, fmt.Sprintf("Changed (%d)", len(result.Changed))) + "\n")
		for _, e := range result.Changed {
			sb.WriteString("  " + RenderConditional(ChangedStyle, diff.KindChanged.Prefix()+" "+e.Key) + "\n")
			sb.WriteString("    " + RenderConditional(RemovedStyle, "- "+FormatProperties(e.Baseline)) + "\n")
			sb.WriteString("    " + RenderConditional(AddedStyle, "+ "+FormatProperties(e.Candidate)) + "\n")
		}
	}

	if len(result.Added) > 0 {
		sb.WriteString(RenderConditional(SectionStyle, fmt.Sprintf("Added (%d)", len(result.Added))) + "\n")
		for _, e := range result.Added {
			sb.WriteString("  " + RenderConditional(AddedStyle, diff.KindAdded.Prefix()+" "+e.Key))
			sb.WriteString("  " + RenderConditional(ValueStyle, FormatProperties(e.Candidate)) + "\n")
		}
	}

	if len(result.Removed) > 0 {
		sb.WriteString(RenderConditional(SectionStyle, fmt.Sprintf("Removed (%d)", len(result.Removed))) + "\n")
		for _, e := range result.Removed {
			sb.WriteString("  " + RenderConditional(RemovedStyle, diff.KindRemoved.Prefix()+" "+e.Key))
			sb.WriteString("  " + RenderConditional(ValueStyle, FormatProperties(e.Baseline)) + "\n")
		}
	}

	sb.WriteString("\n" + result.Summary() + "\n")
	return sb.String()
}
