// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Shared rendering helpers for dump and diff output.

package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/schemediff/internal/scheme"
)

// FormatProperties renders one property mapping as a single line.
// Inherit references render as "inherits NAME"; plain mappings render
// as sorted key=value pairs; empty mappings render as "(empty)".
func FormatProperties(props scheme.Properties) string {
	if props.IsInherit() {
		return "inherits " + props.Inherit()
	}
	if len(props) == 0 {
		return "(empty)"
	}

	pairs := make([]string, 0, len(props))
	for _, k := range props.SortedKeys() {
		pairs = append(pairs, k+"="+props[k])
	}
	return strings.Join(pairs, " ")
}

// padName right-pads a name to the given display width. Uses
// runewidth so double-width characters keep columns aligned.
func padName(name string, width int) string {
	return runewidth.FillRight(name, width)
}

// maxNameWidth returns the widest display width among names.
func maxNameWidth(names []string) int {
	max := 0
	for _, n := range names {
		if w := runewidth.StringWidth(n); w > max {
			max = w
		}
	}
	return max
}

// styleForProperties picks the value style: inherit references get
// their own color so they stand out in long attribute lists.
func styleForProperties(props scheme.Properties) func(string) string {
	if props.IsInherit() {
		return func(s string) string { return RenderConditional(InheritStyle, s) }
	}
	return func(s string) string { return RenderConditional(ValueStyle, s) }
}
