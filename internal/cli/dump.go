// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// dump.go - Dump command: render the full contents of one scheme.
//
// Command: dump
// Short:   Print all colors and attributes of a scheme file
//
// Examples:
//   schemediff                       Dump the configured default scheme
//   schemediff dump darcula.icls     Dump an explicit scheme file

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/schemediff/internal/config"
	"github.com/jeranaias/schemediff/internal/scheme"
)

// HandleDump loads one scheme and prints its colors and attributes.
func HandleDump(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ApplyColorMode(cfg.UI.Color, args.NoColor)

	path := args.Path
	if path == "" {
		path = cfg.Scheme.DefaultPath
	}

	s, err := scheme.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Print(RenderScheme(s, path))
	return nil
}

// RenderScheme renders a full scheme dump.
func RenderScheme(s *scheme.ColorScheme, path string) string {
	var sb strings.Builder

	title := s.Name
	if title == "" {
		title = path
	}
	sb.WriteString(RenderConditional(TitleStyle, "Scheme: "+title) + "\n")
	if s.Name != "" {
		sb.WriteString(RenderConditional(DimStyle, path) + "\n")
	}

	colorNames := s.ColorNames()
	sb.WriteString(RenderConditional(SectionStyle, fmt.Sprintf("Colors (%d)", len(colorNames))) + "\n")
	width := maxNameWidth(colorNames)
	for _, name := range colorNames {
		value := s.Colors[name]
		if value == "" {
			value = "(none)"
		}
		sb.WriteString("  " + RenderConditional(LabelStyle, padName(name, width)))
		sb.WriteString("  " + RenderConditional(ValueStyle, value) + "\n")
	}

	attrNames := s.AttributeNames()
	sb.WriteString(RenderConditional(SectionStyle, fmt.Sprintf("Attributes (%d)", len(attrNames))) + "\n")
	width = maxNameWidth(attrNames)
	for _, name := range attrNames {
		props := s.Attributes[name]
		style := styleForProperties(props)
		sb.WriteString("  " + RenderConditional(LabelStyle, padName(name, width)))
		sb.WriteString("  " + style(FormatProperties(props)) + "\n")
	}

	return sb.String()
}
