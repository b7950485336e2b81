// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"

	"github.com/jeranaias/schemediff/internal/diff"
	"github.com/jeranaias/schemediff/internal/scheme"
)

func disableColors(t *testing.T) {
	t.Helper()
	ForceColorsEnabled(false)
	t.Cleanup(func() { ForceColorsEnabled(false) })
}

func TestFormatProperties(t *testing.T) {
	cases := []struct {
		name  string
		props scheme.Properties
		want  string
	}{
		{"inherit", scheme.Properties{scheme.InheritKey: "TEXT"}, "inherits TEXT"},
		{"empty", scheme.Properties{}, "(empty)"},
		{"sorted pairs", scheme.Properties{"foreground": "1", "background": "2"}, "background=2 foreground=1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatProperties(tc.props); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRenderScheme_Plain(t *testing.T) {
	disableColors(t)

	s := &scheme.ColorScheme{
		Name: "Darcula",
		Attributes: map[string]scheme.Properties{
			"TEXT":    {"foreground": "a9b7c6"},
			"KEYWORD": {scheme.InheritKey: "TEXT"},
		},
		Colors: map[string]string{
			"CARET_COLOR": "bbbbbb",
			"GUTTER":      "",
		},
	}

	out := RenderScheme(s, "/tmp/darcula.icls")

	for _, want := range []string{
		"Scheme: Darcula",
		"Colors (2)",
		"CARET_COLOR",
		"(none)",
		"Attributes (2)",
		"inherits TEXT",
		"foreground=a9b7c6",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}

	// Attribute names render sorted: KEYWORD before TEXT.
	if strings.Index(out, "KEYWORD") > strings.LastIndex(out, "TEXT") {
		t.Errorf("Expected KEYWORD before TEXT in output\n%s", out)
	}
}

func TestRenderDiff_Plain(t *testing.T) {
	disableColors(t)

	result := diff.Compare(
		map[string]scheme.Properties{
			"TEXT":    {"foreground": "a9b7c6"},
			"KEYWORD": {"foreground": "cc7832"},
		},
		map[string]scheme.Properties{
			"TEXT":   {"foreground": "ffffff"},
			"STRING": {"foreground": "6a8759"},
		},
	)

	out := RenderDiff(result, "base.icls", "cand.icls")

	for _, want := range []string{
		"baseline:  base.icls",
		"candidate: cand.icls",
		"Changed (1)",
		"~ TEXT",
		"- foreground=a9b7c6",
		"+ foreground=ffffff",
		"Added (1)",
		"+ STRING",
		"Removed (1)",
		"- KEYWORD",
		"1 changed, 1 added, 1 removed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestRenderDiff_EmptyResult(t *testing.T) {
	disableColors(t)

	out := RenderDiff(diff.Result{}, "a.icls", "b.icls")
	if !strings.Contains(out, "No differences") {
		t.Errorf("Expected 'No differences'\n%s", out)
	}
	if strings.Contains(out, "Changed") || strings.Contains(out, "Added") || strings.Contains(out, "Removed") {
		t.Errorf("Expected no section headers for empty diff\n%s", out)
	}
}
