// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package xmlnode

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestQuery_MatchesInDocumentOrder(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	nodes, err := doc.Query("/scheme/colors/option")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].AttributeOr("name", "") != "CARET_COLOR" {
		t.Errorf("Expected CARET_COLOR first, got '%s'", nodes[0].AttributeOr("name", ""))
	}
	if nodes[1].AttributeOr("name", "") != "GUTTER_BACKGROUND" {
		t.Errorf("Expected GUTTER_BACKGROUND second, got '%s'", nodes[1].AttributeOr("name", ""))
	}
}

func TestQuery_NoMatchIsEmptyNotError(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	nodes, err := doc.Query("/scheme/fonts/option")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("Expected no matches, got %d", len(nodes))
	}
}

func TestQuery_WrongRootIsEmpty(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	nodes, err := doc.Query("/theme/colors/option")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("Expected no matches, got %d", len(nodes))
	}
}

func TestQuery_Wildcard(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	nodes, err := doc.Query("/scheme/*/option")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	// 2 color options + 1 attribute option
	if len(nodes) != 3 {
		t.Errorf("Expected 3 matches, got %d", len(nodes))
	}
}

func TestQuery_InvalidExpressions(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	cases := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"relative", "scheme/colors"},
		{"descendant", "/scheme//option"},
		{"predicate", "/scheme/colors/option[1]"},
		{"attribute", "/scheme/colors/option/@name"},
		{"trailing slash", "/scheme/colors/"},
		{"double slash middle", "/scheme//colors/option"},
		{"function", "/scheme/count()"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := doc.Query(tc.expr)
			if err == nil {
				t.Fatalf("Expected error for %q", tc.expr)
			}
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("Expected ErrInvalidPath, got %v", err)
			}
		})
	}
}
