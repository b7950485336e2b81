// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package xmlnode

import (
	"strings"
	"testing"
)

const sampleDoc = `<?xml version="1.0"?>
<scheme name="Darcula" version="142">
  <colors>
    <option name="CARET_COLOR" value="bbbbbb"/>
    <option name="GUTTER_BACKGROUND"/>
  </colors>
  <attributes>
    <option name="TEXT">
      <value>
        <option name="FOREGROUND" value="a9b7c6"/>
        <option name="BACKGROUND" value="2b2b2b"/>
      </value>
    </option>
  </attributes>
</scheme>`

func TestParse_BuildsTree(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	root := doc.Root()
	if root.Name() != "scheme" {
		t.Errorf("Expected root 'scheme', got '%s'", root.Name())
	}
	if got := root.AttributeOr("name", ""); got != "Darcula" {
		t.Errorf("Expected name 'Darcula', got '%s'", got)
	}
	if len(root.Children()) != 2 {
		t.Errorf("Expected 2 children, got %d", len(root.Children()))
	}
}

func TestParse_MalformedXML(t *testing.T) {
	_, err := Parse(strings.NewReader("<scheme><colors></scheme>"))
	if err == nil {
		t.Fatal("Expected error for mismatched tags")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if err == nil {
		t.Fatal("Expected error for empty input")
	}
}

func TestParse_TrailingGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader("<scheme/><extra/>"))
	if err == nil {
		t.Fatal("Expected error for content after document end")
	}
}

func TestElement_Attribute(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	colors := doc.Root().FirstChild("colors")
	if colors == nil {
		t.Fatal("Expected colors child")
	}

	opts := colors.ChildrenNamed("option")
	if len(opts) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(opts))
	}

	if v, ok := opts[0].Attribute("value"); !ok || v != "bbbbbb" {
		t.Errorf("Expected value 'bbbbbb' present, got '%s' (present=%v)", v, ok)
	}
	if _, ok := opts[1].Attribute("value"); ok {
		t.Error("Expected value attribute to be absent")
	}
	if got := opts[1].AttributeOr("value", ""); got != "" {
		t.Errorf("Expected empty fallback, got '%s'", got)
	}
}

func TestElement_AttributeMap(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<a x="1" y="2" x="3"/>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	m := doc.Root().AttributeMap()
	if m["y"] != "2" {
		t.Errorf("Expected y=2, got '%s'", m["y"])
	}
	// Duplicate attribute names: the later one wins in the map view.
	if m["x"] != "3" {
		t.Errorf("Expected x=3, got '%s'", m["x"])
	}
}

func TestElement_ChildrenDocumentOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<r><a n="1"/><b/><a n="2"/></r>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	as := doc.Root().ChildrenNamed("a")
	if len(as) != 2 {
		t.Fatalf("Expected 2 'a' children, got %d", len(as))
	}
	if as[0].AttributeOr("n", "") != "1" || as[1].AttributeOr("n", "") != "2" {
		t.Error("Children not in document order")
	}
}
