// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// parser.go - Scheme file parsing: XML document to ColorScheme model.
//
// Traversal rules:
//   - An option with a baseAttributes attribute becomes an inherit
//     reference; any sibling value element is ignored.
//   - Otherwise the first value child's own option children become the
//     property mapping, keys lower-cased.
//   - Missing name/value XML attributes default to "" and are never an
//     error. Duplicate names: last in document order wins.

package scheme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/schemediff/internal/xmlnode"
)

// Fixed query paths into the scheme document.
const (
	attributesPath = "/scheme/attributes/option"
	colorsPath     = "/scheme/colors/option"
)

// ParseFile loads and parses the scheme file at path. A missing file
// is reported with the resolved absolute path and wraps os.ErrNotExist;
// any XML parse failure is returned with no partial scheme.
func ParseFile(path string) (*ColorScheme, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			abs, absErr := filepath.Abs(path)
			if absErr != nil {
				abs = path
			}
			return nil, fmt.Errorf("scheme file not found: %s: %w", abs, os.ErrNotExist)
		}
		return nil, fmt.Errorf("open scheme file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse scheme file %s: %w", path, err)
	}
	return s, nil
}

// Parse reads one scheme document and builds the normalized model.
func Parse(r io.Reader) (*ColorScheme, error) {
	doc, err := xmlnode.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

func fromDocument(doc *xmlnode.Document) (*ColorScheme, error) {
	s := &ColorScheme{
		Attributes: make(map[string]Properties),
		Colors:     make(map[string]string),
	}

	if root := doc.Root(); root.Name() == "scheme" {
		s.Name = root.AttributeOr("name", "")
	}

	attrNodes, err := doc.Query(attributesPath)
	if err != nil {
		return nil, err
	}
	for _, node := range attrNodes {
		name := node.AttributeOr("name", "")
		s.Attributes[name] = parseProperties(node)
	}

	colorNodes, err := doc.Query(colorsPath)
	if err != nil {
		return nil, err
	}
	for _, node := range colorNodes {
		name := node.AttributeOr("name", "")
		s.Colors[name] = node.AttributeOr("value", "")
	}

	return s, nil
}

// parseProperties builds the property mapping for one attribute
// option node.
func parseProperties(node *xmlnode.Element) Properties {
	if base, ok := node.Attribute("baseAttributes"); ok {
		return Properties{InheritKey: base}
	}

	props := Properties{}
	value := node.FirstChild("value")
	if value == nil {
		return props
	}
	for _, opt := range value.Children() {
		key := strings.ToLower(opt.AttributeOr("name", ""))
		props[key] = opt.AttributeOr("value", "")
	}
	return props
}
