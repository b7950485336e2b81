// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// parse.go - Token-loop XML tree builder for the minimal DOM.

package xmlnode

import (
	"encoding/xml"
	"fmt"
	"io"
	"unicode"
)

// Attr is a single XML attribute copied out of the decoder.
type Attr struct {
	Name  string
	Value string
}

// Element is one parsed element node. Elements are immutable after
// Parse returns.
type Element struct {
	name     string
	attrs    []Attr
	children []*Element
	text     string
}

// Document holds the parsed element tree.
type Document struct {
	root *Element
}

// Root returns the document element.
func (d *Document) Root() *Element {
	return d.root
}

// Parse builds the element tree from XML input. Any decoding error is
// returned as-is; no partial document is produced.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	var stack []*Element
	var root *Element
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			elem := &Element{
				name:  t.Name.Local,
				attrs: copyAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, fmt.Errorf("unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].text += string(t)
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}

	return &Document{root: root}, nil
}

func copyAttrs(xmlAttrs []xml.Attr) []Attr {
	if len(xmlAttrs) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		attrs = append(attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}
	return attrs
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Name returns the element tag name.
func (e *Element) Name() string {
	return e.name
}

// Attribute returns the value of a named XML attribute and whether the
// attribute is present on the element.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttributeOr returns the value of a named XML attribute, or fallback
// when the attribute is absent.
func (e *Element) AttributeOr(name, fallback string) string {
	if v, ok := e.Attribute(name); ok {
		return v
	}
	return fallback
}

// HasAttribute reports whether the element carries the named attribute.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

// AttributeMap returns the element attributes as a fresh name-to-value
// map. Later duplicates win, matching map insertion order semantics.
func (e *Element) AttributeMap() map[string]string {
	m := make(map[string]string, len(e.attrs))
	for _, a := range e.attrs {
		m[a.Name] = a.Value
	}
	return m
}

// Children returns the direct child elements in document order.
// The returned slice is a copy.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ChildrenNamed returns the direct child elements with the given tag
// name, in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child element with the given tag
// name, or nil if none exists.
func (e *Element) FirstChild(name string) *Element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Text returns the text directly under the element.
func (e *Element) Text() string {
	return e.text
}
