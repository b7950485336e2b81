// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// scheme.go - Normalized color-scheme model.

package scheme

import "sort"

// InheritKey is the reserved property key marking an attribute as an
// unresolved reference to another attribute.
const InheritKey = "inherit"

// Properties holds the style properties of one attribute, keyed by
// lower-cased property name. An inherit reference is exactly
// {InheritKey: otherAttributeName}.
type Properties map[string]string

// IsInherit reports whether the properties are an inherit reference.
func (p Properties) IsInherit() bool {
	_, ok := p[InheritKey]
	return ok
}

// Inherit returns the referenced attribute name, or "" if the
// properties are not an inherit reference.
func (p Properties) Inherit() string {
	return p[InheritKey]
}

// Equal reports structural equality: same keys, same values,
// order-independent.
func (p Properties) Equal(other Properties) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// SortedKeys returns the property keys in ascending order.
func (p Properties) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ColorScheme is the parsed result of one scheme file. It is built
// once by Parse and never mutated afterwards.
type ColorScheme struct {
	// Name is the scheme's own name attribute, if any.
	Name string

	// Attributes maps attribute name to its property mapping.
	Attributes map[string]Properties

	// Colors maps color name to a hex color string (possibly empty).
	Colors map[string]string
}

// AttributeNames returns the attribute names in ascending order.
func (s *ColorScheme) AttributeNames() []string {
	names := make([]string, 0, len(s.Attributes))
	for name := range s.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorNames returns the color names in ascending order.
func (s *ColorScheme) ColorNames() []string {
	names := make([]string, 0, len(s.Colors))
	for name := range s.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
