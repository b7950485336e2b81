// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package xmlnode provides a minimal read-only DOM over encoding/xml
// together with a restricted absolute-path query language.
//
// The DOM is intentionally small: elements, their XML attributes, and
// their child elements, all in document order. Attributes are copied
// eagerly at parse time, so a returned Element never aliases live
// decoder state.
//
// # Key Types
//
//   - Element: a parsed element with attribute and child accessors
//   - Document: the parsed tree, queried with Document.Query
//
// # Path Language
//
// Query accepts absolute paths made of '/'-separated child element
// steps, e.g. "/scheme/attributes/option". Each step matches child
// elements by tag name; "*" matches any tag. Predicates, axes, and
// attribute selection are not supported and return ErrInvalidPath.
// A path that matches nothing returns an empty slice, not an error.
package xmlnode
