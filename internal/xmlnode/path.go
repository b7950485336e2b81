// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// path.go - Restricted absolute-path evaluation over the minimal DOM.

package xmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath reports that a path expression does not conform to the
// restricted syntax accepted by Query.
var ErrInvalidPath = errors.New("invalid path")

func pathErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidPath}, args...)...)
}

// step is a single child-element step in a compiled path.
type step struct {
	name string
	any  bool
}

// compilePath validates and splits an absolute path expression into
// element steps. The first step names the document element itself.
func compilePath(expr string) ([]step, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, pathErrorf("path cannot be empty")
	}
	if !strings.HasPrefix(expr, "/") {
		return nil, pathErrorf("path must be absolute: %s", expr)
	}
	if strings.Contains(expr, "//") {
		return nil, pathErrorf("path cannot use descendant steps: %s", expr)
	}
	if strings.ContainsAny(expr, "[]") {
		return nil, pathErrorf("path cannot use predicates: %s", expr)
	}
	if strings.ContainsAny(expr, "@()|") {
		return nil, pathErrorf("path cannot select attributes or use functions: %s", expr)
	}

	parts := strings.Split(expr[1:], "/")
	steps := make([]step, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, pathErrorf("path step is missing a node test: %s", expr)
		}
		steps = append(steps, step{name: part, any: part == "*"})
	}
	return steps, nil
}

func (s step) matches(e *Element) bool {
	return s.any || e.name == s.name
}

// Query evaluates an absolute path expression against the document and
// returns all matched elements in document order. A malformed
// expression returns an error wrapping ErrInvalidPath; an expression
// that matches nothing returns an empty result.
func (d *Document) Query(expr string) ([]*Element, error) {
	steps, err := compilePath(expr)
	if err != nil {
		return nil, err
	}

	if d.root == nil || !steps[0].matches(d.root) {
		return nil, nil
	}

	matched := []*Element{d.root}
	for _, st := range steps[1:] {
		var next []*Element
		for _, e := range matched {
			for _, c := range e.children {
				if st.matches(c) {
					next = append(next, c)
				}
			}
		}
		if len(next) == 0 {
			return nil, nil
		}
		matched = next
	}
	return matched, nil
}
