// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scheme parses editor color-scheme XML files into a
// normalized in-memory model.
//
// A scheme file carries two option lists:
//
//	/scheme/colors/option[@name,@value]
//	/scheme/attributes/option[@name,@baseAttributes]/value/option[@name,@value]
//
// Colors map a name to a hex string (possibly empty). Attributes map a
// name either to an inherit reference ({"inherit": other}) or to a set
// of lower-cased style properties (foreground, background, ...).
// Inherit references are stored as-is and never resolved.
package scheme
