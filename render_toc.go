// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"fmt"
	"slices"
	"strings"
)

// TOC renders a numbered, tab-indented table of contents starting at depth.
//
// Children of every entry are ordered by link target and numbered from 1;
// deeper levels are rendered recursively. Class entries carry the
// deprecation label and summary.
func TOC(tree []TOCEntry, depth int) string {
	var out strings.Builder
	writeTOC(&out, tree, depth)
	return out.String()
}

func writeTOC(out *strings.Builder, tree []TOCEntry, depth int) {
	for idx, entry := range tree {
		writeTOCLine(out, entry, idx+1, depth)
		if len(entry.Children) == 0 {
			continue
		}

		children := slices.Clone(entry.Children)
		slices.SortStableFunc(children, func(a, b TOCEntry) int {
			return strings.Compare(a.target(), b.target())
		})

		for childIdx, child := range children {
			writeTOCLine(out, child, childIdx+1, depth+1)
			if len(child.Children) > 0 {
				writeTOC(out, child.Children, depth+2)
			}
		}
	}
}

func writeTOCLine(out *strings.Builder, entry TOCEntry, number, depth int) {
	target := entry.target()
	line := Link(entry.Label, target, entry.Class == nil, target)
	if entry.Class != nil {
		for _, note := range []string{
			deprecationNotice(&entry.Class.Symbol, true),
			shortDescription(&entry.Class.Symbol, true),
		} {
			if note != "" {
				line += " " + note
			}
		}
	}

	fmt.Fprintf(out, "%s%d. %s\n", tab(depth), number, line)
}
