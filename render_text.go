// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "strings"

// oneLineReplacer strips line breaks and tabs from one-line text.
var oneLineReplacer = strings.NewReplacer("\n", "", "\r", "", "\t", "")

// tab returns depth tab characters.
func tab(depth int) string {
	if depth <= 0 {
		return ""
	}

	return strings.Repeat("\t", depth)
}

// joinList prefixes every item with sep and pad. Empty input yields empty output.
func joinList(items []string, pad, sep string) string {
	if len(items) == 0 {
		return ""
	}

	return sep + pad + strings.Join(items, sep+pad)
}

// oneLine collapses text to a single physical line.
func oneLine(text string) string {
	return oneLineReplacer.Replace(text)
}

// shortDescription returns the symbol summary, optionally collapsed to one line.
func shortDescription(symbol *Symbol, oneliner bool) string {
	if symbol.ShortDescription == "" {
		return ""
	}

	if oneliner {
		return oneLine(symbol.ShortDescription)
	}

	return symbol.ShortDescription
}

// longDescription returns summary and long description separated by a blank line.
func longDescription(symbol *Symbol, oneliner bool) string {
	desc := shortDescription(symbol, false)
	if symbol.LongDescription != "" {
		if desc != "" {
			desc += "\n\n"
		}

		desc += symbol.LongDescription
	}

	if oneliner {
		return oneLine(desc)
	}

	return desc
}

// deprecationNotice returns the deprecated label, with reason unless notice is set.
func deprecationNotice(symbol *Symbol, notice bool) string {
	if !symbol.Deprecated {
		return ""
	}

	reason := strings.TrimSpace(symbol.DeprecationReason)
	if notice || reason == "" {
		return "`@deprecated`"
	}

	return "`@deprecated`: " + reason
}
