// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"fmt"
	"net/url"
	"strings"
)

// externalSearchURL is the fallback destination for names outside the documented package.
const externalSearchURL = "https://www.google.no/search?q="

// anchorReplacer drops namespace separators and turns spaces into hyphens.
var anchorReplacer = strings.NewReplacer(namespaceSeparator, "", " ", "-")

// Link returns a markdown link to a documented symbol, a namespace or an
// external search for target.
//
// Classes are anchored as "#classname-namespace" and methods as
// "#method-namespaceclass", matching headings produced by the renderer.
// Namespaces keep their full name and require namespace set to true.
// Title, when set, becomes the link hover text.
func Link(text, target string, namespace bool, title string) string {
	if title != "" {
		title = ` "` + title + `"`
	}

	if !namespace {
		idx := strings.LastIndex(target, namespaceSeparator)
		if idx < 0 {
			return fmt.Sprintf("[%s](%s%s%s)", text, externalSearchURL, rawURLEncode(target), title)
		}

		target = target[idx:] + " " + target[:idx]
	}

	return fmt.Sprintf("[%s](%s%s)", text, anchor(target), title)
}

// anchor converts a link target into an in-page anchor.
func anchor(target string) string {
	return "#" + strings.ToLower(anchorReplacer.Replace(target))
}

// rawURLEncode percent-encodes everything except RFC 3986 unreserved characters.
func rawURLEncode(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
