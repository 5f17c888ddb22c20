// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"sort"
	"strings"
)

// Document renders every namespace in order with the classes declared in
// it, then appends the trailer. Classes are taken in qualified name order
// and each class is rendered at most once.
func (r *Renderer) Document(namespaces []string, classes map[string]*ClassLike) string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}

	sort.Strings(names)
	pool := make([]*ClassLike, 0, len(names))
	for _, name := range names {
		pool = append(pool, classes[name])
	}

	var out strings.Builder
	for _, namespace := range namespaces {
		var (
			owned []*ClassLike
			rest  = pool[:0:0]
		)

		for _, class := range pool {
			if class.Namespace == namespace {
				owned = append(owned, class)
				continue
			}

			rest = append(rest, class)
		}

		out.WriteString(r.Namespace(namespace, subNamespaces(namespace, pool), owned))
		pool = rest
	}

	out.WriteString(r.trailer)
	return out.String()
}

// subNamespaces returns sorted distinct namespaces of pool whose name
// contains namespace, excluding namespace itself.
func subNamespaces(namespace string, pool []*ClassLike) []string {
	if namespace == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var subs []string
	for _, class := range pool {
		candidate := class.Namespace
		if candidate == "" || candidate == namespace || !strings.Contains(candidate, namespace) {
			continue
		}

		if _, ok := seen[candidate]; ok {
			continue
		}

		seen[candidate] = struct{}{}
		subs = append(subs, candidate)
	}

	sort.Strings(subs)
	return subs
}
