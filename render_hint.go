// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "strings"

const (
	// variadicReferenceURL documents variable-length argument lists.
	variadicReferenceURL = "http://php.net/manual/en/functions.arguments.php#functions.variable-arg-list"
	// iterableReferenceURL documents the iterable type declaration.
	iterableReferenceURL = "http://php.net/manual/en/functions.arguments.php#functions.arguments.type-declaration.types"
	// returnHintSeparator joins alternatives without breaking table cells.
	returnHintSeparator = " ***v*** "
	// implicitHint is used when a parameter or return value declares nothing.
	implicitHint = "mixed"
)

// paramHint renders parameter hints joined by spaces.
func paramHint(hints []TypeHint, link bool) string {
	return joinHints(hints, link, " ")
}

// returnHint renders return hints joined by an emphasized "v" (or).
func returnHint(hints []TypeHint, link bool) string {
	return joinHints(hints, link, returnHintSeparator)
}

// joinHints renders each hint and joins them with sep.
func joinHints(hints []TypeHint, link bool, sep string) string {
	if len(hints) == 0 {
		return implicitHint
	}

	rendered := make([]string, 0, len(hints))
	for _, hint := range hints {
		rendered = append(rendered, formatHint(hint, link))
	}

	return strings.Join(rendered, sep)
}

// formatHint renders one hint, linking class references inside a namespace.
func formatHint(hint TypeHint, link bool) string {
	switch hint.Kind {
	case HintVariadic:
		if link {
			return "[" + variadicSuffix + "](" + variadicReferenceURL + ")"
		}

		return variadicSuffix
	case HintIterable:
		if link {
			return "[" + iterableName + "](" + iterableReferenceURL + ")"
		}

		return iterableName
	case HintClass:
		name := shortName(hint.Name)
		if link && namespaceOf(hint.Name) != "" {
			return Link(name, hint.Name, false, "")
		}

		return name
	default:
		return hint.Name
	}
}
