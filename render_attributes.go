// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "strings"

// methodAccess lists method modifiers in fixed order: abstract, final,
// protected, private, public, static.
func methodAccess(method *Method) string {
	modifiers := make([]string, 0, 4)
	if method.Abstract {
		modifiers = append(modifiers, "abstract")
	}

	if method.Final {
		modifiers = append(modifiers, "final")
	}

	if method.Visibility == VisibilityProtected {
		modifiers = append(modifiers, string(VisibilityProtected))
	}

	if method.Visibility == VisibilityPrivate {
		modifiers = append(modifiers, string(VisibilityPrivate))
	}

	if method.Visibility == VisibilityPublic {
		modifiers = append(modifiers, string(VisibilityPublic))
	}

	if method.Static {
		modifiers = append(modifiers, "static")
	}

	return strings.Join(modifiers, " ")
}

// classNotes returns modifier and relationship notes of a class.
func classNotes(class *ClassLike) []string {
	notes := make([]string, 0, 4)
	if deprecated := deprecationNotice(&class.Symbol, false); deprecated != "" {
		notes = append(notes, deprecated)
	}

	if class.Abstract {
		notes = append(notes, "Class is abstract")
	}

	if class.Final {
		notes = append(notes, "Class is final")
	}

	if class.Parent != "" {
		notes = append(notes, "Class extends "+Link(class.Parent, class.Parent, false, ""))
	}

	if relation := relationNote("Class implements", class.Interfaces); relation != "" {
		notes = append(notes, relation)
	}

	if relation := relationNote("Class uses", class.Traits); relation != "" {
		notes = append(notes, relation)
	}

	return notes
}

// relationNote renders one linked name inline and several as a nested list.
func relationNote(label string, names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return label + " " + Link(names[0], names[0], false, "")
	}

	links := make([]string, 0, len(names))
	for _, name := range names {
		links = append(links, Link(name, name, false, ""))
	}

	return label + joinList(links, "* ", "\n\t")
}
