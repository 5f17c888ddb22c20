// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"fmt"
	"strings"
)

// exceptionMarker in a namespace name classifies its classes as exceptions.
const exceptionMarker = "Exception"

// classGroup is one section of a namespace listing.
type classGroup struct {
	heading string
	classes []string
}

// Namespace renders a namespace heading followed by its classes grouped by
// kind. A namespace without classes lists links to subNamespaces instead.
func (r *Renderer) Namespace(name string, subNamespaces []string, classes []*ClassLike) string {
	out := fmt.Sprintf("\n# %s\n", name)
	if len(classes) > 0 {
		return out + r.Classes(classes)
	}

	if len(subNamespaces) == 0 {
		return out
	}

	links := make([]string, 0, len(subNamespaces))
	for _, sub := range subNamespaces {
		links = append(links, Link(sub, sub, true, "Namespace: "+sub))
	}

	return out + "\n * " + strings.Join(links, "\n * ") + "\n"
}

// Classes renders classes in four sections: classes, traits, interfaces
// and exceptions. Empty sections are skipped and input order is kept.
func (r *Renderer) Classes(classes []*ClassLike) string {
	groups := []classGroup{
		{heading: "## Classes"},
		{heading: "## Traits"},
		{heading: "## Interfaces"},
		{heading: "## Exceptions"},
	}

	for _, class := range classes {
		idx := 0
		switch classifyClass(class) {
		case KindTrait:
			idx = 1
		case KindInterface:
			idx = 2
		case KindException:
			idx = 3
		}

		groups[idx].classes = append(groups[idx].classes, r.Class(class))
	}

	var out strings.Builder
	for _, group := range groups {
		if len(group.classes) == 0 {
			continue
		}

		out.WriteString(joinList(append([]string{group.heading}, group.classes...), "", "\n"))
	}

	return out.String()
}

// classifyClass picks the section of a class. Traits win over exceptions,
// exceptions over interfaces; a namespace containing "Exception" marks
// every member as an exception.
func classifyClass(class *ClassLike) Kind {
	switch {
	case class.Kind == KindTrait:
		return KindTrait
	case class.Kind == KindException || strings.Contains(class.Namespace, exceptionMarker):
		return KindException
	case class.Kind == KindInterface:
		return KindInterface
	default:
		return KindClass
	}
}
