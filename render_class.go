// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"fmt"
	"strings"
)

// Class renders one class section: heading, notes, description,
// see-also list and methods.
func (r *Renderer) Class(class *ClassLike) string {
	var out strings.Builder

	fmt.Fprintf(&out, "\n### %s `%s`\n", class.ShortName(), class.Namespace)

	if notes := classNotes(class); len(notes) > 0 {
		out.WriteString("\n")
		out.WriteString(joinList(notes, "* ", "\n"))
		out.WriteString("\n")
	}

	if desc := longDescription(&class.Symbol, false); desc != "" {
		out.WriteString("\n")
		out.WriteString(desc)
		out.WriteString("\n")
	}

	if len(class.See) > 0 {
		out.WriteString("\nAlso see:\n")
		out.WriteString(joinList(class.See, "* ", "\n"))
		out.WriteString("\n")
	}

	out.WriteString(r.Methods(class.Methods))
	return out.String()
}
