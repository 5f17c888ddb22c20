// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

const (
	methodSummaryHeader  = "|Name|Return|Access|Description|\n|:---|:---|:---|:---|"
	parameterTableHeader = "| Type | Variable | Description |"
	parameterTableRule   = "|---|---|---|"
	noDescription        = "*None*"
)

// Methods renders the summary table of methods followed by their details.
// It returns an empty string when methods is empty.
func (r *Renderer) Methods(methods []*Method) string {
	if len(methods) == 0 {
		return ""
	}

	rows := make([]string, 0, len(methods)+1)
	rows = append(rows, methodSummaryHeader)
	details := make([]string, 0, len(methods)+1)
	details = append(details, "\n#### Method details")
	for _, method := range methods {
		rows = append(rows, methodSummaryRow(method))
		details = append(details, r.methodDetail(method))
	}

	return "\n#### Methods\n" +
		joinList(r.tables.normalizeColumns(rows), "", "\n") +
		joinList(details, "", "\n")
}

// methodSummaryRow renders one row of the methods table.
func methodSummaryRow(method *Method) string {
	return fmt.Sprintf("|%s|%s|%s| %s|",
		Link(method.Name, methodTarget(method), false, ""),
		returnHint(method.Returns, true),
		methodAccess(method),
		shortDescription(&method.Symbol, true),
	)
}

// methodDetail renders the heading, signature and documentation of one method.
func (r *Renderer) methodDetail(method *Method) string {
	var out strings.Builder

	fmt.Fprintf(&out, "\n##### %s `%s`\n```php\n%s\n```",
		method.Name, methodClassName(method), methodDeclaration(method))

	if len(method.See) > 0 {
		out.WriteString("\n\nSee also:\n")
		out.WriteString(joinList(method.See, "* ", "\n"))
	}

	if desc := longDescription(&method.Symbol, false); desc != "" {
		out.WriteString("\n\n")
		out.WriteString(desc)
	}

	if source := methodSource(method); source != "" {
		out.WriteString("\n\n")
		out.WriteString(source)
	}

	if len(method.Parameters) > 0 {
		out.WriteString("\n\nParameters\n")
		out.WriteString(joinList(r.parameterTable(method.Parameters), "", "\n"))
	}

	if len(method.Returns) > 0 {
		out.WriteString("\n\nReturns: ")
		out.WriteString(returnHint(method.Returns, true))
	}

	if len(method.Throws) > 0 {
		links := make([]string, 0, len(method.Throws))
		for _, exception := range method.Throws {
			links = append(links, Link(shortName(exception), exception, false, "Exception: "+exception))
		}

		out.WriteString("\n\nThrows:\n")
		out.WriteString(joinList(links, "* ", "\n"))
	}

	if len(method.Todo) > 0 {
		out.WriteString("\n\nTodo:\n")
		out.WriteString(joinList(method.Todo, "* ", "\n"))
	}

	out.WriteString("\n\n---\n")
	return out.String()
}

// parameterTable renders header, rule and one row per parameter.
func (r *Renderer) parameterTable(params []*Parameter) []string {
	rows := make([]string, 0, len(params)+2)
	rows = append(rows, parameterTableHeader, parameterTableRule)
	for _, param := range params {
		desc := longDescription(&param.Symbol, true)
		if desc == "" {
			desc = noDescription
		}

		rows = append(rows, fmt.Sprintf("|%s|$%s|%s|", paramHint(param.Hints, true), param.Name, desc))
	}

	return r.tables.normalizeColumns(rows)
}

// methodDeclaration renders the code block line "<access> function <signature>".
func methodDeclaration(method *Method) string {
	declaration := "function " + methodSignature(method, true)
	if access := methodAccess(method); access != "" {
		declaration = access + " " + declaration
	}

	return declaration
}

// methodSignature renders "name(hint $param = default, ...);".
// Without names only parameter hints are listed.
func methodSignature(method *Method, withNames bool) string {
	params := make([]string, 0, len(method.Parameters))
	for _, param := range method.Parameters {
		item := paramHint(param.Hints, false)
		if withNames {
			item += " $" + param.Name
			if param.Default != "" {
				item += " = " + param.Default
			}
		}

		params = append(params, item)
	}

	return method.Name + "(" + strings.Join(params, ", ") + ");"
}

// methodSource renders a blockquote link to the declaring file and line.
func methodSource(method *Method) string {
	if method.Class == nil || method.Class.SourcePath == "" {
		return ""
	}

	location := method.Class.SourcePath
	label := path.Base(location)
	if method.Line > 0 {
		line := "#L" + strconv.Itoa(method.Line)
		location += line
		label += line
	}

	return "> [File: " + label + "](" + location + ")"
}

// methodTarget is the link target of a method: "<class>\<method>".
func methodTarget(method *Method) string {
	return methodClassName(method) + namespaceSeparator + method.Name
}

func methodClassName(method *Method) string {
	if method.Class == nil {
		return ""
	}

	return method.Class.Name
}
