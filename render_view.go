// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

// renderView is the root view model passed to markdown templates.
type renderView struct {
	// Title is the sanitized document title.
	Title string
	// Tree is the table of contents tree, one entry per namespace.
	Tree []TOCEntry
	// Namespaces lists namespaces in document order.
	Namespaces []string
	// Classes maps qualified class names to classes.
	Classes map[string]*ClassLike
	// Unassigned lists classes outside every listed namespace.
	Unassigned []string
}

// buildRenderView prepares data for markdown template rendering.
func buildRenderView(project *Project, opt Options) renderView {
	return renderView{
		Title:      opt.title(project),
		Tree:       project.Tree(),
		Namespaces: project.Namespaces,
		Classes:    project.ClassMap(),
		Unassigned: project.Unassigned(),
	}
}
