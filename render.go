// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"fmt"
	"sort"
	"strings"
)

// RenderFile loads a model file and renders markdown documentation.
func RenderFile(path string, opt Options) (string, error) {
	project, err := LoadProject(path)
	if err != nil {
		return "", err
	}

	return Render(project, opt)
}

// Render converts a project into a deterministic markdown document.
func Render(project *Project, opt Options) (string, error) {
	if project == nil {
		project = &Project{}
	}

	r := NewRenderer(opt)
	markdownTemplate, err := resolveTemplate(opt, r)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, buildRenderView(project, opt)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// RenderTOC renders only the table of contents of project.
func RenderTOC(project *Project) string {
	if project == nil {
		return ""
	}

	toc := TOC(project.Tree(), 0)
	if toc == "" {
		return ""
	}

	return ensureTrailingNewline(toc)
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
