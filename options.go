// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "strings"

const (
	// defaultTitle is used when neither caller nor project provide a title.
	defaultTitle = "API reference"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templateReadmeName
	// DefaultTrailer is the attribution line appended after the last namespace.
	DefaultTrailer = "\n\n - Generated using [classdoc](https://github.com/woozymasta/classdoc)"
)

// Options configures rendering.
type Options struct {
	// Title overrides project title in built-in templates.
	Title string
	// TemplateName selects one built-in template ("readme", "reference").
	TemplateName string
	// TemplateText is custom template source; it takes precedence over TemplateName.
	TemplateText string
	// Trailer replaces the attribution line appended to the document.
	// A blank line is inserted before it unless it starts with a newline.
	Trailer string
	// PrettyPrint pads markdown table columns so raw source reads aligned.
	PrettyPrint bool
	// OmitTrailer drops the attribution line entirely.
	OmitTrailer bool
}

// trailer resolves the effective document trailer.
func (opt Options) trailer() string {
	if opt.OmitTrailer {
		return ""
	}

	if strings.TrimSpace(opt.Trailer) == "" {
		return DefaultTrailer
	}

	if !strings.HasPrefix(opt.Trailer, "\n") {
		return "\n\n" + opt.Trailer
	}

	return opt.Trailer
}

// title resolves the effective document title.
func (opt Options) title(project *Project) string {
	if title := sanitizeText(opt.Title); title != "" {
		return title
	}

	if project != nil {
		if title := sanitizeText(project.Title); title != "" {
			return title
		}
	}

	return defaultTitle
}
