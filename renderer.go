// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

// Renderer turns a reflection model into markdown text.
//
// Configuration is bound at construction; a Renderer is never mutated
// afterwards and may be shared between goroutines.
type Renderer struct {
	tables  tableFormatter
	trailer string
}

// NewRenderer returns a renderer configured by opt.
func NewRenderer(opt Options) *Renderer {
	return &Renderer{
		tables:  tableFormatter{pretty: opt.PrettyPrint},
		trailer: opt.trailer(),
	}
}

// PrettyPrint reports whether tables are column aligned.
func (r *Renderer) PrettyPrint() bool {
	return r.tables.pretty
}
