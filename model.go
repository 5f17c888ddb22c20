// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"sort"
	"strings"
)

// namespaceSeparator separates namespace segments in qualified names.
const namespaceSeparator = `\`

// Kind classifies a class-like symbol.
type Kind string

const (
	// KindClass is a regular class.
	KindClass Kind = "class"
	// KindTrait is a trait.
	KindTrait Kind = "trait"
	// KindInterface is an interface.
	KindInterface Kind = "interface"
	// KindException is an exception class.
	KindException Kind = "exception"
)

// Visibility is method access level.
type Visibility string

const (
	// VisibilityPublic marks public methods.
	VisibilityPublic Visibility = "public"
	// VisibilityProtected marks protected methods.
	VisibilityProtected Visibility = "protected"
	// VisibilityPrivate marks private methods.
	VisibilityPrivate Visibility = "private"
)

// Symbol holds documentation fields shared by classes, methods and parameters.
type Symbol struct {
	// Name is qualified for classes and short for methods and parameters.
	Name              string   `yaml:"name" json:"name"`
	ShortDescription  string   `yaml:"short_description,omitempty" json:"short_description,omitempty"`
	LongDescription   string   `yaml:"long_description,omitempty" json:"long_description,omitempty"`
	See               []string `yaml:"see,omitempty" json:"see,omitempty"`
	Todo              []string `yaml:"todo,omitempty" json:"todo,omitempty"`
	Deprecated        bool     `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	DeprecationReason string   `yaml:"deprecation_reason,omitempty" json:"deprecation_reason,omitempty"`
}

// ClassLike is a class, trait, interface or exception.
type ClassLike struct {
	Symbol `yaml:",inline"`

	Kind       Kind      `yaml:"kind,omitempty" json:"kind,omitempty"`
	Namespace  string    `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Abstract   bool      `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	Final      bool      `yaml:"final,omitempty" json:"final,omitempty"`
	Parent     string    `yaml:"parent,omitempty" json:"parent,omitempty"`
	Interfaces []string  `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	Traits     []string  `yaml:"traits,omitempty" json:"traits,omitempty"`
	Methods    []*Method `yaml:"methods,omitempty" json:"methods,omitempty"`
	SourcePath string    `yaml:"source_path,omitempty" json:"source_path,omitempty"`
}

// ShortName returns the class name without its namespace.
func (c *ClassLike) ShortName() string {
	return shortName(c.Name)
}

// Method is one method owned by a ClassLike.
type Method struct {
	Symbol `yaml:",inline"`

	// Class is the owning class. It is set by the loader and never owned here.
	Class *ClassLike `yaml:"-" json:"-"`

	Abstract   bool         `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	Final      bool         `yaml:"final,omitempty" json:"final,omitempty"`
	Static     bool         `yaml:"static,omitempty" json:"static,omitempty"`
	Visibility Visibility   `yaml:"visibility,omitempty" json:"visibility,omitempty"`
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Returns    []TypeHint   `yaml:"returns,omitempty" json:"returns,omitempty"`
	Throws     []string     `yaml:"throws,omitempty" json:"throws,omitempty"`
	Line       int          `yaml:"line,omitempty" json:"line,omitempty"`
}

// Parameter is one method parameter.
type Parameter struct {
	Symbol `yaml:",inline"`

	Hints   []TypeHint `yaml:"hints,omitempty" json:"hints,omitempty"`
	Default string     `yaml:"default,omitempty" json:"default,omitempty"`
}

// HintKind tags the TypeHint variant.
type HintKind int

const (
	// HintScalar is a primitive hint such as int or string.
	HintScalar HintKind = iota
	// HintClass references a class by qualified name.
	HintClass
	// HintVariadic is the variable-length argument marker.
	HintVariadic
	// HintIterable is the iterable pseudo-type.
	HintIterable
)

// TypeHint is a declared or inferred type of a parameter or return value.
type TypeHint struct {
	Kind HintKind
	Name string
}

// ScalarHint returns a primitive hint.
func ScalarHint(name string) TypeHint {
	return TypeHint{Kind: HintScalar, Name: name}
}

// ClassHint returns a class reference hint.
func ClassHint(qualifiedName string) TypeHint {
	return TypeHint{Kind: HintClass, Name: strings.TrimPrefix(qualifiedName, namespaceSeparator)}
}

// VariadicHint returns the variadic marker hint.
func VariadicHint() TypeHint {
	return TypeHint{Kind: HintVariadic, Name: "..."}
}

// IterableHint returns the iterable hint.
func IterableHint() TypeHint {
	return TypeHint{Kind: HintIterable, Name: "iterable"}
}

// String returns the hint source text.
func (h TypeHint) String() string {
	return h.Name
}

// Project is the root input: ordered namespace names and every documented class.
type Project struct {
	Title      string       `yaml:"title,omitempty" json:"title,omitempty"`
	Namespaces []string     `yaml:"namespaces" json:"namespaces"`
	Classes    []*ClassLike `yaml:"classes" json:"classes"`
}

// ClassMap returns classes keyed by qualified name.
func (p *Project) ClassMap() map[string]*ClassLike {
	classes := make(map[string]*ClassLike, len(p.Classes))
	for _, class := range p.Classes {
		classes[class.Name] = class
	}

	return classes
}

// Tree builds table of contents entries: one per namespace, its classes as children.
func (p *Project) Tree() []TOCEntry {
	byNamespace := make(map[string][]TOCEntry, len(p.Namespaces))
	for _, class := range p.Classes {
		byNamespace[class.Namespace] = append(byNamespace[class.Namespace], TOCEntry{
			Label: class.ShortName(),
			Class: class,
		})
	}

	tree := make([]TOCEntry, 0, len(p.Namespaces))
	for _, namespace := range p.Namespaces {
		tree = append(tree, TOCEntry{
			Label:     namespace,
			Namespace: namespace,
			Children:  byNamespace[namespace],
		})
	}

	return tree
}

// Unassigned returns sorted names of classes whose namespace is not listed in the project.
func (p *Project) Unassigned() []string {
	known := make(map[string]struct{}, len(p.Namespaces))
	for _, namespace := range p.Namespaces {
		known[namespace] = struct{}{}
	}

	var names []string
	for _, class := range p.Classes {
		if _, ok := known[class.Namespace]; !ok {
			names = append(names, class.Name)
		}
	}

	sort.Strings(names)
	return names
}

// TOCEntry is one table of contents node. Class entries link to the class,
// other entries link to Namespace.
type TOCEntry struct {
	Label     string
	Namespace string
	Class     *ClassLike
	Children  []TOCEntry
}

// target returns the link destination name of the entry.
func (e TOCEntry) target() string {
	if e.Class != nil {
		return e.Class.Name
	}

	return e.Namespace
}

// shortName returns the last namespace segment of a qualified name.
func shortName(qualified string) string {
	if idx := strings.LastIndex(qualified, namespaceSeparator); idx >= 0 {
		return qualified[idx+1:]
	}

	return qualified
}

// namespaceOf returns everything before the last namespace separator.
func namespaceOf(qualified string) string {
	qualified = strings.TrimPrefix(qualified, namespaceSeparator)
	if idx := strings.LastIndex(qualified, namespaceSeparator); idx >= 0 {
		return qualified[:idx]
	}

	return ""
}
