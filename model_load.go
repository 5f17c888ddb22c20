// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FormatYAML selects YAML model decoding.
	FormatYAML = "yaml"
	// FormatJSON selects JSON model decoding.
	FormatJSON = "json"
)

// LoadProject reads a model file and decodes it by file extension.
// Files without a known extension are decoded as YAML.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadModelFile, err)
	}

	return DecodeProject(data, FormatFromPath(path))
}

// FormatFromPath guesses model format from file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// DecodeProject decodes model bytes, validates structural invariants and
// links every method to its class.
func DecodeProject(data []byte, format string) (*Project, error) {
	var project Project
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatYAML, "yml", "":
		if err := yaml.Unmarshal(data, &project); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeModel, err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&project); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeModel, err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownModelFormat, format)
	}

	if err := project.prepare(); err != nil {
		return nil, err
	}

	return &project, nil
}

// prepare fills defaults, validates and links the decoded graph.
func (p *Project) prepare() error {
	seen := make(map[string]struct{}, len(p.Classes))
	for idx, class := range p.Classes {
		if class == nil {
			return fmt.Errorf("%w: class #%d is empty", ErrInvalidModel, idx+1)
		}

		if err := prepareClass(class); err != nil {
			return err
		}

		if _, ok := seen[class.Name]; ok {
			return fmt.Errorf("%w: duplicate class %q", ErrInvalidModel, class.Name)
		}

		seen[class.Name] = struct{}{}
	}

	if len(p.Namespaces) == 0 {
		p.Namespaces = classNamespaces(p.Classes)
	}

	return nil
}

// prepareClass normalizes one class and its methods.
func prepareClass(class *ClassLike) error {
	class.Name = strings.TrimPrefix(strings.TrimSpace(class.Name), namespaceSeparator)
	if class.Name == "" {
		return fmt.Errorf("%w: class without name", ErrInvalidModel)
	}

	if class.Namespace == "" {
		class.Namespace = namespaceOf(class.Name)
	}

	switch class.Kind {
	case "":
		class.Kind = KindClass
	case KindClass, KindTrait, KindInterface, KindException:
	default:
		return fmt.Errorf("%w: class %q has unknown kind %q", ErrInvalidModel, class.Name, class.Kind)
	}

	class.Parent = strings.TrimPrefix(class.Parent, namespaceSeparator)
	trimQualified(class.Interfaces)
	trimQualified(class.Traits)

	for idx, method := range class.Methods {
		if method == nil || strings.TrimSpace(method.Name) == "" {
			return fmt.Errorf("%w: class %q method #%d without name", ErrInvalidModel, class.Name, idx+1)
		}

		if err := prepareMethod(class, method); err != nil {
			return err
		}
	}

	return nil
}

// prepareMethod links method to class and validates its parameters.
func prepareMethod(class *ClassLike, method *Method) error {
	method.Class = class

	switch method.Visibility {
	case "":
		method.Visibility = VisibilityPublic
	case VisibilityPublic, VisibilityProtected, VisibilityPrivate:
	default:
		return fmt.Errorf("%w: method %s::%s has unknown visibility %q",
			ErrInvalidModel, class.Name, method.Name, method.Visibility)
	}

	trimQualified(method.Throws)

	for idx, param := range method.Parameters {
		if param == nil {
			return fmt.Errorf("%w: method %s::%s parameter #%d is empty",
				ErrInvalidModel, class.Name, method.Name, idx+1)
		}

		param.Name = strings.TrimPrefix(strings.TrimSpace(param.Name), "$")
		if param.Name == "" {
			return fmt.Errorf("%w: method %s::%s parameter #%d without name",
				ErrInvalidModel, class.Name, method.Name, idx+1)
		}
	}

	return nil
}

// trimQualified drops leading namespace separators of fully qualified names in place.
func trimQualified(names []string) {
	for idx, name := range names {
		names[idx] = strings.TrimPrefix(strings.TrimSpace(name), namespaceSeparator)
	}
}

// classNamespaces returns sorted distinct non-global namespaces of classes.
func classNamespaces(classes []*ClassLike) []string {
	seen := make(map[string]struct{}, len(classes))
	var namespaces []string
	for _, class := range classes {
		if class.Namespace == "" {
			continue
		}

		if _, ok := seen[class.Namespace]; ok {
			continue
		}

		seen[class.Namespace] = struct{}{}
		namespaces = append(namespaces, class.Namespace)
	}

	sort.Strings(namespaces)
	return namespaces
}
