// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	variadicSuffix = "..."
	iterableName   = "iterable"
)

// scalarHintNames lists built-in type names that are never class references.
var scalarHintNames = map[string]struct{}{
	"array":    {},
	"bool":     {},
	"boolean":  {},
	"callable": {},
	"double":   {},
	"false":    {},
	"float":    {},
	"int":      {},
	"integer":  {},
	"mixed":    {},
	"never":    {},
	"null":     {},
	"object":   {},
	"resource": {},
	"self":     {},
	"static":   {},
	"string":   {},
	"true":     {},
	"void":     {},
}

// hintKindNames maps HintKind values to their model-file spelling.
var hintKindNames = map[HintKind]string{
	HintScalar:   "scalar",
	HintClass:    "class",
	HintVariadic: "variadic",
	HintIterable: "iterable",
}

// String returns the model-file spelling of the kind.
func (k HintKind) String() string {
	if name, ok := hintKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("HintKind(%d)", int(k))
}

// parseHintKind resolves a model-file kind name.
func parseHintKind(name string) (HintKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range hintKindNames {
		if kindName == name {
			return kind, true
		}
	}

	return 0, false
}

// ParseTypeHint decides the hint variant for raw hint text.
//
// Variadic and iterable markers are recognized by suffix because reflection
// frameworks often report them as namespace-qualified class names.
func ParseTypeHint(raw string) TypeHint {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ScalarHint("mixed")
	case strings.HasSuffix(raw, variadicSuffix):
		return VariadicHint()
	case raw == iterableName || strings.HasSuffix(raw, namespaceSeparator+iterableName):
		return IterableHint()
	case strings.Contains(raw, namespaceSeparator):
		return ClassHint(raw)
	}

	if _, ok := scalarHintNames[strings.ToLower(raw)]; ok {
		return ScalarHint(raw)
	}

	if first := raw[0]; first >= 'A' && first <= 'Z' {
		return ClassHint(raw)
	}

	return ScalarHint(raw)
}

// typeHintObject is the explicit mapping form of a hint in model files.
type typeHintObject struct {
	Kind string `yaml:"kind" json:"kind"`
	Name string `yaml:"name" json:"name"`
}

// hintFromObject validates the explicit hint form.
func hintFromObject(obj typeHintObject) (TypeHint, error) {
	kind, ok := parseHintKind(obj.Kind)
	if !ok {
		return TypeHint{}, fmt.Errorf("%w: unknown hint kind %q", ErrInvalidModel, obj.Kind)
	}

	switch kind {
	case HintVariadic:
		return VariadicHint(), nil
	case HintIterable:
		return IterableHint(), nil
	case HintClass:
		return ClassHint(obj.Name), nil
	default:
		return ScalarHint(obj.Name), nil
	}
}

// UnmarshalYAML accepts either hint text or a {kind, name} mapping.
func (h *TypeHint) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*h = ParseTypeHint(value.Value)
		return nil
	}

	var obj typeHintObject
	if err := value.Decode(&obj); err != nil {
		return err
	}

	hint, err := hintFromObject(obj)
	if err != nil {
		return err
	}

	*h = hint
	return nil
}

// MarshalYAML writes the explicit mapping form.
func (h TypeHint) MarshalYAML() (any, error) {
	return typeHintObject{Kind: h.Kind.String(), Name: h.Name}, nil
}

// UnmarshalJSON accepts either hint text or a {kind, name} object.
func (h *TypeHint) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*h = ParseTypeHint(raw)
		return nil
	}

	var obj typeHintObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	hint, err := hintFromObject(obj)
	if err != nil {
		return err
	}

	*h = hint
	return nil
}

// MarshalJSON writes the explicit object form.
func (h TypeHint) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeHintObject{Kind: h.Kind.String(), Name: h.Name})
}
