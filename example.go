// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// modelKeyComments annotates top-level keys of the YAML starter model.
var modelKeyComments = map[string]string{
	"title":      "Document title used by the readme template.",
	"namespaces": "Namespaces rendered in this order. Classes outside them are skipped.",
	"classes":    "Classes, traits, interfaces and exceptions keyed by qualified name.",
}

// ExampleModel returns a small linked project that touches every model feature.
func ExampleModel() *Project {
	project := &Project{
		Title:      "Example API",
		Namespaces: []string{`Example`, `Example\Storage`, `Example\Storage\Exception`},
		Classes: []*ClassLike{
			{
				Symbol: Symbol{
					Name:             `Example\Storage\FileStore`,
					ShortDescription: "Stores blobs on local disk.",
					LongDescription:  "Paths are resolved against the configured root.",
					See:              []string{`Example\Storage\StoreInterface`},
				},
				Final:      true,
				Parent:     `Example\Storage\AbstractStore`,
				Interfaces: []string{`Example\Storage\StoreInterface`},
				Traits:     []string{`Example\Storage\LogsAccess`},
				SourcePath: "src/Storage/FileStore.php",
				Methods: []*Method{
					{
						Symbol:     Symbol{Name: "put", ShortDescription: "Write a blob."},
						Visibility: VisibilityPublic,
						Line:       27,
						Parameters: []*Parameter{
							{Symbol: Symbol{Name: "key", ShortDescription: "Blob key."}, Hints: []TypeHint{ScalarHint("string")}},
							{Symbol: Symbol{Name: "data"}, Hints: []TypeHint{ScalarHint("string"), ClassHint(`Example\Stream`)}},
							{Symbol: Symbol{Name: "tags"}, Hints: []TypeHint{VariadicHint()}},
						},
						Returns: []TypeHint{ScalarHint("bool")},
						Throws:  []string{`Example\Storage\Exception\WriteFailed`},
					},
					{
						Symbol: Symbol{
							Name:              "keys",
							ShortDescription:  "List stored keys.",
							Deprecated:        true,
							DeprecationReason: "Use iterate().",
							Todo:              []string{"Paginate large directories."},
						},
						Visibility: VisibilityProtected,
						Returns:    []TypeHint{IterableHint()},
					},
				},
			},
			{
				Symbol: Symbol{Name: `Example\Storage\StoreInterface`, ShortDescription: "Blob storage contract."},
				Kind:   KindInterface,
			},
			{
				Symbol: Symbol{Name: `Example\Storage\LogsAccess`},
				Kind:   KindTrait,
			},
			{
				Symbol: Symbol{Name: `Example\Storage\Exception\WriteFailed`},
				Kind:   KindException,
				Parent: "RuntimeException",
			},
		},
	}

	if err := project.prepare(); err != nil {
		panic(err)
	}

	return project
}

// GenerateExample encodes ExampleModel as a starter model file in format
// ("yaml" or "json").
func GenerateExample(format string) ([]byte, error) {
	project := ExampleModel()

	switch normalizeExampleFormat(format) {
	case FormatYAML:
		data, err := marshalExampleYAML(project)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}

		return data, nil
	case FormatJSON:
		data, err := marshalExampleJSON(project)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownModelFormat, format)
	}
}

// normalizeExampleFormat lower-cases format and maps "yml" and empty input to YAML.
func normalizeExampleFormat(format string) string {
	switch normalized := strings.ToLower(strings.TrimSpace(format)); normalized {
	case "", "yml":
		return FormatYAML
	default:
		return normalized
	}
}

// marshalExampleJSON serializes the model as indented JSON without HTML escaping.
func marshalExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalExampleYAML serializes the model as YAML with comments on top-level keys.
func marshalExampleYAML(value any) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return nil, err
	}

	if node.Kind == yaml.MappingNode {
		for index := 0; index+1 < len(node.Content); index += 2 {
			keyNode := node.Content[index]
			if comment, ok := modelKeyComments[keyNode.Value]; ok {
				keyNode.HeadComment = comment
			}
		}
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{&node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
