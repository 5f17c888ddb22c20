// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"errors"
	"strings"
	"testing"
)

func TestExampleModelIsLinked(t *testing.T) {
	t.Parallel()

	project := ExampleModel()
	for _, class := range project.Classes {
		if class.Namespace == "" {
			t.Fatalf("class %q has no namespace", class.Name)
		}

		for _, method := range class.Methods {
			if method.Class != class {
				t.Fatalf("method %s of %s is not linked", method.Name, class.Name)
			}
		}
	}

	if got := project.Unassigned(); len(got) != 0 {
		t.Fatalf("Unassigned() = %q", got)
	}
}

func TestGenerateExampleRoundTrip(t *testing.T) {
	t.Parallel()

	want, err := Render(ExampleModel(), Options{})
	if err != nil {
		t.Fatalf("Render(example): %v", err)
	}

	for _, format := range []string{FormatYAML, FormatJSON} {
		format := format
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			data, err := GenerateExample(format)
			if err != nil {
				t.Fatalf("GenerateExample(%s): %v", format, err)
			}

			project, err := DecodeProject(data, format)
			if err != nil {
				t.Fatalf("DecodeProject(%s): %v\n%s", format, err, data)
			}

			got, err := Render(project, Options{})
			if err != nil {
				t.Fatalf("Render(%s): %v", format, err)
			}

			if got != want {
				t.Fatalf("decoded %s example renders differently:\n%s\n---\n%s", format, got, want)
			}
		})
	}
}

func TestGenerateExampleYAMLComments(t *testing.T) {
	t.Parallel()

	data, err := GenerateExample("YML")
	if err != nil {
		t.Fatalf("GenerateExample: %v", err)
	}

	out := string(data)
	assertContains(t, out, "# Namespaces rendered in this order.")
	assertContains(t, out, "kind: variadic")
	assertNotContains(t, out, "class:")
}

func TestGenerateExampleJSONKeepsMarkup(t *testing.T) {
	t.Parallel()

	data, err := GenerateExample(FormatJSON)
	if err != nil {
		t.Fatalf("GenerateExample: %v", err)
	}

	if !strings.Contains(string(data), `"kind": "iterable"`) {
		t.Fatalf("iterable hint missing:\n%s", data)
	}
}

func TestGenerateExampleUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := GenerateExample("xml"); !errors.Is(err, ErrUnknownModelFormat) {
		t.Fatalf("expected ErrUnknownModelFormat, got %v", err)
	}
}

func TestExampleRendersAllSections(t *testing.T) {
	t.Parallel()

	out, err := Render(ExampleModel(), Options{PrettyPrint: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, heading := range []string{"## Classes", "## Traits", "## Interfaces", "## Exceptions", "#### Method details"} {
		assertContains(t, out, heading)
	}

	assertContains(t, out, "protected function keys();")
	assertContains(t, out, "[iterable]("+iterableReferenceURL+")")
}
