// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkDecodeProject measures model decoding, validation and linking cost.
func BenchmarkDecodeProject(b *testing.B) {
	modelBytes := readBenchmarkFile(b, filepath.Join("testdata", "project.yaml"))

	b.ReportAllocs()
	b.SetBytes(int64(len(modelBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := DecodeProject(modelBytes, FormatYAML); err != nil {
			b.Fatalf("DecodeProject: %v", err)
		}
	}
}

// BenchmarkRenderReadmeTemplate measures full in-memory render flow for readme template.
func BenchmarkRenderReadmeTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, templateReadmeName, false)
}

// BenchmarkRenderReferencePretty measures reference template with aligned tables.
func BenchmarkRenderReferencePretty(b *testing.B) {
	benchmarkRenderTemplate(b, templateReferenceName, true)
}

// BenchmarkRenderFile measures read + render flow from file path.
func BenchmarkRenderFile(b *testing.B) {
	modelPath := filepath.Join("testdata", "project.json")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderFile(modelPath, Options{}); err != nil {
			b.Fatalf("RenderFile: %v", err)
		}
	}
}

// benchmarkRenderTemplate runs common in-memory benchmark for selected template.
func benchmarkRenderTemplate(b *testing.B, templateName string, pretty bool) {
	modelBytes := readBenchmarkFile(b, filepath.Join("testdata", "project.yaml"))
	project, err := DecodeProject(modelBytes, FormatYAML)
	if err != nil {
		b.Fatalf("DecodeProject: %v", err)
	}

	options := Options{
		TemplateName: templateName,
		PrettyPrint:  pretty,
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Render(project, options); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
