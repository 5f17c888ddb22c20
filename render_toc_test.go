// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "testing"

func TestTOCEmpty(t *testing.T) {
	t.Parallel()

	if got := TOC(nil, 0); got != "" {
		t.Fatalf("TOC(nil) = %q", got)
	}
}

func TestTOCSortsChildren(t *testing.T) {
	t.Parallel()

	alpha := testClass(`App\Alpha`)
	alpha.ShortDescription = "First\nclass."
	alpha.Deprecated = true
	alpha.DeprecationReason = "ignored in toc"

	tree := []TOCEntry{
		{
			Label:     "App",
			Namespace: "App",
			Children: []TOCEntry{
				{Label: "Zed", Class: testClass(`App\Zed`)},
				{Label: "Alpha", Class: alpha},
			},
		},
		{Label: "Lib", Namespace: "Lib"},
	}

	got := TOC(tree, 0)
	want := "1. [App](#app \"App\")\n" +
		"\t1. [Alpha](#alpha-app \"App\\Alpha\") `@deprecated` Firstclass.\n" +
		"\t2. [Zed](#zed-app \"App\\Zed\")\n" +
		"2. [Lib](#lib \"Lib\")\n"
	if got != want {
		t.Fatalf("TOC() =\n%q\nwant\n%q", got, want)
	}

	if tree[0].Children[0].Label != "Zed" {
		t.Fatal("TOC must not reorder input children")
	}
}

func TestTOCGrandchildren(t *testing.T) {
	t.Parallel()

	tree := []TOCEntry{
		{
			Label:     "App",
			Namespace: "App",
			Children: []TOCEntry{
				{
					Label:     `App\Sub`,
					Namespace: `App\Sub`,
					Children: []TOCEntry{
						{Label: "Thing", Class: testClass(`App\Sub\Thing`)},
					},
				},
			},
		},
	}

	got := TOC(tree, 1)
	want := "\t1. [App](#app \"App\")\n" +
		"\t\t1. [App\\Sub](#appsub \"App\\Sub\")\n" +
		"\t\t\t1. [Thing](#thing-appsub \"App\\Sub\\Thing\")\n"
	if got != want {
		t.Fatalf("TOC() =\n%q\nwant\n%q", got, want)
	}
}
