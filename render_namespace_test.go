// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import (
	"slices"
	"strings"
	"testing"
)

func TestNamespaceWithoutClasses(t *testing.T) {
	t.Parallel()

	r := NewRenderer(Options{})
	if got := r.Namespace("App", nil, nil); got != "\n# App\n" {
		t.Fatalf("Namespace(no subs) = %q", got)
	}

	got := r.Namespace("App", []string{`App\A`, `App\B`}, nil)
	want := "\n# App\n" +
		"\n * [App\\A](#appa \"Namespace: App\\A\")" +
		"\n * [App\\B](#appb \"Namespace: App\\B\")\n"
	if got != want {
		t.Fatalf("Namespace(subs) = %q, want %q", got, want)
	}
}

func TestNamespaceWithClassesSkipsSubLinks(t *testing.T) {
	t.Parallel()

	got := NewRenderer(Options{}).Namespace("App", []string{`App\Sub`}, []*ClassLike{testClass(`App\Foo`)})
	assertContains(t, got, "\n# App\n\n## Classes\n\n### Foo `App`\n")
	assertNotContains(t, got, "Namespace: App\\Sub")
}

func TestClassesEmpty(t *testing.T) {
	t.Parallel()

	if got := NewRenderer(Options{}).Classes(nil); got != "" {
		t.Fatalf("Classes(nil) = %q", got)
	}
}

func TestClassesGroupOrder(t *testing.T) {
	t.Parallel()

	trait := testClass(`App\Loggable`)
	trait.Kind = KindTrait
	iface := testClass(`App\Runner`)
	iface.Kind = KindInterface
	exception := testClass(`App\Failed`)
	exception.Kind = KindException
	plain := testClass(`App\Service`)

	got := NewRenderer(Options{}).Classes([]*ClassLike{exception, iface, trait, plain})
	headings := []string{"## Classes", "## Traits", "## Interfaces", "## Exceptions"}
	last := -1
	for _, heading := range headings {
		idx := strings.Index(got, heading)
		if idx <= last {
			t.Fatalf("heading %q out of order:\n%s", heading, got)
		}

		last = idx
	}

	assertContains(t, got, "## Traits\n\n### Loggable `App`")
	assertContains(t, got, "## Exceptions\n\n### Failed `App`")
}

func TestClassesSkipsEmptyGroups(t *testing.T) {
	t.Parallel()

	got := NewRenderer(Options{}).Classes([]*ClassLike{testClass(`App\A`), testClass(`App\B`)})
	if !strings.HasPrefix(got, "\n## Classes\n\n### A `App`\n") {
		t.Fatalf("unexpected group output:\n%q", got)
	}

	for _, heading := range []string{"## Traits", "## Interfaces", "## Exceptions"} {
		assertNotContains(t, got, heading)
	}
}

func TestClassifyClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		kind      Kind
		namespace string
		want      Kind
	}{
		{name: "class", kind: KindClass, namespace: "App", want: KindClass},
		{name: "interface", kind: KindInterface, namespace: "App", want: KindInterface},
		{name: "interface in exception namespace", kind: KindInterface, namespace: `App\Exception`, want: KindException},
		{name: "class in exception namespace", kind: KindClass, namespace: `App\Exceptions`, want: KindException},
		{name: "trait wins", kind: KindTrait, namespace: `App\Exception`, want: KindTrait},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := classifyClass(&ClassLike{Kind: tc.kind, Namespace: tc.namespace})
			if got != tc.want {
				t.Fatalf("classifyClass() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSubNamespaces(t *testing.T) {
	t.Parallel()

	pool := []*ClassLike{
		testClass(`App\Sub\B`),
		testClass(`App\A`),
		testClass(`Other\C`),
		testClass(`App\Sub\D`),
		testClass(`App\Alpha\E`),
		testClass("Global"),
	}

	got := subNamespaces("App", pool)
	want := []string{`App\Alpha`, `App\Sub`}
	if !slices.Equal(got, want) {
		t.Fatalf("subNamespaces() = %q, want %q", got, want)
	}
}
