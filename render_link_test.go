// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "testing"

func TestLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		text      string
		target    string
		namespace bool
		title     string
		want      string
	}{
		{
			name:   "class",
			text:   "Foo",
			target: `App\Foo`,
			want:   "[Foo](#foo-app)",
		},
		{
			name:   "nested namespace class",
			text:   "Thing",
			target: `A\Sub\Thing`,
			want:   "[Thing](#thing-asub)",
		},
		{
			name:   "method",
			text:   "bar",
			target: `App\Foo\bar`,
			want:   "[bar](#bar-appfoo)",
		},
		{
			name:   "external name",
			text:   "strlen",
			target: "strlen",
			want:   "[strlen](https://www.google.no/search?q=strlen)",
		},
		{
			name:   "external name with title and spaces",
			text:   "a b",
			target: "a b",
			title:  "search",
			want:   `[a b](https://www.google.no/search?q=a%20b "search")`,
		},
		{
			name:      "namespace",
			text:      `App\Sub`,
			target:    `App\Sub`,
			namespace: true,
			title:     `Namespace: App\Sub`,
			want:      `[App\Sub](#appsub "Namespace: App\Sub")`,
		},
		{
			name:      "namespace with spaces",
			text:      "My Space",
			target:    "My Space",
			namespace: true,
			want:      "[My Space](#my-space)",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Link(tc.text, tc.target, tc.namespace, tc.title); got != tc.want {
				t.Fatalf("Link() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRawURLEncode(t *testing.T) {
	t.Parallel()

	if got := rawURLEncode("a b+c/d~"); got != "a%20b%2Bc%2Fd~" {
		t.Fatalf("rawURLEncode() = %q", got)
	}
}
