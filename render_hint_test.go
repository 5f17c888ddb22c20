// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "testing"

func TestParamHint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		hints []TypeHint
		link  bool
		want  string
	}{
		{name: "empty", want: "mixed"},
		{name: "scalar", hints: []TypeHint{ScalarHint("int")}, link: true, want: "int"},
		{name: "several joined by space", hints: []TypeHint{ScalarHint("int"), ScalarHint("null")}, want: "int null"},
		{name: "class linked", hints: []TypeHint{ClassHint(`\App\Foo`)}, link: true, want: "[Foo](#foo-app)"},
		{name: "class unlinked", hints: []TypeHint{ClassHint(`App\Foo`)}, want: "Foo"},
		{name: "global class never linked", hints: []TypeHint{ClassHint("DateTime")}, link: true, want: "DateTime"},
		{name: "variadic", hints: []TypeHint{VariadicHint()}, want: "..."},
		{
			name:  "variadic linked",
			hints: []TypeHint{VariadicHint()},
			link:  true,
			want:  "[...](" + variadicReferenceURL + ")",
		},
		{name: "iterable", hints: []TypeHint{IterableHint()}, want: "iterable"},
		{
			name:  "iterable linked",
			hints: []TypeHint{IterableHint()},
			link:  true,
			want:  "[iterable](" + iterableReferenceURL + ")",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := paramHint(tc.hints, tc.link); got != tc.want {
				t.Fatalf("paramHint() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReturnHint(t *testing.T) {
	t.Parallel()

	if got := returnHint(nil, true); got != "mixed" {
		t.Fatalf("returnHint(nil) = %q", got)
	}

	got := returnHint([]TypeHint{ClassHint(`App\Foo`), ScalarHint("null")}, true)
	if want := "[Foo](#foo-app) ***v*** null"; got != want {
		t.Fatalf("returnHint() = %q, want %q", got, want)
	}
}

func TestParseTypeHint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want TypeHint
	}{
		{raw: "", want: ScalarHint("mixed")},
		{raw: "int", want: ScalarHint("int")},
		{raw: "Bool", want: ScalarHint("Bool")},
		{raw: "self", want: ScalarHint("self")},
		{raw: "...", want: VariadicHint()},
		{raw: "string...", want: VariadicHint()},
		{raw: "iterable", want: IterableHint()},
		{raw: `App\iterable`, want: IterableHint()},
		{raw: `\App\Foo`, want: TypeHint{Kind: HintClass, Name: `App\Foo`}},
		{raw: "DateTime", want: TypeHint{Kind: HintClass, Name: "DateTime"}},
		{raw: " resource ", want: ScalarHint("resource")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			if got := ParseTypeHint(tc.raw); got != tc.want {
				t.Fatalf("ParseTypeHint(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestHintKindString(t *testing.T) {
	t.Parallel()

	if got := HintIterable.String(); got != "iterable" {
		t.Fatalf("HintIterable.String() = %q", got)
	}

	if got := HintKind(42).String(); got != "HintKind(42)" {
		t.Fatalf("unknown kind String() = %q", got)
	}
}
