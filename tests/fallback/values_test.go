package fallback

import "testing"

func TestParseKnownLabels(t *testing.T) {
	cases := []struct {
		label string
		want  Values
	}{
		{"One", ValuesOne},
		{"Two", ValuesTwo},
		{"Three", ValuesThree},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := ParseValues(tc.label); got != tc.want {
				t.Fatalf("ParseValues(%q) = %v, want %v", tc.label, got, tc.want)
			}
			if got := ParseValues(tc.label).String(); got != tc.label {
				t.Fatalf("round trip of %q = %q", tc.label, got)
			}
		})
	}
}

func TestCatchAllAbsorption(t *testing.T) {
	for _, s := range []string{"Four", "one", " One", "One ", "\x00", "Oneextra"} {
		got := ParseValues(s)
		if got != ValuesOther(s) {
			t.Fatalf("ParseValues(%q) = %v, want catch-all", s, got)
		}
		if got.String() != s {
			t.Fatalf("catch-all round trip of %q = %q", s, got.String())
		}
	}
}

func TestEmptyStringAbsorbed(t *testing.T) {
	got := ParseValues("")
	if got != ValuesOther("") {
		t.Fatalf(`ParseValues("") = %v, want empty catch-all`, got)
	}
	if got.String() != "" {
		t.Fatalf(`catch-all round trip of "" = %q`, got.String())
	}
}

func TestCatchAllIdentifierIsNotALabel(t *testing.T) {
	// "Other" names the catch-all variant but is not a match case;
	// it must be absorbed like any other unknown input.
	if got := ParseValues("Other"); got != ValuesOther("Other") {
		t.Fatalf(`ParseValues("Other") = %v, want catch-all carrying "Other"`, got)
	}
}

func TestOwnedBorrowedEquivalence(t *testing.T) {
	for _, s := range []string{"One", "Two", "Three", "Four", "", "Other"} {
		owned := ParseValues(s)
		borrowed := ParseValuesBytes([]byte(s))
		if owned != borrowed {
			t.Fatalf("ParseValues(%q) = %v but ParseValuesBytes = %v", s, owned, borrowed)
		}
	}
}

func TestStringMarshalTextEquivalence(t *testing.T) {
	for _, v := range []Values{ValuesOne, ValuesTwo, ValuesThree, ValuesOther("Four"), ValuesOther("")} {
		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText error: %v", err)
		}
		if string(text) != v.String() {
			t.Fatalf("MarshalText = %q but String = %q", text, v.String())
		}
	}
}

func TestUnmarshalText(t *testing.T) {
	var v Values
	if err := v.UnmarshalText([]byte("Two")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if v != ValuesTwo {
		t.Fatalf("UnmarshalText gave %v, want ValuesTwo", v)
	}
	if err := v.UnmarshalText([]byte("Four")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if v != ValuesOther("Four") {
		t.Fatalf("UnmarshalText gave %v, want catch-all", v)
	}
}

func TestOtherAccessor(t *testing.T) {
	if raw, ok := ValuesOther("Four").Other(); !ok || raw != "Four" {
		t.Fatalf("Other() = %q, %v, want Four, true", raw, ok)
	}
	if raw, ok := ValuesTwo.Other(); ok || raw != "" {
		t.Fatalf("Other() on a unit variant = %q, %v, want empty, false", raw, ok)
	}
}

func BenchmarkParseValues(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ParseValues("Three")
	}
}

func BenchmarkParseValuesBytes(b *testing.B) {
	in := []byte("Three")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ParseValuesBytes(in)
	}
}
