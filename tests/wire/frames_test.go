package wire

import "testing"

func TestParseFrame(t *testing.T) {
	cases := []struct {
		label string
		want  Frame
	}{
		{"Data", FrameData},
		{"close", FrameClose},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := ParseFrame(tc.label); got != tc.want {
				t.Fatalf("ParseFrame(%q) = %v, want %v", tc.label, got, tc.want)
			}
			if got := tc.want.String(); got != tc.label {
				t.Fatalf("String() = %q, want %q", got, tc.label)
			}
		})
	}
}

func TestSchemaLabelOverride(t *testing.T) {
	// The schema renames Close to "close", so the identifier spelling
	// falls through to the catch-all.
	if got := ParseFrame("Close"); got != FrameUnknown("Close") {
		t.Fatalf(`ParseFrame("Close") = %v, want catch-all`, got)
	}
}

func TestCatchAllAbsorption(t *testing.T) {
	got := ParseFrame("ping")
	raw, ok := got.Unknown()
	if !ok || raw != "ping" {
		t.Fatalf("Unknown() = %q, %v", raw, ok)
	}
	if got.String() != "ping" {
		t.Fatalf("catch-all round trip = %q, want ping", got.String())
	}
}

func TestOwnedBorrowedEquivalence(t *testing.T) {
	for _, s := range []string{"Data", "close", "Close", "ping", ""} {
		if owned, borrowed := ParseFrame(s), ParseFrameBytes([]byte(s)); owned != borrowed {
			t.Fatalf("ParseFrame(%q) = %v but ParseFrameBytes = %v", s, owned, borrowed)
		}
	}
}

func TestTextConversions(t *testing.T) {
	for _, v := range []Frame{FrameData, FrameClose, FrameUnknown("ping")} {
		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText error: %v", err)
		}
		if string(text) != v.String() {
			t.Fatalf("MarshalText = %q but String = %q", text, v.String())
		}

		var back Frame
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText error: %v", err)
		}
		if back != v {
			t.Fatalf("text round trip gave %v, want %v", back, v)
		}
	}
}
