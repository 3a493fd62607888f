package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}

func TestLoadSchema(t *testing.T) {
	path := writeSchema(t, `package: wire
unions:
  - name: Frame
    variants:
      - name: Data
      - name: Close
        label: close
      - name: Unknown
        payload: string
  - name: Mode
    variants:
      - name: Read
      - name: Write
`)

	pkg, unions, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema error: %v", err)
	}
	if pkg != "wire" {
		t.Fatalf("package = %q, want wire", pkg)
	}
	if len(unions) != 2 {
		t.Fatalf("got %d unions, want 2", len(unions))
	}

	frame := unions[0]
	if frame.Name != "Frame" || len(frame.Variants) != 3 {
		t.Fatalf("frame = %+v, want Frame with 3 variants", frame)
	}
	if frame.Variants[0].Label != "Data" {
		t.Fatalf("Data label = %q, want Data", frame.Variants[0].Label)
	}
	if frame.Variants[1].Label != "close" {
		t.Fatalf("Close label = %q, want close", frame.Variants[1].Label)
	}
	ca := frame.CatchAll()
	if ca == nil || ca.Name != "Unknown" {
		t.Fatalf("CatchAll() = %+v, want Unknown", ca)
	}

	mode := unions[1]
	if mode.CatchAll() != nil {
		t.Fatal("Mode has a catch-all, want none")
	}
}

func TestLoadSchemaExplicitEmptyLabel(t *testing.T) {
	path := writeSchema(t, `package: wire
unions:
  - name: Frame
    variants:
      - name: Blank
        label: ""
      - name: Data
`)

	_, unions, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema error: %v", err)
	}
	if got := unions[0].Variants[0].Label; got != "" {
		t.Fatalf("Blank label = %q, want empty", got)
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing package",
			content: `unions:
  - name: Frame
    variants:
      - name: Data
`,
			wantErr: "schema must name a package",
		},
		{
			name:    "no unions",
			content: `package: wire`,
			wantErr: "schema declares no unions",
		},
		{
			name: "unnamed union",
			content: `package: wire
unions:
  - variants:
      - name: Data
`,
			wantErr: "every union must be named",
		},
		{
			name: "unnamed variant",
			content: `package: wire
unions:
  - name: Frame
    variants:
      - label: data
`,
			wantErr: "every variant must be named",
		},
		{
			name: "unsupported payload",
			content: `package: wire
unions:
  - name: Frame
    variants:
      - name: Data
        payload: int
`,
			wantErr: "only a struct{} variant or a single string payload is supported",
		},
		{
			name: "two catch-alls",
			content: `package: wire
unions:
  - name: Frame
    variants:
      - name: Unknown
        payload: string
      - name: Extra
        payload: string
`,
			wantErr: "only a single catch-all variant is supported",
		},
		{
			name: "duplicate labels",
			content: `package: wire
unions:
  - name: Frame
    variants:
      - name: Data
      - name: Payload
        label: Data
`,
			wantErr: `duplicate label "Data"`,
		},
		{
			name: "empty union",
			content: `package: wire
unions:
  - name: Frame
`,
			wantErr: "union declares no variants",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadSchema(writeSchema(t, tc.content))
			if err == nil {
				t.Fatal("LoadSchema succeeded, want error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %q, want substring %q", err, tc.wantErr)
			}
		})
	}
}
