package core

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	tmplfs "github.com/strenum/strenum.go/strenumgen/templates"
)

// unionTemplate drives per-file conversion generation. ParseFS names
// templates by filename; file.go.tpl is the entry point and the other
// files contribute the named section templates.
var unionTemplate = template.Must(template.New("file.go.tpl").ParseFS(tmplfs.FS, "*.go.tpl"))

type fileData struct {
	Package string
	Source  string

	// Import lines, already rendered and grouped: standard library
	// first, then third-party, each sorted by import path.
	HasImports   bool
	StdImports   []string
	ThirdImports []string

	Unions []unionData
}

type unionData struct {
	Name   string
	Kind   string
	Source string

	// Variants keeps declaration order, catch-all included; the
	// templates skip the catch-all where it has no match case.
	Variants []variantData
	CatchAll *variantData
	HasUnits bool

	JSON bool
	CBOR bool
	Msgp bool
}

type variantData struct {
	Name     string
	Label    string
	Sym      string
	CatchAll bool
}

// Synthesize renders the companion source for the given unions and
// runs it through goimports. The synthesized sections appear in a
// fixed order per union: type, parse, render, text conversions, then
// any enabled interop families.
func Synthesize(pkg, source string, unions []Union, opts Options) ([]byte, error) {
	data := fileData{
		Package: pkg,
		Source:  source,
	}
	fallible := false
	for i := range unions {
		ud := buildUnionData(&unions[i], opts)
		if ud.CatchAll == nil {
			fallible = true
		}
		data.Unions = append(data.Unions, ud)
	}

	if opts.JSON {
		data.StdImports = append(data.StdImports, `"encoding/json"`)
	}
	if fallible {
		// strconv renders out-of-range values; the runtime package
		// supplies the structured unknown-label error.
		data.StdImports = append(data.StdImports, `"strconv"`)
	}
	if opts.CBOR {
		data.ThirdImports = append(data.ThirdImports, `cbor "github.com/fxamacker/cbor/v2"`)
	}
	if fallible {
		data.ThirdImports = append(data.ThirdImports, `strenum "github.com/strenum/strenum.go/runtime"`)
	}
	if opts.Msgp {
		data.ThirdImports = append(data.ThirdImports, `"github.com/tinylib/msgp/msgp"`)
	}
	data.HasImports = len(data.StdImports) > 0 || len(data.ThirdImports) > 0

	var buf bytes.Buffer
	if err := unionTemplate.ExecuteTemplate(&buf, "file.go.tpl", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", source, err)
	}

	src, err := imports.Process(source, buf.Bytes(), nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			return nil, fmt.Errorf("format generated code for %s: %w", source, err)
		}
	}
	return src, nil
}

func buildUnionData(u *Union, opts Options) unionData {
	ud := unionData{
		Name:   u.Name,
		Kind:   lowerFirst(u.Name) + "Kind",
		Source: posLabel(u.Pos),
		JSON:   opts.JSON,
		CBOR:   opts.CBOR,
		Msgp:   opts.Msgp,
	}
	catchAll := -1
	for i, v := range u.Variants {
		ud.Variants = append(ud.Variants, variantData{
			Name:     v.Name,
			Label:    v.Label,
			Sym:      u.Name + v.Name,
			CatchAll: v.CatchAll,
		})
		if v.CatchAll {
			catchAll = i
		} else {
			ud.HasUnits = true
		}
	}
	if catchAll >= 0 {
		ud.CatchAll = &ud.Variants[catchAll]
	}
	return ud
}

// posLabel renders a source position for generated comments:
// file:line for Go declarations, the bare file name for schemas.
func posLabel(pos token.Position) string {
	if pos.Line > 0 {
		return fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line)
	}
	return filepath.Base(pos.Filename)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
