package core

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// Options configures how generation runs.
type Options struct {
	Verbose bool
	// Types, if non-empty, restricts generation to the named union
	// types. Names must match Go type names exactly.
	Types []string

	// Interop method families, each generated in addition to the
	// always-present parse/render/text conversions.
	JSON bool
	CBOR bool
	Msgp bool
}

// Run generates conversion code for the union declarations in a
// single Go source file, writing the companion file to outputPath.
// It returns the number of unions generated; when the file contains
// no marked declarations nothing is written.
func Run(inputPath, outputPath string, opts Options) (int, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, inputPath, nil, parser.ParseComments)
	if err != nil {
		return 0, err
	}

	unions, err := Classify(fset, file)
	if err != nil {
		return 0, err
	}
	unions = filterTypes(unions, opts.Types)
	if len(unions) == 0 {
		return 0, nil
	}

	src, err := Synthesize(file.Name.Name, filepath.Base(inputPath), unions, opts)
	if err != nil {
		return 0, err
	}
	if err := writeOutput(outputPath, src); err != nil {
		return 0, err
	}
	return len(unions), nil
}

// RunSchema generates conversion code from a YAML union schema,
// writing the companion file to outputPath.
func RunSchema(inputPath, outputPath string, opts Options) (int, error) {
	pkg, unions, err := LoadSchema(inputPath)
	if err != nil {
		return 0, err
	}
	unions = filterTypes(unions, opts.Types)
	if len(unions) == 0 {
		return 0, nil
	}

	src, err := Synthesize(pkg, filepath.Base(inputPath), unions, opts)
	if err != nil {
		return 0, err
	}
	if err := writeOutput(outputPath, src); err != nil {
		return 0, err
	}
	return len(unions), nil
}

func filterTypes(unions []Union, types []string) []Union {
	if len(types) == 0 {
		return unions
	}
	allowed := make(map[string]struct{}, len(types))
	for _, name := range types {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		allowed[name] = struct{}{}
	}
	var kept []Union
	for _, u := range unions {
		if _, ok := allowed[u.Name]; ok {
			kept = append(kept, u)
		}
	}
	return kept
}

func writeOutput(outputPath string, src []byte) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", outputPath, err)
	}
	return nil
}
