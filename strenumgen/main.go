package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/strenum/strenum.go/strenumgen/core"
)

// CLI defines the strenumgen command-line interface.
//
//   - input: Go file, directory, or YAML schema
//   - output: override for the generated file (single-input mode only)
//   - interop flags: opt-in JSON/CBOR/MessagePack method families
//
// In directory mode, each source file with //strenum:union declarations
// gets its own "*_strenum.go" companion file (recursive) and the
// --output flag is rejected.
type CLI struct {
	Input   string   `short:"i" help:"Input Go file, directory (recursive), or YAML schema" default:"."`
	Output  string   `short:"o" help:"Output file (file or schema input only; defaults to {input}_strenum.go)"`
	Schema  bool     `help:"Treat input as a YAML union schema instead of Go source"`
	Types   []string `short:"t" help:"Only generate for these union types (may be repeated)"`
	JSON    bool     `help:"Also generate MarshalJSON/UnmarshalJSON"`
	CBOR    bool     `help:"Also generate MarshalCBOR/UnmarshalCBOR"`
	Msgp    bool     `help:"Also generate MarshalMsg/UnmarshalMsg/Msgsize"`
	Verbose bool     `short:"v" help:"Enable verbose diagnostics"`
}

var noteColor = color.New(color.FgCyan)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("strenumgen"),
		kong.Description("Generate string conversions for tagged-union declarations."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	input := strings.TrimSpace(cli.Input)
	if input == "" {
		input = "."
	}
	opts := core.Options{
		Verbose: cli.Verbose,
		Types:   cli.Types,
		JSON:    cli.JSON,
		CBOR:    cli.CBOR,
		Msgp:    cli.Msgp,
	}

	if cli.Schema {
		out := strings.TrimSpace(cli.Output)
		if out == "" {
			out = schemaOutputPath(input)
		}
		n, err := core.RunSchema(input, out, opts)
		if err != nil {
			return err
		}
		note(cli, "%s: generated %d union(s) into %s", input, n, out)
		return nil
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		if cli.Output != "" {
			return errors.New("--output is not allowed when input is a directory")
		}
		return runForDir(cli, input, opts)
	}

	// Single-file mode.
	out := strings.TrimSpace(cli.Output)
	if out == "" {
		out = defaultOutputPath(input)
	}
	n, err := core.Run(input, out, opts)
	if err != nil {
		return err
	}
	if n == 0 {
		note(cli, "%s: no union declarations", input)
		return nil
	}
	note(cli, "%s: generated %d union(s) into %s", input, n, out)
	return nil
}

// runForDir walks a directory tree and generates a companion
// "*_strenum.go" file for each source file with union declarations.
func runForDir(cli *CLI, dir string, opts core.Options) error {
	return filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %q: %w", path, err)
		}
		if entry.IsDir() {
			return nil
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			return nil
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, "_strenum.go") {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %q: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		outPath := defaultOutputPath(path)
		n, err := core.Run(path, outPath, opts)
		if err != nil {
			return err
		}
		if n > 0 {
			note(cli, "%s: generated %d union(s) into %s", path, n, outPath)
		}
		return nil
	})
}

// defaultOutputPath derives the "*_strenum.go" filename for
// a given input Go file path.
func defaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	if !strings.HasSuffix(base, ".go") {
		return filepath.Join(dir, base+"_strenum.go")
	}
	name := strings.TrimSuffix(base, ".go") + "_strenum.go"
	return filepath.Join(dir, name)
}

// schemaOutputPath derives the companion filename for a YAML schema.
func schemaOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"_strenum.go")
}

func note(cli *CLI, format string, args ...any) {
	if !cli.Verbose {
		return
	}
	noteColor.Fprintf(os.Stderr, format+"\n", args...)
}
