package templates

import "embed"

// FS exposes the codegen templates used by strenumgen
// for per-union conversion generation.
//
//go:embed *.go.tpl
var FS embed.FS
