// Package wire exercises generation from a YAML union schema instead
// of a Go definition file.
package wire

//go:generate go run github.com/strenum/strenum.go/strenumgen --schema -i frames.yaml
