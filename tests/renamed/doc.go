// Package renamed exercises generated code for a union whose labels
// are supplied by strenum struct tags instead of the identifiers.
package renamed

//go:generate go run github.com/strenum/strenum.go/strenumgen -i values.go
