// Package fallback exercises generated code for a union with a
// catch-all variant and identifier-derived labels.
package fallback

//go:generate go run github.com/strenum/strenum.go/strenumgen -i values.go
