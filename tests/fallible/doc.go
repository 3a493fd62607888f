// Package fallible exercises generated code for a union without a
// catch-all variant, where parsing unknown labels fails.
package fallible

//go:generate go run github.com/strenum/strenum.go/strenumgen -i values.go
