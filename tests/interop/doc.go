// Package interop exercises the generated JSON, CBOR, and MessagePack
// method families on both union forms.
package interop

//go:generate go run github.com/strenum/strenum.go/strenumgen --json --cbor --msgp -i codes.go
