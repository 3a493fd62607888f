//go:build strenum

package interop

// Code carries wire status labels; unknown codes are preserved by
// the catch-all variant.
//
//strenum:union
type Code struct {
	OK       struct{} `strenum:"ok"`
	NotFound struct{} `strenum:"not_found"`
	Raw      string
}

// Mode selects how a stream is opened.
//
//strenum:union
type Mode struct {
	Read  struct{}
	Write struct{}
}
