//go:build strenum

package fallible

// Values has no catch-all variant; unmatched labels are an error.
//
//strenum:union
type Values struct {
	One   struct{}
	Two   struct{}
	Three struct{}
}
