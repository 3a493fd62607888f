//go:build strenum

package fallback

// Values is the closed set of sample labels, with a catch-all for
// anything this build does not know about.
//
//strenum:union
type Values struct {
	One   struct{}
	Two   struct{}
	Three struct{}
	Other string
}
