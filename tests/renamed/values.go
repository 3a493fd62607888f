//go:build strenum

package renamed

// Values carries explicit lowercase labels that differ from the
// variant identifiers.
//
//strenum:union
type Values struct {
	One   struct{} `strenum:"one"`
	Two   struct{} `strenum:"two"`
	Three struct{} `strenum:"three"`
	Other string
}
