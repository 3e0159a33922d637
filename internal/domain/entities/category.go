package entities

// Category is one canonical business category with the ordered list of surface
// forms (plurals, misspellings, local names) that resolve to it. Declaration
// order of categories and variants is the matching tie-break.
type Category struct {
	Key      string   `json:"key"`
	Variants []string `json:"variants"`
}
