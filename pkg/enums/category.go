package enums

import "strings"

// Category classifies a cart item for surcharge eligibility.
type Category string

const (
	CategoryFresh   Category = "fresh"
	CategoryFrozen  Category = "frozen"
	CategoryAmbient Category = "ambient"
	CategoryWine    Category = "wine"
)

var validCategories = []Category{
	CategoryFresh,
	CategoryFrozen,
	CategoryAmbient,
	CategoryWine,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category. Unrecognized values fall
// back to ambient so a mistagged product never blocks quoting.
func ParseCategory(value string) Category {
	normalized := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, candidate := range validCategories {
		if candidate == normalized {
			return candidate
		}
	}
	return CategoryAmbient
}
