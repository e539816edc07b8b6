package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is returned when a label doesn't name a known category
var ErrInvalidCategory = errors.New("invalid category")

// Category is a playlist category from the fixed vocabulary.
// The zero value is Food; use Other for "no match".
type Category uint8

// categories in vocabulary order, Other must stay last
const (
	CategoryFood Category = iota
	CategoryCareer
	CategoryInvestment
	CategoryEducation
	CategoryEntertainment
	CategoryHealthFitness
	CategoryTechnology
	CategoryTravel
	CategoryLifestyle
	CategoryOther

	categoriesCount = int(CategoryOther) + 1
)

var categoryLabels = [categoriesCount]string{
	CategoryFood:          "Food",
	CategoryCareer:        "Career",
	CategoryInvestment:    "Investment",
	CategoryEducation:     "Education",
	CategoryEntertainment: "Entertainment",
	CategoryHealthFitness: "Health & Fitness",
	CategoryTechnology:    "Technology",
	CategoryTravel:        "Travel",
	CategoryLifestyle:     "Lifestyle",
	CategoryOther:         "Other",
}

// Categories returns the whole vocabulary in its fixed order, Other included
func Categories() []Category {
	res := make([]Category, categoriesCount)
	for i := range res {
		res[i] = Category(i)
	}
	return res
}

// CategoryLabels returns labels of all categories in vocabulary order
func CategoryLabels() []string {
	res := make([]string, categoriesCount)
	copy(res, categoryLabels[:])
	return res
}

// ParseCategory converts a label like "Health & Fitness" to Category.
// Matching is exact, labels are never coerced.
func ParseCategory(label string) (Category, error) {
	for i, l := range categoryLabels {
		if l == label {
			return Category(i), nil
		}
	}
	return CategoryOther, fmt.Errorf("%w: %q", ErrInvalidCategory, label)
}

// Valid reports whether c is a member of the vocabulary
func (c Category) Valid() bool {
	return int(c) < categoriesCount
}

// String returns the category label
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryLabels[c]
}

// MarshalText implements encoding.TextMarshaler, used for JSON values and map keys
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, uint8(c))
	}
	return []byte(categoryLabels[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
