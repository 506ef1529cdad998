package menu

import (
	"cmp"
	"slices"
)

// FilterByCourse returns the items whose course equals the label
// exactly, preserving order. The AllCourses sentinel returns every item.
// The result never aliases the input.
func FilterByCourse(items []Item, course string) []Item {
	if course == AllCourses {
		return slices.Clone(items)
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Course == course {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortByPrice returns a copy ordered by ascending price. Items with equal
// prices keep their menu order.
func SortByPrice(items []Item) []Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return sorted
}
