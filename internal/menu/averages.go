package menu

import "encoding/json"

// CourseAverage is the mean price of the items in one course.
type CourseAverage struct {
	Course  string  `json:"course"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Averages holds one entry per course, in order of first appearance.
type Averages []CourseAverage

// CalculateAverages groups items by course and returns the arithmetic
// mean price of each course. Courses appear in the order they are first
// seen. No rounding is applied.
func CalculateAverages(items []Item) Averages {
	var order []string
	prices := make(map[string][]float64)

	for _, item := range items {
		if _, seen := prices[item.Course]; !seen {
			order = append(order, item.Course)
		}
		prices[item.Course] = append(prices[item.Course], item.Price)
	}

	averages := make(Averages, 0, len(order))
	for _, course := range order {
		coursePrices := prices[course]

		var sum float64
		for _, p := range coursePrices {
			sum += p
		}

		averages = append(averages, CourseAverage{
			Course:  course,
			Average: sum / float64(len(coursePrices)),
			Count:   len(coursePrices),
		})
	}

	return averages
}

// Lookup returns the average for a course.
func (a Averages) Lookup(course string) (float64, bool) {
	for _, avg := range a {
		if avg.Course == course {
			return avg.Average, true
		}
	}
	return 0, false
}

// AsMap flattens the averages into a course → mean mapping.
func (a Averages) AsMap() map[string]float64 {
	m := make(map[string]float64, len(a))
	for _, avg := range a {
		m[avg.Course] = avg.Average
	}
	return m
}

// MarshalJSON writes a non-finite average as null, which happens when a
// course contains a NaN price.
func (c CourseAverage) MarshalJSON() ([]byte, error) {
	type wire struct {
		Course  string   `json:"course"`
		Average *float64 `json:"average"`
		Count   int      `json:"count"`
	}
	return json.Marshal(wire{
		Course:  c.Course,
		Average: finite(c.Average),
		Count:   c.Count,
	})
}
