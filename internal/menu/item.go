package menu

import (
	"encoding/json"
	"math"
)

// Known course labels. Course is stored as free text, so items may
// carry any label; these are the ones the pickers offer.
const (
	CourseStarters = "Starters"
	CourseMains    = "Mains"
	CourseDesserts = "Desserts"

	// AllCourses is the filter sentinel that selects every item.
	AllCourses = "All"
)

// Courses lists the known courses in picker order.
var Courses = []string{CourseStarters, CourseMains, CourseDesserts}

// FilterOptions is the course picker of the filter view: the sentinel
// followed by every known course.
func FilterOptions() []string {
	return append([]string{AllCourses}, Courses...)
}

// Item is a single dish on the menu. Name doubles as the item's key.
type Item struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Course      string  `json:"course" yaml:"course"`
	Price       float64 `json:"price" yaml:"price"`
}

// MarshalJSON writes a non-finite price as null.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string   `json:"name"`
		Description string   `json:"description,omitempty"`
		Course      string   `json:"course"`
		Price       *float64 `json:"price"`
	}{
		Name:        i.Name,
		Description: i.Description,
		Course:      i.Course,
		Price:       finite(i.Price),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Draft holds the raw text of an add or edit form before it becomes an Item.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Course      string `json:"course"`
	Price       string `json:"price"`
}

// DraftFrom renders an existing item back into form text.
func DraftFrom(item Item) Draft {
	return Draft{
		Name:        item.Name,
		Description: item.Description,
		Course:      item.Course,
		Price:       FormatAmount(item.Price),
	}
}

// Item converts the draft without validating it. An empty course falls
// back to the first picker entry.
func (d Draft) Item() Item {
	course := d.Course
	if course == "" {
		course = CourseStarters
	}
	return Item{
		Name:        d.Name,
		Description: d.Description,
		Course:      course,
		Price:       ParsePrice(d.Price),
	}
}
