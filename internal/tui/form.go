package tui

import (
	"fmt"
	"slices"
	"strings"

	"menuboard/internal/menu"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldName formField = iota
	fieldDescription
	fieldCourse
	fieldPrice
)

func (f formField) label() string {
	switch f {
	case fieldName:
		return "Dish Name"
	case fieldDescription:
		return "Description"
	case fieldCourse:
		return "Course"
	case fieldPrice:
		return "Price"
	}
	return ""
}

// itemForm is the add/edit form. The course field is a picker cycled
// with left/right; every other field is a text input.
type itemForm struct {
	fields  []formField
	inputs  []textinput.Model // parallel to fields; the course slot is unused
	courses []string
	course  int
	focus   int
	focused bool
}

func newItemForm(variant menu.Variant) itemForm {
	fields := []formField{fieldName}
	if variant.RequiresDescription() {
		fields = append(fields, fieldDescription)
	}
	fields = append(fields, fieldCourse, fieldPrice)

	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = field.label()
		inputs[i] = input
	}

	return itemForm{
		fields:  fields,
		inputs:  inputs,
		courses: slices.Clone(menu.Courses),
	}
}

func (f *itemForm) current() formField {
	return f.fields[f.focus]
}

func (f *itemForm) focusAt(index int) tea.Cmd {
	f.blur()
	f.focused = true
	f.focus = (index + len(f.fields)) % len(f.fields)
	if f.current() == fieldCourse {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

func (f *itemForm) blur() {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// next moves focus forward and reports false when it would wrap past
// the last field.
func (f *itemForm) next() (tea.Cmd, bool) {
	if f.focus == len(f.fields)-1 {
		return nil, false
	}
	return f.focusAt(f.focus + 1), true
}

func (f *itemForm) prev() (tea.Cmd, bool) {
	if f.focus == 0 {
		return nil, false
	}
	return f.focusAt(f.focus - 1), true
}

func (f *itemForm) update(message tea.KeyMsg, keys KeyMap) tea.Cmd {
	if f.current() == fieldCourse {
		switch {
		case key.Matches(message, keys.Left):
			f.course = (f.course - 1 + len(f.courses)) % len(f.courses)
		case key.Matches(message, keys.Right):
			f.course = (f.course + 1) % len(f.courses)
		}
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(message)
	return cmd
}

func (f *itemForm) value(field formField) string {
	for i, candidate := range f.fields {
		if candidate == field {
			return f.inputs[i].Value()
		}
	}
	return ""
}

func (f *itemForm) setValue(field formField, value string) {
	for i, candidate := range f.fields {
		if candidate == field {
			f.inputs[i].SetValue(value)
		}
	}
}

func (f *itemForm) draft() menu.Draft {
	return menu.Draft{
		Name:        f.value(fieldName),
		Description: f.value(fieldDescription),
		Course:      f.courses[f.course],
		Price:       f.value(fieldPrice),
	}
}

// clear empties the text fields after a successful add. The selected
// course is kept.
func (f *itemForm) clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
}

// fill loads an existing item for editing. A course outside the known
// set is added to the picker so editing does not lose it.
func (f *itemForm) fill(item menu.Item) {
	draft := menu.DraftFrom(item)
	f.setValue(fieldName, draft.Name)
	f.setValue(fieldDescription, draft.Description)
	f.setValue(fieldPrice, draft.Price)

	index := slices.Index(f.courses, item.Course)
	if index < 0 {
		f.courses = append(f.courses, item.Course)
		index = len(f.courses) - 1
	}
	f.course = index
}

func (f *itemForm) view(theme Theme) string {
	var b strings.Builder
	for i, field := range f.fields {
		label := fmt.Sprintf("%-12s", field.label())
		if f.focused && i == f.focus {
			label = theme.Focused.Render(label)
		} else {
			label = theme.Faint.Render(label)
		}

		var value string
		if field == fieldCourse {
			value = "‹ " + f.courses[f.course] + " ›"
			if f.focused && i == f.focus {
				value = theme.Focused.Render(value)
			}
		} else {
			value = f.inputs[i].View()
		}

		b.WriteString(label + " " + value + "\n")
	}
	return b.String()
}
