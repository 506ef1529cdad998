package tui

import (
	"fmt"
	"strings"

	"menuboard/internal/menu"

	"github.com/charmbracelet/lipgloss"
)

func (model Model) View() string {
	var body string
	switch model.screen {
	case ScreenLogin:
		body = model.viewLogin()
	case ScreenHome:
		body = model.viewHome()
	case ScreenFilter:
		body = model.viewFilter()
	case ScreenManage:
		body = model.viewManage()
	case ScreenEdit:
		body = model.viewEdit()
	case ScreenSettings:
		body = model.viewSettings()
	}

	body = lipgloss.NewStyle().Padding(1, 2).Render(body)

	if model.alert != "" {
		return model.viewAlert(body)
	}
	return body
}

func (model Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(model.theme.Title.Render("Login") + "\n")

	labels := []string{"Username", "Password"}
	for i, input := range model.loginInputs {
		label := fmt.Sprintf("%-10s", labels[i])
		if i == model.loginFocus {
			label = model.theme.Focused.Render(label)
		} else {
			label = model.theme.Faint.Render(label)
		}
		b.WriteString(label + " " + input.View() + "\n")
	}

	b.WriteString(model.theme.Help.Render(helpLine(model.keys.NextField, model.keys.Confirm, model.keys.ForceQuit)))
	return b.String()
}

func (model Model) viewHome() string {
	var b strings.Builder

	greeting := "Welcome!"
	if model.username != "" {
		greeting = "Welcome, " + model.username + "!"
	}
	b.WriteString(model.theme.Heading.Render(greeting) + "\n\n")

	items := model.menu.List()
	b.WriteString(model.theme.Title.Render("Full Menu") + "\n")
	b.WriteString(model.renderItems(items, model.sortByPrice(), -1))

	b.WriteString("\n" + model.theme.Title.Render("Average Prices by Course:") + "\n")
	averages := menu.CalculateAverages(items)
	if len(averages) == 0 {
		b.WriteString(model.theme.Faint.Render("No items on the menu.") + "\n")
	}
	for _, avg := range averages {
		b.WriteString(fmt.Sprintf("%s: %s\n",
			model.theme.Text.Render(avg.Course),
			model.theme.Price.Render(menu.FormatPrice(avg.Average)),
		))
	}

	help := []string{helpLine(model.keys.Filter, model.keys.Manage, model.keys.Settings)}
	if model.auth != nil {
		help = append(help, helpLine(model.keys.Logout))
	}
	help = append(help, helpLine(model.keys.Quit))
	b.WriteString(model.theme.Help.Render(strings.Join(help, " • ")))
	return b.String()
}

func (model Model) viewFilter() string {
	var b strings.Builder
	b.WriteString(model.theme.Title.Render("Filter Menu") + "\n")

	var picker []string
	for i, option := range menu.FilterOptions() {
		if i == model.filterCourse {
			picker = append(picker, model.theme.Selected.Render(" "+option+" "))
		} else {
			picker = append(picker, model.theme.Faint.Render(" "+option+" "))
		}
	}
	b.WriteString(strings.Join(picker, " ") + "\n\n")

	b.WriteString(model.renderItems(model.menu.Filter(model.selectedCourse()), model.sortByPrice(), -1))
	b.WriteString(model.theme.Help.Render(helpLine(model.keys.Left, model.keys.Right, model.keys.Back)))
	return b.String()
}

func (model Model) viewManage() string {
	var b strings.Builder
	b.WriteString(model.theme.Title.Render("Manage Menu") + "\n")
	b.WriteString(model.addForm.view(model.theme))

	if model.status != "" {
		b.WriteString(model.theme.Status.Render(model.status) + "\n")
	}

	cursor := -1
	if model.listFocused {
		cursor = model.listCursor
	}
	b.WriteString("\n")
	// Store order regardless of the sort preference: the cursor indexes the store.
	b.WriteString(model.renderItems(model.menu.List(), false, cursor))

	if model.listFocused {
		b.WriteString(model.theme.Help.Render(helpLine(model.keys.Up, model.keys.Down, model.keys.Edit, model.keys.Remove, model.keys.NextField, model.keys.Back)))
	} else {
		b.WriteString(model.theme.Help.Render(helpLine(model.keys.NextField, model.keys.Confirm, model.keys.Back)))
	}
	return b.String()
}

func (model Model) viewEdit() string {
	var b strings.Builder
	b.WriteString(model.theme.Title.Render(fmt.Sprintf("Edit Item #%d", model.editIndex+1)) + "\n")
	b.WriteString(model.editForm.view(model.theme))
	b.WriteString(model.theme.Help.Render(helpLine(model.keys.NextField, model.keys.Confirm, model.keys.Back)))
	return b.String()
}

func (model Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(model.theme.Title.Render("Settings") + "\n")

	state := "off"
	if model.sortByPrice() {
		state = "on"
	}
	b.WriteString(fmt.Sprintf("Sort menu by price: %s\n", model.theme.Focused.Render(state)))
	b.WriteString(model.theme.Help.Render(helpLine(model.keys.Toggle, model.keys.Back)))
	return b.String()
}

// renderItems lists items, ordered by price when sorted is set. cursor
// highlights a row by its position in the output; -1 highlights nothing.
func (model Model) renderItems(items []menu.Item, sorted bool, cursor int) string {
	if len(items) == 0 {
		return model.theme.Faint.Render("No items.") + "\n"
	}

	rows := items
	if sorted {
		rows = menu.SortByPrice(items)
	}

	detailed := model.menu.Variant().RequiresDescription()

	var b strings.Builder
	for i, item := range rows {
		line := fmt.Sprintf("%-24s %-10s %s",
			item.Name,
			item.Course,
			model.theme.Price.Render(menu.FormatPrice(item.Price)),
		)
		if i == cursor {
			line = model.theme.Selected.Render(line)
		}
		b.WriteString(line + "\n")

		if detailed && item.Description != "" {
			b.WriteString("  " + model.theme.Faint.Render(item.Description) + "\n")
		}
	}
	return b.String()
}

func (model Model) viewAlert(background string) string {
	box := model.theme.Alert.Render(
		model.theme.Danger.Render(model.alert) + "\n\n" +
			model.theme.Faint.Render("press enter to dismiss"),
	)

	if model.width == 0 || model.height == 0 {
		return background + "\n" + box
	}
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, box)
}
