package tui

import (
	"errors"
	"strings"

	"menuboard/internal/auth"
	"menuboard/internal/menu"
	"menuboard/internal/preferences"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies which view is active.
type Screen int

const (
	// ScreenLogin is the placeholder login form.
	ScreenLogin Screen = iota
	// ScreenHome shows the full menu and the course averages.
	ScreenHome
	// ScreenFilter shows the menu narrowed to one course.
	ScreenFilter
	// ScreenManage holds the add form and the removable item list.
	ScreenManage
	// ScreenEdit edits one item in place.
	ScreenEdit
	// ScreenSettings holds the sort preference toggle.
	ScreenSettings
)

// Options wires the model to the shared services.
type Options struct {
	Menu        *menu.Service
	Preferences *preferences.Service
	Auth        *auth.Service

	// Username skips the login screen when set.
	Username string
}

// Model is the bubbletea model for the menu TUI. Every screen reads
// and writes the same menu service.
type Model struct {
	menu  *menu.Service
	prefs *preferences.Service
	auth  *auth.Service
	theme Theme
	keys  KeyMap

	screen   Screen
	username string
	width    int
	height   int

	loginInputs []textinput.Model
	loginFocus  int

	filterCourse int

	addForm     itemForm
	listFocused bool
	listCursor  int

	editForm  itemForm
	editIndex int

	// alert blocks all input until dismissed.
	alert  string
	status string
}

func NewModel(opts Options) Model {
	model := Model{
		menu:  opts.Menu,
		prefs: opts.Preferences,
		auth:  opts.Auth,
		theme: DefaultTheme(),
		keys:  DefaultKeyMap,

		addForm: newItemForm(opts.Menu.Variant()),
	}

	username := textinput.New()
	username.Placeholder = "Username"
	username.Prompt = ""
	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	model.loginInputs = []textinput.Model{username, password}

	if opts.Username != "" {
		model.username = opts.Username
		model.screen = ScreenHome
	} else {
		model.loginInputs[0].Focus()
	}

	return model
}

func (model Model) Init() tea.Cmd {
	if model.screen == ScreenLogin {
		return textinput.Blink
	}
	return nil
}

// Screen returns the active screen.
func (model Model) Screen() Screen {
	return model.screen
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.keys.ForceQuit) {
			return model, tea.Quit
		}

		if model.alert != "" {
			if key.Matches(message, model.keys.Confirm) || key.Matches(message, model.keys.Back) {
				model.alert = ""
			}
			return model, nil
		}

		var cmd tea.Cmd
		switch model.screen {
		case ScreenLogin:
			cmd = model.handleLoginKeys(message)
		case ScreenHome:
			cmd = model.handleHomeKeys(message)
		case ScreenFilter:
			model.handleFilterKeys(message)
		case ScreenManage:
			cmd = model.handleManageKeys(message)
		case ScreenEdit:
			cmd = model.handleEditKeys(message)
		case ScreenSettings:
			model.handleSettingsKeys(message)
		}
		return model, cmd
	}

	return model, nil
}

// --------------------------------------------------
// Login (placeholder: any non-empty pair is accepted)
// --------------------------------------------------
func (model *Model) handleLoginKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Confirm):
		if model.loginFocus == 0 {
			return model.focusLogin(1)
		}
		return model.submitLogin()

	case key.Matches(message, model.keys.NextField):
		return model.focusLogin(model.loginFocus + 1)

	case key.Matches(message, model.keys.PrevField):
		return model.focusLogin(model.loginFocus - 1)
	}

	var cmd tea.Cmd
	model.loginInputs[model.loginFocus], cmd = model.loginInputs[model.loginFocus].Update(message)
	return cmd
}

func (model *Model) focusLogin(index int) tea.Cmd {
	model.loginFocus = (index + len(model.loginInputs)) % len(model.loginInputs)
	for i := range model.loginInputs {
		model.loginInputs[i].Blur()
	}
	return model.loginInputs[model.loginFocus].Focus()
}

func (model *Model) submitLogin() tea.Cmd {
	session, err := model.auth.Login(
		model.loginInputs[0].Value(),
		model.loginInputs[1].Value(),
	)
	if err != nil {
		if errors.Is(err, auth.ErrMissingCredentials) {
			model.alert = "Please enter a username and password."
		} else {
			model.alert = "Login failed: " + err.Error()
		}
		return nil
	}

	model.username = session.Username
	model.loginInputs[1].SetValue("")
	for i := range model.loginInputs {
		model.loginInputs[i].Blur()
	}
	model.status = ""
	model.screen = ScreenHome
	return nil
}

// --------------------------------------------------
// Home
// --------------------------------------------------
func (model *Model) handleHomeKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Quit):
		return tea.Quit
	case key.Matches(message, model.keys.Filter):
		model.filterCourse = 0
		model.screen = ScreenFilter
	case key.Matches(message, model.keys.Manage):
		return model.openManage()
	case key.Matches(message, model.keys.Settings):
		model.screen = ScreenSettings
	case key.Matches(message, model.keys.Logout):
		if model.auth != nil {
			model.username = ""
			model.status = ""
			model.screen = ScreenLogin
			return model.focusLogin(0)
		}
	}
	return nil
}

// --------------------------------------------------
// Filter
// --------------------------------------------------
func (model *Model) handleFilterKeys(message tea.KeyMsg) {
	options := menu.FilterOptions()

	switch {
	case key.Matches(message, model.keys.Back):
		model.screen = ScreenHome
	case key.Matches(message, model.keys.Left):
		model.filterCourse = (model.filterCourse - 1 + len(options)) % len(options)
	case key.Matches(message, model.keys.Right):
		model.filterCourse = (model.filterCourse + 1) % len(options)
	}
}

func (model Model) selectedCourse() string {
	return menu.FilterOptions()[model.filterCourse]
}

// --------------------------------------------------
// Manage (add form + item list)
// --------------------------------------------------
func (model *Model) openManage() tea.Cmd {
	model.screen = ScreenManage
	model.listFocused = false
	model.clampCursor()
	return model.addForm.focusAt(0)
}

func (model *Model) handleManageKeys(message tea.KeyMsg) tea.Cmd {
	if key.Matches(message, model.keys.Back) {
		model.addForm.blur()
		model.status = ""
		model.screen = ScreenHome
		return nil
	}

	if model.listFocused {
		return model.handleManageListKeys(message)
	}

	switch {
	case key.Matches(message, model.keys.Confirm):
		model.submitAdd()
		return nil

	case key.Matches(message, model.keys.NextField):
		cmd, moved := model.addForm.next()
		if !moved {
			model.addForm.blur()
			model.listFocused = true
			model.clampCursor()
		}
		return cmd

	case key.Matches(message, model.keys.PrevField):
		cmd, _ := model.addForm.prev()
		return cmd
	}

	return model.addForm.update(message, model.keys)
}

func (model *Model) handleManageListKeys(message tea.KeyMsg) tea.Cmd {
	items := model.menu.List()

	switch {
	case key.Matches(message, model.keys.Up):
		if model.listCursor > 0 {
			model.listCursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.listCursor < len(items)-1 {
			model.listCursor++
		}

	case key.Matches(message, model.keys.Remove):
		if len(items) == 0 {
			return nil
		}
		name := items[model.listCursor].Name
		model.menu.Remove(name)
		model.status = "Removed " + name
		model.clampCursor()

	case key.Matches(message, model.keys.Edit):
		if len(items) == 0 {
			return nil
		}
		return model.openEdit(model.listCursor)

	case key.Matches(message, model.keys.NextField):
		model.listFocused = false
		return model.addForm.focusAt(0)

	case key.Matches(message, model.keys.PrevField):
		model.listFocused = false
		return model.addForm.focusAt(len(model.addForm.fields) - 1)
	}

	return nil
}

func (model *Model) submitAdd() {
	item, _, err := model.menu.Add(model.addForm.draft())
	if err != nil {
		model.alert = alertFor(err)
		return
	}

	model.addForm.clear()
	model.status = "Added " + item.Name
}

func (model *Model) clampCursor() {
	count := model.menu.Count()
	if model.listCursor >= count {
		model.listCursor = count - 1
	}
	if model.listCursor < 0 {
		model.listCursor = 0
	}
}

// --------------------------------------------------
// Edit
// --------------------------------------------------
func (model *Model) openEdit(index int) tea.Cmd {
	item, err := model.menu.Get(index)
	if err != nil {
		model.alert = alertFor(err)
		return nil
	}

	model.editForm = newItemForm(model.menu.Variant())
	model.editForm.fill(item)
	model.editIndex = index
	model.screen = ScreenEdit
	return model.editForm.focusAt(0)
}

func (model *Model) handleEditKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Back):
		model.editForm.blur()
		model.screen = ScreenManage
		return nil

	case key.Matches(message, model.keys.Confirm):
		item, err := model.menu.ReplaceAt(model.editIndex, model.editForm.draft())
		if err != nil {
			model.alert = alertFor(err)
			return nil
		}
		model.editForm.blur()
		model.status = "Saved " + item.Name
		model.screen = ScreenManage
		return nil

	case key.Matches(message, model.keys.NextField):
		cmd, moved := model.editForm.next()
		if !moved {
			cmd = model.editForm.focusAt(0)
		}
		return cmd

	case key.Matches(message, model.keys.PrevField):
		cmd, moved := model.editForm.prev()
		if !moved {
			cmd = model.editForm.focusAt(len(model.editForm.fields) - 1)
		}
		return cmd
	}

	return model.editForm.update(message, model.keys)
}

// --------------------------------------------------
// Settings
// --------------------------------------------------
func (model *Model) handleSettingsKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.screen = ScreenHome
	case key.Matches(message, model.keys.Toggle):
		model.prefs.Toggle()
	}
}

func (model Model) sortByPrice() bool {
	return model.prefs != nil && model.prefs.SortByPrice()
}

func alertFor(err error) string {
	var verr *menu.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Please fill in all fields: " + strings.Join(verr.Fields, ", ") + "."
	case errors.Is(err, menu.ErrIndexOutOfRange):
		return "That menu item no longer exists."
	}
	return err.Error()
}
