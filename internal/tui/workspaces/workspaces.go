// ABOUTME: Workspaces screen listing the author's workspaces
// ABOUTME: Supports cursor navigation, creation via a huh form, and refresh

package workspaces

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/liubkkkko/taskManager/internal/api"
	"github.com/liubkkkko/taskManager/internal/tui/icons"
	"github.com/liubkkkko/taskManager/internal/tui/styles"
	"github.com/liubkkkko/taskManager/internal/tui/widgets"
)

// CreateMsg asks the app to create a workspace
type CreateMsg struct {
	Name        string
	Description string
}

// OpenMsg asks the app to open a workspace's jobs
type OpenMsg struct {
	Workspace api.Workspace
}

// RefreshMsg asks the app to reload the list
type RefreshMsg struct{}

// Workspaces is the workspace list screen model
type Workspaces struct {
	items   []api.Workspace
	cursor  int
	loading bool
	errMsg  string

	creating    bool
	form        *huh.Form
	name        string
	description string

	width  int
	height int
}

// New creates an empty, loading workspace screen
func New() *Workspaces {
	return &Workspaces{loading: true}
}

// SetSize updates the screen dimensions
func (w *Workspaces) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// SetItems replaces the list contents and ends the loading state
func (w *Workspaces) SetItems(items []api.Workspace) {
	w.items = items
	w.loading = false
	w.errMsg = ""
	if w.cursor >= len(items) {
		w.cursor = 0
	}
}

// Prepend inserts a newly created workspace at the top
func (w *Workspaces) Prepend(ws api.Workspace) {
	w.items = append([]api.Workspace{ws}, w.items...)
	w.cursor = 0
	w.creating = false
}

// SetError shows an error line; the list keeps its previous contents
func (w *Workspaces) SetError(msg string) {
	w.errMsg = msg
	w.loading = false
	w.creating = false
}

func (w *Workspaces) buildForm() {
	w.name = ""
	w.description = ""
	w.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a name is required")
					}
					return nil
				}).
				Value(&w.name),
			huh.NewInput().
				Key("description").
				Title("Description (optional)").
				Value(&w.description),
		),
	).WithTheme(styles.FormTheme())
}

// Creating reports whether the inline create form is capturing input.
func (w *Workspaces) Creating() bool {
	return w.creating
}

// Init implements tea.Model
func (w *Workspaces) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (w *Workspaces) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if w.creating {
		return w.updateCreate(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch key.String() {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(w.items)-1 {
			w.cursor++
		}
	case "enter":
		if w.cursor < len(w.items) {
			ws := w.items[w.cursor]
			return w, func() tea.Msg { return OpenMsg{Workspace: ws} }
		}
	case "n":
		w.creating = true
		w.buildForm()
		return w, w.form.Init()
	case "r":
		w.loading = true
		return w, func() tea.Msg { return RefreshMsg{} }
	}

	return w, nil
}

func (w *Workspaces) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		w.creating = false
		return w, nil
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		name := strings.TrimSpace(w.name)
		description := strings.TrimSpace(w.description)
		return w, func() tea.Msg {
			return CreateMsg{Name: name, Description: description}
		}
	}

	return w, cmd
}

// View implements tea.Model
func (w *Workspaces) View() string {
	out := styles.Title.Render(icons.Workspace.String()+" Workspaces") + "\n\n"

	if w.creating {
		out += styles.Subtitle.Render("New workspace") + "\n"
		out += w.form.View()
		out += "\n" + styles.Help.Render("esc Cancel")
		return out
	}

	switch {
	case w.loading:
		out += "Loading workspaces...\n"
	case len(w.items) == 0:
		out += styles.Subtitle.Render("No workspaces yet. Press n to create one.") + "\n"
	default:
		for i, ws := range w.items {
			out += w.renderRow(i, ws)
		}
	}

	if w.errMsg != "" {
		out += "\n" + styles.ErrorText.Render(w.errMsg)
	}
	return out
}

func (w *Workspaces) renderRow(i int, ws api.Workspace) string {
	marker := "  "
	name := ws.Name
	if i == w.cursor {
		marker = styles.SelectedRow.Render("> ")
		name = styles.SelectedRow.Render(name)
	}

	line := fmt.Sprintf("%s%s %s", marker, name, widgets.StatusBadge(ws.Status))
	if len(ws.Jobs) > 0 {
		line += styles.Subtitle.Render(fmt.Sprintf("  %d job(s)", len(ws.Jobs)))
	}
	line += "\n"
	if ws.Description != "" {
		line += "    " + styles.Subtitle.Render(ws.Description) + "\n"
	}
	return line
}
