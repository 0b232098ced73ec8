// ABOUTME: Jobs screen listing jobs for a workspace or for the whole author
// ABOUTME: Supports creation via a huh form with a workspace select when unscoped

package jobs

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/liubkkkko/taskManager/internal/api"
	"github.com/liubkkkko/taskManager/internal/tui/icons"
	"github.com/liubkkkko/taskManager/internal/tui/styles"
	"github.com/liubkkkko/taskManager/internal/tui/widgets"
)

// CreateMsg asks the app to create a job
type CreateMsg struct {
	Title       string
	Content     string
	WorkspaceID int64
}

// RefreshMsg asks the app to reload the list
type RefreshMsg struct{}

// BackMsg asks the app to return to the workspaces screen
type BackMsg struct{}

// Jobs is the job list screen model
type Jobs struct {
	items      []api.Job
	workspaces []api.Workspace
	scopedTo   *api.Workspace // nil means all of the author's jobs
	cursor     int
	loading    bool
	errMsg     string

	creating   bool
	form       *huh.Form
	title      string
	content    string
	workspace  string // selected workspace ID as string, for huh

	width  int
	height int
}

// New creates a loading jobs screen; scope is optional
func New(scope *api.Workspace) *Jobs {
	return &Jobs{scopedTo: scope, loading: true}
}

// SetSize updates the screen dimensions
func (j *Jobs) SetSize(width, height int) {
	j.width = width
	j.height = height
}

// SetItems replaces the list contents and ends the loading state
func (j *Jobs) SetItems(items []api.Job, workspaces []api.Workspace) {
	j.items = items
	j.workspaces = workspaces
	j.loading = false
	j.errMsg = ""
	if j.cursor >= len(items) {
		j.cursor = 0
	}
}

// Prepend inserts a newly created job at the top
func (j *Jobs) Prepend(job api.Job) {
	j.items = append([]api.Job{job}, j.items...)
	j.cursor = 0
	j.creating = false
}

// SetError shows an error line; the list keeps its previous contents
func (j *Jobs) SetError(msg string) {
	j.errMsg = msg
	j.loading = false
	j.creating = false
}

func (j *Jobs) buildForm() {
	j.title = ""
	j.content = ""

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("a title is required")
				}
				return nil
			}).
			Value(&j.title),
		huh.NewInput().
			Key("content").
			Title("Description (optional)").
			Value(&j.content),
	}

	// Unscoped creation needs a target workspace
	if j.scopedTo == nil && len(j.workspaces) > 0 {
		options := make([]huh.Option[string], 0, len(j.workspaces))
		for _, ws := range j.workspaces {
			options = append(options, huh.NewOption(ws.Name, strconv.FormatInt(ws.ID, 10)))
		}
		j.workspace = options[0].Value
		fields = append(fields, huh.NewSelect[string]().
			Key("workspace").
			Title("Workspace").
			Options(options...).
			Value(&j.workspace))
	}

	j.form = huh.NewForm(huh.NewGroup(fields...)).WithTheme(styles.FormTheme())
}

// targetWorkspaceID resolves where a new job should land
func (j *Jobs) targetWorkspaceID() int64 {
	if j.scopedTo != nil {
		return j.scopedTo.ID
	}
	id, err := strconv.ParseInt(j.workspace, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Creating reports whether the inline create form is capturing input.
func (j *Jobs) Creating() bool {
	return j.creating
}

// Scope returns the workspace this view is limited to, or nil for all jobs.
func (j *Jobs) Scope() *api.Workspace {
	return j.scopedTo
}

// Init implements tea.Model
func (j *Jobs) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (j *Jobs) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if j.creating {
		return j.updateCreate(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return j, nil
	}

	switch key.String() {
	case "up", "k":
		if j.cursor > 0 {
			j.cursor--
		}
	case "down":
		if j.cursor < len(j.items)-1 {
			j.cursor++
		}
	case "n":
		if j.scopedTo == nil && len(j.workspaces) == 0 {
			j.errMsg = "create a workspace first"
			return j, nil
		}
		j.creating = true
		j.buildForm()
		return j, j.form.Init()
	case "r":
		j.loading = true
		return j, func() tea.Msg { return RefreshMsg{} }
	case "b", "esc":
		return j, func() tea.Msg { return BackMsg{} }
	}

	return j, nil
}

func (j *Jobs) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		j.creating = false
		return j, nil
	}

	form, cmd := j.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		j.form = f
	}

	if j.form.State == huh.StateCompleted {
		title := strings.TrimSpace(j.title)
		content := strings.TrimSpace(j.content)
		workspaceID := j.targetWorkspaceID()
		return j, func() tea.Msg {
			return CreateMsg{Title: title, Content: content, WorkspaceID: workspaceID}
		}
	}

	return j, cmd
}

// View implements tea.Model
func (j *Jobs) View() string {
	title := icons.Job.String() + " Jobs"
	if j.scopedTo != nil {
		title += " — " + j.scopedTo.Name
	}
	out := styles.Title.Render(title) + "\n\n"

	if j.creating {
		out += styles.Subtitle.Render("New job") + "\n"
		out += j.form.View()
		out += "\n" + styles.Help.Render("esc Cancel")
		return out
	}

	switch {
	case j.loading:
		out += "Loading jobs...\n"
	case len(j.items) == 0:
		out += styles.Subtitle.Render("No jobs to show. Press n to create one.") + "\n"
	default:
		names := make(map[int64]string, len(j.workspaces))
		for _, ws := range j.workspaces {
			names[ws.ID] = ws.Name
		}
		for i, job := range j.items {
			out += j.renderRow(i, job, names)
		}
	}

	if j.errMsg != "" {
		out += "\n" + styles.ErrorText.Render(j.errMsg)
	}
	return out
}

func (j *Jobs) renderRow(i int, job api.Job, names map[int64]string) string {
	marker := "  "
	title := job.Title
	if i == j.cursor {
		marker = styles.SelectedRow.Render("> ")
		title = styles.SelectedRow.Render(title)
	}

	line := fmt.Sprintf("%s%s %s", marker, title, widgets.StatusBadge(job.Status))
	if j.scopedTo == nil {
		if name := names[job.WorkspaceID]; name != "" {
			line += styles.Subtitle.Render("  in " + name)
		}
	}
	line += "\n"
	if job.Content != "" {
		line += "    " + styles.Subtitle.Render(job.Content) + "\n"
	}
	return line
}
