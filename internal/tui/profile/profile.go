// ABOUTME: Profile screen showing the author's identity, jobs, and workspaces
// ABOUTME: Display-only; data is re-fetched on every visit

package profile

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liubkkkko/taskManager/internal/api"
	"github.com/liubkkkko/taskManager/internal/tui/icons"
	"github.com/liubkkkko/taskManager/internal/tui/styles"
	"github.com/liubkkkko/taskManager/internal/tui/widgets"
)

// BackMsg asks the app to return to the workspaces screen
type BackMsg struct{}

// RefreshMsg asks the app to reload the profile data
type RefreshMsg struct{}

// Profile is the profile screen model
type Profile struct {
	author     *api.Author
	workspaces []api.Workspace
	jobs       []api.Job
	loading    bool
	errMsg     string
	width      int
}

// New creates a loading profile screen
func New() *Profile {
	return &Profile{loading: true}
}

// SetData fills the screen and ends the loading state
func (p *Profile) SetData(author *api.Author, workspaces []api.Workspace, jobs []api.Job) {
	p.author = author
	p.workspaces = workspaces
	p.jobs = jobs
	p.loading = false
	p.errMsg = ""
}

// SetError shows an error line
func (p *Profile) SetError(msg string) {
	p.errMsg = msg
	p.loading = false
}

// Init implements tea.Model
func (p *Profile) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p *Profile) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "r":
		p.loading = true
		return p, func() tea.Msg { return RefreshMsg{} }
	case "b", "esc":
		return p, func() tea.Msg { return BackMsg{} }
	}
	return p, nil
}

// View implements tea.Model
func (p *Profile) View() string {
	out := styles.Title.Render(icons.Profile.String()+" Profile") + "\n\n"

	if p.loading {
		out += "Loading profile...\n"
		return out
	}
	if p.errMsg != "" {
		out += styles.ErrorText.Render(p.errMsg) + "\n"
		return out
	}
	if p.author == nil {
		return out
	}

	out += styles.ValueStyle.Render(p.author.Nickname) + "\n"
	out += fmt.Sprintf("ID:      %d\n", p.author.ID)
	out += fmt.Sprintf("Email:   %s\n", p.author.Email)
	if p.author.Role != "" {
		out += fmt.Sprintf("Role:    %s\n", p.author.Role)
	}
	if !p.author.CreatedAt.IsZero() {
		out += fmt.Sprintf("Joined:  %s\n", p.author.CreatedAt.Format(time.DateOnly))
	}

	out += "\n" + styles.Subtitle.Render(fmt.Sprintf("Workspaces (%d)", len(p.workspaces))) + "\n"
	for _, ws := range p.workspaces {
		out += fmt.Sprintf("  %s %s\n", ws.Name, widgets.StatusBadge(ws.Status))
	}

	out += "\n" + styles.Subtitle.Render(fmt.Sprintf("Jobs (%d)", len(p.jobs))) + "\n"
	done := 0
	for _, job := range p.jobs {
		if job.Status == "done" {
			done++
		}
		out += fmt.Sprintf("  %s %s\n", job.Title, widgets.StatusBadge(job.Status))
	}
	if len(p.jobs) > 0 {
		out += "  " + widgets.CompletionBar(done, len(p.jobs), 20) + "\n"
	}

	return out
}
