// ABOUTME: Registration screen as a bubbletea model wrapping a huh form
// ABOUTME: Creates an author account, then hands the user back to the login screen

package register

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/liubkkkko/taskManager/internal/tui/icons"
	"github.com/liubkkkko/taskManager/internal/tui/styles"
)

// SubmitMsg is sent when the user submits the registration form
type SubmitMsg struct {
	Nickname string
	Email    string
	Password string
}

// CancelledMsg is sent when the user backs out to the login screen
type CancelledMsg struct{}

// Register is the registration screen model
type Register struct {
	form       *huh.Form
	nickname   string
	email      string
	password   string
	errMsg     string
	submitting bool
}

// New creates the registration screen
func New() *Register {
	r := &Register{}
	r.buildForm()
	return r
}

func (r *Register) buildForm() {
	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("nickname").
				Title("Nickname").
				Value(&r.nickname),
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&r.email),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&r.password),
		),
	).WithTheme(styles.FormTheme())
}

// SetError shows a failure message and re-arms the form
func (r *Register) SetError(msg string) {
	r.errMsg = msg
	r.submitting = false
	r.buildForm()
}

// Init implements tea.Model
func (r *Register) Init() tea.Cmd {
	return r.form.Init()
}

// Update implements tea.Model
func (r *Register) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return r, func() tea.Msg { return CancelledMsg{} }
		}
		r.errMsg = ""
	}

	if r.submitting {
		return r, nil
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		r.submitting = true
		nickname, email, password := r.nickname, r.email, r.password
		return r, func() tea.Msg {
			return SubmitMsg{Nickname: nickname, Email: email, Password: password}
		}
	}

	return r, cmd
}

// View implements tea.Model
func (r *Register) View() string {
	out := styles.Title.Render(icons.User.String()+" Sign up") + "\n\n"
	if r.submitting {
		out += "Creating account...\n"
	} else {
		out += r.form.View()
	}
	if r.errMsg != "" {
		out += "\n" + styles.ErrorText.Render(r.errMsg)
	}
	out += "\n" + styles.Help.Render("esc Back to login")
	return out
}
