// ABOUTME: Login screen as a bubbletea model wrapping a huh form
// ABOUTME: Prefills saved credentials and surfaces one generic failure message

package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/liubkkkko/taskManager/internal/tui/icons"
	"github.com/liubkkkko/taskManager/internal/tui/styles"
)

// SubmitMsg is sent when the user submits the login form
type SubmitMsg struct {
	Email    string
	Password string
}

// SwitchToRegisterMsg is sent when the user asks for the sign-up screen
type SwitchToRegisterMsg struct{}

// Login is the login screen model
type Login struct {
	form       *huh.Form
	email      string
	password   string
	errMsg     string
	infoMsg    string
	submitting bool
	width      int
}

// New creates the login screen, prefilled with saved credentials when
// the credential vault had any
func New(prefillEmail, prefillPassword string) *Login {
	l := &Login{
		email:    prefillEmail,
		password: prefillPassword,
	}
	l.buildForm()
	return l
}

// buildForm (re)creates the huh form; huh forms are single-shot, so a new
// one is needed after every completed or failed submission
func (l *Login) buildForm() {
	l.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&l.email),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password),
		),
	).WithTheme(styles.FormTheme())
}

// SetError shows a failure message and re-arms the form
func (l *Login) SetError(msg string) {
	l.errMsg = msg
	l.infoMsg = ""
	l.submitting = false
	l.buildForm()
}

// SetInfo shows an informational message (e.g. after registration)
func (l *Login) SetInfo(msg string) {
	l.infoMsg = msg
	l.errMsg = ""
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+s":
			return l, func() tea.Msg { return SwitchToRegisterMsg{} }
		}
		// A fresh keystroke clears the previous failure
		l.errMsg = ""
	}

	if l.submitting {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		l.submitting = true
		email, password := l.email, l.password
		return l, func() tea.Msg {
			return SubmitMsg{Email: email, Password: password}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	out := styles.Title.Render(icons.Login.String()+" Log in") + "\n\n"
	if l.submitting {
		out += "Signing in...\n"
	} else {
		out += l.form.View()
	}
	if l.infoMsg != "" {
		out += "\n" + styles.StatusOK.Render(l.infoMsg)
	}
	if l.errMsg != "" {
		out += "\n" + styles.ErrorText.Render(l.errMsg)
	}
	out += "\n" + styles.Help.Render("ctrl+s Sign up")
	return out
}
