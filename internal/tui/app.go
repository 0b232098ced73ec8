// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Owns the session store, applies the route guard, and routes messages to screens

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/liubkkkko/taskManager/internal/api"
	"github.com/liubkkkko/taskManager/internal/credentials"
	"github.com/liubkkkko/taskManager/internal/session"
	"github.com/liubkkkko/taskManager/internal/tui/icons"
	"github.com/liubkkkko/taskManager/internal/tui/jobs"
	"github.com/liubkkkko/taskManager/internal/tui/login"
	"github.com/liubkkkko/taskManager/internal/tui/profile"
	"github.com/liubkkkko/taskManager/internal/tui/register"
	"github.com/liubkkkko/taskManager/internal/tui/styles"
	"github.com/liubkkkko/taskManager/internal/tui/workspaces"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenWorkspaces
	ScreenJobs
	ScreenProfile
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping the frame
	frameOverhead    = 4  // Header, footer and their surrounding newlines
)

// sessionResolvedMsg is sent when the startup session check finishes
type sessionResolvedMsg struct {
	state session.State
}

// sessionEndedMsg is sent after sign-out teardown completes
type sessionEndedMsg struct{}

// loginDoneMsg is sent when a sign-in attempt returns
type loginDoneMsg struct {
	author *api.Author
	err    error
}

// registerDoneMsg is sent when account creation returns
type registerDoneMsg struct {
	email string
	err   error
}

// workspacesLoadedMsg is sent when the workspace list arrives
type workspacesLoadedMsg struct {
	items []api.Workspace
	err   error
}

// workspaceCreatedMsg is sent when a workspace create call returns
type workspaceCreatedMsg struct {
	ws  *api.Workspace
	err error
}

// jobsLoadedMsg is sent when a job list arrives
type jobsLoadedMsg struct {
	items      []api.Job
	workspaces []api.Workspace
	err        error
}

// jobCreatedMsg is sent when a job create call returns
type jobCreatedMsg struct {
	job *api.Job
	err error
}

// profileLoadedMsg carries everything the profile screen shows
type profileLoadedMsg struct {
	author     *api.Author
	workspaces []api.Workspace
	jobs       []api.Job
	err        error
}

// App is the root model for the TUI
type App struct {
	client *api.Client
	store  *session.Store
	creds  credentials.Manager

	screen Screen
	width  int
	height int
	spin   spinner.Model

	// Child models
	loginScreen      *login.Login
	registerScreen   *register.Register
	workspacesScreen *workspaces.Workspaces
	jobsScreen       *jobs.Jobs
	profileScreen    *profile.Profile
}

// New creates a new TUI application
func New(apiClient *api.Client, configDir string) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		client: apiClient,
		store:  session.NewStore(),
		creds:  credentials.NewManager(configDir),
		screen: ScreenLoading,
		spin:   sp,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.bootstrap())
}

// bootstrap resolves the session from stored cookies before any screen shows
func (a *App) bootstrap() tea.Cmd {
	return func() tea.Msg {
		session.Bootstrap(context.Background(), a.client, a.store)
		return sessionResolvedMsg{state: a.store.Get()}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.workspacesScreen != nil {
			a.workspacesScreen.SetSize(a.width, a.contentHeight())
		}
		if a.jobsScreen != nil {
			a.jobsScreen.SetSize(a.width, a.contentHeight())
		}
		return a, nil

	case spinner.TickMsg:
		if a.screen != ScreenLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case sessionResolvedMsg:
		if msg.state.Authenticated {
			return a.gotoWorkspaces()
		}
		return a.gotoLogin("", "")

	case sessionEndedMsg:
		return a.gotoLogin("", "")

	case login.SubmitMsg:
		return a, a.signIn(msg.Email, msg.Password)

	case login.SwitchToRegisterMsg:
		a.registerScreen = register.New()
		a.screen = ScreenRegister
		return a, a.registerScreen.Init()

	case loginDoneMsg:
		if msg.err != nil {
			if a.loginScreen != nil {
				a.loginScreen.SetError("Invalid email or password")
			}
			return a, nil
		}
		return a.gotoWorkspaces()

	case register.SubmitMsg:
		return a, a.signUp(msg.Nickname, msg.Email, msg.Password)

	case register.CancelledMsg:
		return a.gotoLogin("", "")

	case registerDoneMsg:
		if msg.err != nil {
			if a.registerScreen != nil {
				a.registerScreen.SetError("Registration failed")
			}
			return a, nil
		}
		model, cmd := a.gotoLogin(msg.email, "")
		if a.loginScreen != nil {
			a.loginScreen.SetInfo("Account created, log in to continue")
		}
		return model, cmd

	case workspaces.RefreshMsg:
		return a, a.loadWorkspaces()

	case workspaces.CreateMsg:
		return a, a.createWorkspace(msg.Name, msg.Description)

	case workspaces.OpenMsg:
		ws := msg.Workspace
		a.jobsScreen = jobs.New(&ws)
		a.jobsScreen.SetSize(a.width, a.contentHeight())
		a.screen = ScreenJobs
		return a, a.loadJobs()

	case workspacesLoadedMsg:
		if msg.err != nil {
			return a.pageError(msg.err, func(text string) {
				if a.workspacesScreen != nil {
					a.workspacesScreen.SetError(text)
				}
			})
		}
		if a.workspacesScreen != nil {
			a.workspacesScreen.SetItems(msg.items)
		}
		return a, nil

	case workspaceCreatedMsg:
		if msg.err != nil {
			return a.pageError(msg.err, func(text string) {
				if a.workspacesScreen != nil {
					a.workspacesScreen.SetError(text)
				}
			})
		}
		if a.workspacesScreen != nil && msg.ws != nil {
			a.workspacesScreen.Prepend(*msg.ws)
		}
		return a, nil

	case jobs.RefreshMsg:
		return a, a.loadJobs()

	case jobs.CreateMsg:
		return a, a.createJob(msg.Title, msg.Content, msg.WorkspaceID)

	case jobs.BackMsg:
		return a.gotoWorkspaces()

	case jobsLoadedMsg:
		if msg.err != nil {
			return a.pageError(msg.err, func(text string) {
				if a.jobsScreen != nil {
					a.jobsScreen.SetError(text)
				}
			})
		}
		if a.jobsScreen != nil {
			a.jobsScreen.SetItems(msg.items, msg.workspaces)
		}
		return a, nil

	case jobCreatedMsg:
		if msg.err != nil {
			return a.pageError(msg.err, func(text string) {
				if a.jobsScreen != nil {
					a.jobsScreen.SetError(text)
				}
			})
		}
		if a.jobsScreen != nil && msg.job != nil {
			a.jobsScreen.Prepend(*msg.job)
		}
		return a, nil

	case profile.RefreshMsg:
		return a, a.loadProfile()

	case profile.BackMsg:
		return a.gotoWorkspaces()

	case profileLoadedMsg:
		if msg.err != nil {
			return a.pageError(msg.err, func(text string) {
				if a.profileScreen != nil {
					a.profileScreen.SetError(text)
				}
			})
		}
		if a.profileScreen != nil {
			a.profileScreen.SetData(msg.author, msg.workspaces, msg.jobs)
		}
		return a, nil

	default:
		// huh form internals need every message while a form is active
		return a.forwardToScreen(msg)
	}
}

// handleKey routes keyboard input: global shortcuts first, then the screen
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.protectedScreen() && !a.inForm() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "ctrl+l":
			return a, a.signOut()
		case "1":
			if a.screen != ScreenWorkspaces {
				return a.gotoWorkspaces()
			}
			return a, nil
		case "2":
			if a.screen != ScreenJobs || a.jobsScreen == nil || a.jobsScreen.Scope() != nil {
				a.jobsScreen = jobs.New(nil)
				a.jobsScreen.SetSize(a.width, a.contentHeight())
				a.screen = ScreenJobs
				return a, a.loadJobs()
			}
			return a, nil
		case "3":
			if a.screen != ScreenProfile {
				a.profileScreen = profile.New()
				a.screen = ScreenProfile
				return a, a.loadProfile()
			}
			return a, nil
		}
	}

	return a.forwardToScreen(msg)
}

// forwardToScreen hands a message to the active child model
func (a *App) forwardToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen == nil {
			return a, nil
		}
		model, cmd := a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
		return a, cmd
	case ScreenRegister:
		if a.registerScreen == nil {
			return a, nil
		}
		model, cmd := a.registerScreen.Update(msg)
		a.registerScreen = model.(*register.Register)
		return a, cmd
	case ScreenWorkspaces:
		if a.workspacesScreen == nil {
			return a, nil
		}
		model, cmd := a.workspacesScreen.Update(msg)
		a.workspacesScreen = model.(*workspaces.Workspaces)
		return a, cmd
	case ScreenJobs:
		if a.jobsScreen == nil {
			return a, nil
		}
		model, cmd := a.jobsScreen.Update(msg)
		a.jobsScreen = model.(*jobs.Jobs)
		return a, cmd
	case ScreenProfile:
		if a.profileScreen == nil {
			return a, nil
		}
		model, cmd := a.profileScreen.Update(msg)
		a.profileScreen = model.(*profile.Profile)
		return a, cmd
	}
	return a, nil
}

// protectedScreen reports whether the current screen requires a session
func (a *App) protectedScreen() bool {
	switch a.screen {
	case ScreenWorkspaces, ScreenJobs, ScreenProfile:
		return true
	}
	return false
}

// inForm reports whether a child create form currently owns the keyboard
func (a *App) inForm() bool {
	switch a.screen {
	case ScreenWorkspaces:
		return a.workspacesScreen != nil && a.workspacesScreen.Creating()
	case ScreenJobs:
		return a.jobsScreen != nil && a.jobsScreen.Creating()
	}
	return false
}

// gotoLogin tears down all authenticated screens and shows the login form.
// Returning to login always starts from a clean slate, matching a full
// application reload.
func (a *App) gotoLogin(prefillEmail, prefillPassword string) (tea.Model, tea.Cmd) {
	a.workspacesScreen = nil
	a.jobsScreen = nil
	a.profileScreen = nil
	a.registerScreen = nil

	if prefillEmail == "" && prefillPassword == "" {
		if saved, ok := a.creds.TryRetrieve(); ok {
			prefillEmail, prefillPassword = saved.ID, saved.Password
		}
	}
	a.loginScreen = login.New(prefillEmail, prefillPassword)
	a.screen = ScreenLogin
	return a, a.loginScreen.Init()
}

// gotoWorkspaces applies the route guard before entering the default
// authenticated screen
func (a *App) gotoWorkspaces() (tea.Model, tea.Cmd) {
	switch session.Decide(a.store.Get()) {
	case session.Wait:
		a.screen = ScreenLoading
		return a, a.spin.Tick
	case session.RedirectLogin:
		return a.gotoLogin("", "")
	}
	a.workspacesScreen = workspaces.New()
	a.workspacesScreen.SetSize(a.width, a.contentHeight())
	a.jobsScreen = nil
	a.profileScreen = nil
	a.screen = ScreenWorkspaces
	return a, a.loadWorkspaces()
}

// pageError surfaces a load failure, or ends the session when the backend
// said the cookies are no longer valid
func (a *App) pageError(err error, show func(string)) (tea.Model, tea.Cmd) {
	if errors.Is(err, api.ErrUnauthorized) {
		return a, a.signOut()
	}
	show(err.Error())
	return a, nil
}

// signIn runs the full sign-in flow off the UI goroutine
func (a *App) signIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		author, err := session.SignIn(context.Background(), a.client, a.creds, a.store, email, password)
		return loginDoneMsg{author: author, err: err}
	}
}

// signUp creates an account; the user still logs in afterwards
func (a *App) signUp(nickname, email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.Register(context.Background(), api.RegisterInput{
			Nickname: nickname,
			Email:    email,
			Password: password,
		})
		return registerDoneMsg{email: email, err: err}
	}
}

// signOut ends the session remotely and locally, then tears the UI down
func (a *App) signOut() tea.Cmd {
	return func() tea.Msg {
		session.Logout(context.Background(), a.client, a.store)
		a.client.ClearSession()
		return sessionEndedMsg{}
	}
}

// loadWorkspaces fetches the signed-in author's workspaces
func (a *App) loadWorkspaces() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		author, err := a.client.Identity(ctx)
		if err != nil {
			return workspacesLoadedMsg{err: err}
		}
		items, err := a.client.WorkspacesByAuthor(ctx, author.ID)
		return workspacesLoadedMsg{items: items, err: err}
	}
}

// createWorkspace posts a new workspace
func (a *App) createWorkspace(name, description string) tea.Cmd {
	return func() tea.Msg {
		ws, err := a.client.CreateWorkspace(context.Background(), api.CreateWorkspaceInput{
			Name:        name,
			Description: description,
		})
		return workspaceCreatedMsg{ws: ws, err: err}
	}
}

// loadJobs fetches jobs for the active scope plus the workspace list for
// name resolution and the create form
func (a *App) loadJobs() tea.Cmd {
	var scope *api.Workspace
	if a.jobsScreen != nil {
		scope = a.jobsScreen.Scope()
	}
	return func() tea.Msg {
		ctx := context.Background()
		author, err := a.client.Identity(ctx)
		if err != nil {
			return jobsLoadedMsg{err: err}
		}

		var items []api.Job
		var wss []api.Workspace
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			if scope != nil {
				items, err = a.client.JobsByWorkspace(gctx, scope.ID)
			} else {
				items, err = a.client.JobsByAuthor(gctx, author.ID)
			}
			return err
		})
		g.Go(func() error {
			var err error
			wss, err = a.client.WorkspacesByAuthor(gctx, author.ID)
			return err
		})
		if err := g.Wait(); err != nil {
			return jobsLoadedMsg{err: err}
		}
		return jobsLoadedMsg{items: items, workspaces: wss}
	}
}

// createJob posts a new job
func (a *App) createJob(title, content string, workspaceID int64) tea.Cmd {
	return func() tea.Msg {
		job, err := a.client.CreateJob(context.Background(), api.CreateJobInput{
			Title:       title,
			Content:     content,
			WorkspaceID: workspaceID,
		})
		return jobCreatedMsg{job: job, err: err}
	}
}

// loadProfile fetches the identity, then its workspaces and jobs in parallel
func (a *App) loadProfile() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		author, err := a.client.Identity(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}

		var wss []api.Workspace
		var items []api.Job
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			wss, err = a.client.WorkspacesByAuthor(gctx, author.ID)
			return err
		})
		g.Go(func() error {
			var err error
			items, err = a.client.JobsByAuthor(gctx, author.ID)
			return err
		})
		if err := g.Wait(); err != nil {
			return profileLoadedMsg{err: err}
		}
		return profileLoadedMsg{author: author, workspaces: wss, jobs: items}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLoading:
		content = a.viewLoading()
	case ScreenLogin:
		content = a.viewChild(a.loginScreen != nil, func() string { return a.loginScreen.View() })
	case ScreenRegister:
		content = a.viewChild(a.registerScreen != nil, func() string { return a.registerScreen.View() })
	case ScreenWorkspaces:
		content = a.viewProtected(a.workspacesScreen != nil, func() string { return a.workspacesScreen.View() })
	case ScreenJobs:
		content = a.viewProtected(a.jobsScreen != nil, func() string { return a.jobsScreen.View() })
	case ScreenProfile:
		content = a.viewProtected(a.profileScreen != nil, func() string { return a.profileScreen.View() })
	default:
		content = a.viewLoading()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLoading() string {
	return a.spin.View() + " Checking session..."
}

func (a *App) viewChild(ready bool, render func() string) string {
	if !ready {
		return ""
	}
	return render()
}

// viewProtected re-checks the route guard on every render so a session that
// ended underneath the UI never paints protected content
func (a *App) viewProtected(ready bool, render func() string) string {
	switch session.Decide(a.store.Get()) {
	case session.Wait:
		return a.viewLoading()
	case session.RedirectLogin:
		return ""
	}
	return a.viewChild(ready, render)
}

// contentHeight calculates the height available below the header
func (a *App) contentHeight() int {
	return a.height - frameOverhead
}

// renderHeader creates the header bar with app branding and the session owner
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Task Manager"))

	rightText := ""
	if state := a.store.Get(); state.Authenticated && state.Username != "" {
		rightText = contextStyle.Render(icons.User.String()+" "+state.Username) + " "
	}

	leftRendered := lipgloss.NewStyle().Render(leftText)
	rightRendered := lipgloss.NewStyle().Align(lipgloss.Right).Render(rightText)

	fillWidth := width - 4 - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftRendered + strings.Repeat("─", fillWidth) + rightRendered + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts for the screen
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLoading:
		shortcuts = []string{"ctrl+c Quit"}
	case ScreenLogin:
		shortcuts = []string{"Enter Submit", "ctrl+s Sign up", "ctrl+c Quit"}
	case ScreenRegister:
		shortcuts = []string{"Enter Submit", "Esc Back", "ctrl+c Quit"}
	case ScreenWorkspaces:
		shortcuts = []string{"Enter Open", "n New", "r Refresh", "2 Jobs", "3 Profile", "ctrl+l Sign out", "q Quit"}
	case ScreenJobs:
		shortcuts = []string{"n New", "r Refresh", "b Back", "1 Workspaces", "3 Profile", "ctrl+l Sign out", "q Quit"}
	case ScreenProfile:
		shortcuts = []string{"r Refresh", "b Back", "1 Workspaces", "2 Jobs", "ctrl+l Sign out", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	fillWidth := width - 4 - lipgloss.Width(leftPlainText)
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(apiClient *api.Client, configDir string) error {
	app := New(apiClient, configDir)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
