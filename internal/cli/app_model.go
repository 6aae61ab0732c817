package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/yeardots/internal/cli/formatter"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyQuit = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
	keyHelp = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more"))
	keyBack = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
)

// appModel is the root bubbletea Model for the TUI. It owns the view stack,
// the clock tick and the help bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	quitting  bool
}

func newAppModel(ctx context.Context, app *App) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	state := &SharedState{App: app, Ctx: ctx}
	state.Refresh()

	return appModel{
		state:     state,
		viewStack: []View{newDashboardView(state)},
		help:      help.New(),
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.state.App.tickInterval()), restoreCmd(m.state)}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, m.broadcast(msg)

	case tickMsg:
		m.state.Refresh()
		return m, tickCmd(m.state.App.tickInterval())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case confirmCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.next
	}

	// Wallet results and spinner ticks belong to the dashboard even while a
	// dialog sits on top of it.
	return m, m.broadcast(msg)
}

func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case key.Matches(msg, keyQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keyHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keyBack) && len(m.viewStack) > 1:
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if v := m.activeView(); v != nil {
		body = v.View()
	}
	// Pad the body so the status bar sits on the last lines and the
	// alt-screen renderer leaves no stale lines.
	if m.state.Height > 0 {
		if lines := strings.Count(body, "\n") + 1; lines < m.state.ContentHeight() {
			body += strings.Repeat("\n", m.state.ContentHeight()-lines)
		}
	}

	return strings.Join([]string{m.renderHeader(), body, m.renderStatusBar()}, "\n")
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("yeardots")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	live := m.state.App.CheckIn != nil && m.state.App.CheckIn.Mode() == domain.RewardLive
	title += "  " + formatter.ModeBadge(live)

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + m.help.View(m.helpKeys())
}

// helpKeys adapts the active view's bindings to help.KeyMap.
type helpKeys struct {
	view   []key.Binding
	global []key.Binding
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, k.view...), keyHelp, keyQuit)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.view, k.global}
}

func (m *appModel) helpKeys() helpKeys {
	k := helpKeys{global: []key.Binding{keyQuit, keyHelp}}
	if v := m.activeView(); v != nil {
		k.view = v.ShortHelp()
	}
	if len(m.viewStack) > 1 {
		k.global = append(k.global, keyBack)
	}
	return k
}
