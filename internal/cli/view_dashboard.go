package cli

import (
	"strings"

	"github.com/alexanderramin/yeardots/internal/cli/formatter"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	keyConnect = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect"))
	keyCheckIn = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "check in"))
	keyDismiss = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss"))
)

// dashboardView is the home screen: date header, wallet badge, month strip,
// check-in pill, dot grid and progress.
type dashboardView struct {
	state   *SharedState
	spinner spinner.Model

	// busy is set when this view fired a wallet call and cleared when its
	// result arrives. The controller's Pending flag is authoritative.
	busy bool
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state: state,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(formatter.StyleYellow),
		),
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "" }

func (v *dashboardView) ShortHelp() []key.Binding {
	if v.state.App.CheckIn == nil {
		return nil
	}
	st := v.state.App.CheckIn.State()
	var keys []key.Binding
	if !st.Connected() && !st.Pending {
		keys = append(keys, keyConnect)
	}
	if !st.CheckedInToday && !st.Pending {
		keys = append(keys, keyCheckIn)
	}
	if st.Notice != "" {
		keys = append(keys, keyDismiss)
	}
	return keys
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.state.App.CheckIn == nil {
			return v, nil
		}
		switch {
		case key.Matches(msg, keyConnect):
			return v, v.connect()
		case key.Matches(msg, keyCheckIn):
			return v, v.checkIn()
		case key.Matches(msg, keyDismiss):
			v.state.App.CheckIn.DismissNotice()
		}
		return v, nil

	case walletResultMsg:
		if msg.op != opRestore {
			v.busy = false
		}
		return v, nil

	case spinner.TickMsg:
		if !v.pending() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *dashboardView) pending() bool {
	return v.busy || (v.state.App.CheckIn != nil && v.state.App.CheckIn.State().Pending)
}

func (v *dashboardView) connect() tea.Cmd {
	st := v.state.App.CheckIn.State()
	if v.pending() || st.Connected() {
		return nil
	}
	v.busy = true
	return tea.Batch(connectCmd(v.state), v.spinner.Tick)
}

// checkIn starts a claim, routing live claims through a confirmation first
// when configured.
func (v *dashboardView) checkIn() tea.Cmd {
	ctrl := v.state.App.CheckIn
	st := ctrl.State()
	if v.pending() || st.CheckedInToday {
		return nil
	}
	if ctrl.Mode() == domain.RewardLive && v.state.App.ConfirmLive {
		return pushView(newConfirmView(st.Address, v.submit))
	}
	return v.submit()
}

func (v *dashboardView) submit() tea.Cmd {
	v.busy = true
	return tea.Batch(checkInCmd(v.state), v.spinner.Tick)
}

func (v *dashboardView) View() string {
	s := v.state.Snapshot
	locale := v.state.App.Locale
	width := v.state.Width
	cols := formatter.GridColumns(width)

	var st domain.CheckInState
	if v.state.App.CheckIn != nil {
		st = v.state.App.CheckIn.State()
	}
	if v.busy {
		st.Pending = true
	}

	left := formatter.FormatDateLine(s, locale) + "\n" + formatter.FormatDayCounter(s)
	right := formatter.WalletBadge(st) + "\n" + formatter.CheckInPill(st, v.spinner.View())
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-4, 4)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)

	var b strings.Builder
	b.WriteString("\n" + indent(top) + "\n\n")
	b.WriteString(indent(formatter.RenderMonthStrip(s.Months(), locale)) + "\n\n")
	b.WriteString(indent(formatter.RenderDotGrid(s.Cells(), cols)) + "\n\n")
	b.WriteString(indent(formatter.RenderProgress(s.ProgressPercentage(), max(cols*2-10, 10))) + "\n")
	b.WriteString(indent(formatter.Center(formatter.FormatStats(s), formatter.GridWidth(cols))) + "\n")
	if line := formatter.TxLine(st); line != "" {
		b.WriteString(indent(line) + "\n")
	}
	if n := formatter.Notice(st.Notice); n != "" {
		b.WriteString("\n" + indent(n) + "\n")
	}
	return b.String()
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
