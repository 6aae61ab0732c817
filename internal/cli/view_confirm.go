package cli

import (
	"github.com/alexanderramin/yeardots/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// confirmView wraps the live check-in confirmation as a View on the stack.
// On "Submit" it hands back done's command; on cancel it closes with nothing.
type confirmView struct {
	form *huh.Form
	ok   bool
	done func() tea.Cmd
}

func newConfirmView(address string, done func() tea.Cmd) *confirmView {
	v := &confirmView{done: done}
	v.form = confirmLiveForm(address, &v.ok)
	return v
}

func (v *confirmView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *confirmView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, v.close(nil)
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.ok && v.done != nil {
			next = v.done()
		}
		return v, v.close(next)
	case huh.StateAborted:
		return v, v.close(nil)
	}
	return v, cmd
}

func (v *confirmView) close(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return confirmCompleteMsg{next: next} }
}

func (v *confirmView) View() string {
	return "\n" + v.form.View() + "\n\n  " + formatter.Dim("Nothing is sent until the wallet signs.")
}

func (v *confirmView) ID() ViewID    { return ViewConfirm }
func (v *confirmView) Title() string { return "Confirm" }
func (v *confirmView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
