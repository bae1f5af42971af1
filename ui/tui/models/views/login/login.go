// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package login renders the sign-in form and feeds its events into a
// signin.Machine. The simulated request is scheduled with tea.Tick; a tick
// carrying a superseded ticket is dropped by the machine.
package login

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/signin/core/signin"
	"github.com/toeirei/signin/internal/i18n"
	"github.com/toeirei/signin/internal/logging"
	"github.com/toeirei/signin/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/signin/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/signin/ui/tui/models/helpers/title"
	"github.com/toeirei/signin/ui/tui/util"
)

const (
	minCardWidth = 30
	maxCardWidth = 64
)

type submitMsg struct{}

type completedMsg struct {
	ticket signin.Ticket
}

type ssoMsg struct{}

type Model struct {
	machine *signin.Machine

	form     form.Form[signin.FormState]
	email    *forminput.Text
	password *forminput.Text
	remember *forminput.Checkbox
	submit   *forminput.Button
	sso      *forminput.Button

	spinner spinner.Model
	keyMap  KeyMap
	size    util.Size
	notice  string
}

func New(opts signin.Options) *Model {
	m := &Model{
		machine:  signin.NewMachine(opts),
		email:    forminput.NewText(i18n.T("signin.label.email"), i18n.T("signin.placeholder.email")),
		password: forminput.NewPassword(i18n.T("signin.label.password"), i18n.T("signin.placeholder.password")),
		remember: forminput.NewCheckbox(i18n.T("signin.label.remember")),
		submit:   forminput.NewButton(i18n.T("signin.button.submit")),
		sso:      forminput.NewButton(i18n.T("signin.button.sso")),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		keyMap:   newKeyMap(opts.Variant == signin.VariantFull),
	}

	m.sso.OnPress = func() tea.Cmd {
		return func() tea.Msg { return ssoMsg{} }
	}

	m.form = form.New(
		form.WithInput[signin.FormState](string(signin.FieldEmail), m.email),
		form.WithInput[signin.FormState](string(signin.FieldPassword), m.password),
		form.WithInput[signin.FormState](string(signin.FieldRemember), m.remember),
		form.WithInput[signin.FormState]("submit", m.submit),
		form.WithText[signin.FormState](divider),
		form.WithInput[signin.FormState]("sso", m.sso),
		form.WithHelp[signin.FormState](&m.keyMap),
		form.WithOnSubmit(func(_ signin.FormState, err error) tea.Cmd {
			if err != nil {
				logging.Warnf("could not decode sign-in form: %v", err)
			}
			return func() tea.Msg { return submitMsg{} }
		}),
	)

	m.syncView()
	return m
}

// Machine exposes the state machine behind the view.
func (m *Model) Machine() *signin.Machine {
	return m.machine
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.form.Init(),
		windowtitle.Set(i18n.T("signin.title")),
	)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// nothing may touch the view after teardown
	if m.machine.Closed() {
		return nil
	}

	if m.size.Update(msg) {
		var cmd tea.Cmd
		inner := util.Size{Width: m.innerWidth(), Height: m.size.Height}
		m.form, cmd = m.form.Update(inner.ToMsg())
		return cmd
	}

	switch msg := msg.(type) {
	case submitMsg:
		return m.startSubmission()
	case completedMsg:
		if m.machine.Complete(msg.ticket) {
			m.syncView()
			return m.announce()
		}
		return nil
	case ssoMsg:
		m.notice = i18n.T("signin.sso_unavailable")
		return nil
	case spinner.TickMsg:
		// let the spinner stop once nothing is pending
		if !m.machine.Loading() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.TogglePassword) {
			if m.machine.TogglePasswordVisibility() {
				m.syncView()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.syncFromForm()
	return cmd
}

func (m *Model) startSubmission() tea.Cmd {
	m.notice = ""
	ticket, pending := m.machine.Submit()
	m.syncView()
	if !pending {
		return nil
	}
	return tea.Batch(m.spinner.Tick, completeAfter(ticket), m.announce())
}

// announce re-sends the key map so the footer picks up bindings that were
// switched on or off.
func (m *Model) announce() tea.Cmd {
	if !m.form.Focused() {
		return nil
	}
	return util.FocusCmd(&m.form)
}

func completeAfter(ticket signin.Ticket) tea.Cmd {
	return tea.Tick(ticket.Delay, func(time.Time) tea.Msg {
		return completedMsg{ticket: ticket}
	})
}

// syncFromForm forwards every field whose input value differs from the
// machine's form as a change event.
func (m *Model) syncFromForm() {
	values, err := m.form.Get()
	if err != nil {
		logging.Warnf("could not decode sign-in form: %v", err)
		return
	}

	current := m.machine.Form()
	changed := false
	for _, field := range signin.Fields {
		value := values.Value(field)
		if value == current.Value(field) {
			continue
		}
		if err := m.machine.Change(field, value); err != nil {
			logging.Errorf("sign-in field %s rejected: %v", field, err)
			continue
		}
		changed = true
	}

	if changed {
		m.notice = ""
		m.syncView()
	}
}

// syncView pushes the machine state into the inputs.
func (m *Model) syncView() {
	errs := m.machine.Errors()
	for _, field := range signin.Fields {
		m.form.SetError(string(field), errs.Get(field))
	}

	loading := m.machine.Loading()
	m.form.SetDisabled("submit", loading)
	m.form.SetDisabled("sso", loading)
	m.form.SetDisabled(string(signin.FieldRemember), loading)
	if loading {
		m.submit.Label = i18n.T("signin.button.submitting")
	} else {
		m.submit.Label = i18n.T("signin.button.submit")
	}

	m.password.SetMasked(!m.machine.PasswordVisible())
	m.password.Hint = ""
	if m.machine.Variant() == signin.VariantFull && !loading {
		hint := i18n.T("signin.password.show")
		if m.machine.PasswordVisible() {
			hint = i18n.T("signin.password.hide")
		}
		m.password.Hint = "[" + hint + "] ctrl+t"
	}
	m.keyMap.TogglePassword.SetEnabled(m.machine.Variant() == signin.VariantFull && !loading)
}

func (m *Model) innerWidth() int {
	w := m.cardWidth() - cardStyle.GetHorizontalFrameSize()
	return max(1, w)
}

func (m *Model) cardWidth() int {
	return m.size.Fit(minCardWidth, maxCardWidth)
}

func divider(width int) string {
	label := " " + i18n.T("signin.divider") + " "
	side := max(2, (width-lipgloss.Width(label))/2)
	line := strings.Repeat("─", side)
	return subtleStyle.Render(line + label + line)
}

func (m *Model) statusView(width int) string {
	var status string
	switch {
	case m.machine.Loading():
		status = m.spinner.View() + " " + i18n.T("signin.status.verifying")
	case m.machine.Message() != "":
		status = successStyle.Render(m.machine.Message())
	case m.notice != "":
		status = subtleStyle.Render(m.notice)
	default:
		return ""
	}
	return ansi.Wordwrap(status, width, " ")
}

func (m *Model) View() string {
	width := m.innerWidth()

	links := lipgloss.JoinHorizontal(lipgloss.Top,
		linkStyle.Render(i18n.T("signin.link.forgot")),
		subtleStyle.Render(" · "),
		linkStyle.Render(i18n.T("signin.link.create")),
	)

	card := cardStyle.Width(m.cardWidth() - cardStyle.GetHorizontalBorderSize()).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(i18n.T("signin.title")),
			subtleStyle.Render(i18n.T("signin.subtitle")),
			"",
			m.form.View(),
			"",
			links,
			"",
			m.statusView(width),
		),
	)

	if m.size.Width == 0 || m.size.Height == 0 {
		return card
	}
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center, card)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Close tears the view down. Pending completions are dropped.
func (m *Model) Close() {
	m.machine.Close()
}
