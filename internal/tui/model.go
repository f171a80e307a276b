// Package tui is a terminal rendition of the ClawBuddy chat widget.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/varsilias/openclaw-setup/internal/osdetect"
	"github.com/varsilias/openclaw-setup/internal/platform"
	"github.com/varsilias/openclaw-setup/internal/theme"
	"github.com/varsilias/openclaw-setup/internal/widget"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

type replyMsg struct {
	reply types.Message
	err   error
}

// Options wires the model to its surroundings.
type Options struct {
	Transport widget.Transport
	Env       platform.Environment
	Storage   platform.Storage
	// Copy writes to the system clipboard; defaults to atotto/clipboard.
	Copy func(string) error
}

type Model struct {
	widget    *widget.Widget
	transport widget.Transport
	theme     *theme.Toggle
	doc       *platform.Memory
	offer     osdetect.Offer
	copy      func(string) error

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	styles   styles

	// glamour renderer for the current theme and wrap width
	md      *glamour.TermRenderer
	mdTheme theme.Theme
	mdWidth int

	// bumped by the widget on every log mutation or visibility change
	changes atomic.Int64
	seen    int64

	status string
	ready  bool
	width  int
	height int
}

func NewModel(opts Options) *Model {
	m := &Model{transport: opts.Transport, copy: opts.Copy}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	m.widget = widget.New(opts.Transport, widget.WithScroller(func() { m.changes.Add(1) }))
	m.doc = platform.NewMemory(opts.Env.PlatformSignal(), opts.Env.PrefersDarkScheme())
	m.theme = theme.Load(opts.Env, opts.Storage, m.doc)
	m.offer = osdetect.NewDetector(opts.Env).Offer()
	m.styles = newStyles(m.theme.Current())

	ti := textinput.New()
	ti.Placeholder = "Type a question..."
	ti.CharLimit = 2000
	ti.Focus()
	m.input = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spinner = sp

	m.viewport = viewport.New(80, 20)
	return m
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-5, 3)
		m.input.Width = max(msg.Width-4, 10)
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+o":
			m.widget.Toggle()
		case "ctrl+t":
			if _, err := m.theme.Flip(); err != nil {
				m.status = "could not save theme: " + err.Error()
			}
			m.styles = newStyles(m.theme.Current())
			m.refresh()
		case "ctrl+y":
			m.copyLastReply()
		case "ctrl+d":
			m.copyDownloadLink()
		case "enter":
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		default:
			if !m.widget.Waiting() && m.widget.IsOpen() {
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case replyMsg:
		m.widget.Complete(msg.reply, msg.err)
		m.input.Focus()

	case spinner.TickMsg:
		if m.widget.Waiting() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			m.refresh()
		}

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if n := m.changes.Load(); n != m.seen {
		m.seen = n
		m.refresh()
	}
	return m, tea.Batch(cmds...)
}

// submit starts a round trip; blank input or a pending request does nothing.
func (m *Model) submit() tea.Cmd {
	if !m.widget.IsOpen() {
		return nil
	}
	history, ok := m.widget.Begin(m.input.Value())
	if !ok {
		return nil
	}
	m.input.Reset()
	m.input.Blur()
	return tea.Batch(m.spinner.Tick, m.send(history))
}

func (m *Model) send(history []types.Message) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.transport.Send(context.Background(), history)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *Model) copyLastReply() {
	msgs := m.widget.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == types.RoleModel {
			m.setCopyStatus(msgs[i].Content, "reply copied")
			return
		}
	}
}

func (m *Model) copyDownloadLink() {
	if !m.offer.Enabled {
		m.status = "no installer for this computer"
		return
	}
	m.setCopyStatus(m.offer.Href, "download path copied")
}

func (m *Model) setCopyStatus(text, ok string) {
	if err := m.copy(text); err != nil {
		m.status = "clipboard unavailable: " + err.Error()
		return
	}
	m.status = ok
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m *Model) renderLog() string {
	width := max(m.viewport.Width-4, 20)
	var b strings.Builder
	for _, msg := range m.widget.Messages() {
		if msg.Role == types.RoleUser {
			b.WriteString(lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, m.styles.user.Render(msg.Content)))
		} else {
			b.WriteString(m.styles.model.Render(m.markdown(msg.Content, width)))
		}
		b.WriteString("\n")
	}
	if m.widget.Waiting() {
		b.WriteString(m.styles.thinking.Render(m.spinner.View() + " Thinking..."))
	}
	return b.String()
}

func (m *Model) renderer(width int) (*glamour.TermRenderer, error) {
	current := m.theme.Current()
	if m.md != nil && m.mdTheme == current && m.mdWidth == width {
		return m.md, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(current)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.md, m.mdTheme, m.mdWidth = r, current, width
	return r, nil
}

func (m *Model) markdown(src string, width int) string {
	r, err := m.renderer(width)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimSpace(out)
}

func (m *Model) View() string {
	header := m.styles.header.Render("🦞 ClawBuddy · Your Setup Assistant")
	offer := m.styles.offer.Render(offerLine(m.offer))
	help := m.styles.help.Render("enter send · ctrl+o hide/show · ctrl+t theme · ctrl+y copy reply · ctrl+d copy link · esc quit")

	if !m.widget.IsOpen() {
		return lipgloss.JoinVertical(lipgloss.Left, header, offer, "", m.styles.help.Render("🦞 Help: press ctrl+o to open the assistant"))
	}
	if !m.ready {
		return "loading..."
	}

	parts := []string{header, offer, m.viewport.View(), m.input.View(), help}
	if m.status != "" {
		parts = append(parts, m.styles.status.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func offerLine(o osdetect.Offer) string {
	if !o.Enabled {
		return "We could not tell which computer you are using."
	}
	return fmt.Sprintf("%s We detected you are on %s · %s: %s", o.Icon, o.OS, o.Label, o.Href)
}

// Run starts the full-screen client.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}
