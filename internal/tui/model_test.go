package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varsilias/openclaw-setup/internal/platform"
	"github.com/varsilias/openclaw-setup/internal/widget"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

type stubTransport struct {
	calls int
	reply string
	err   error
}

func (s *stubTransport) Send(_ context.Context, history []types.Message) (types.Message, error) {
	s.calls++
	if s.err != nil {
		return types.Message{}, s.err
	}
	return types.Message{Role: types.RoleModel, Content: s.reply}, nil
}

type harness struct {
	m       *Model
	tr      *stubTransport
	store   *platform.Memory
	copied  []string
	copyErr error
}

func newHarness(t *testing.T, signal string) *harness {
	t.Helper()
	h := &harness{tr: &stubTransport{reply: "Run the installer."}, store: platform.NewMemory("", false)}
	h.m = NewModel(Options{
		Transport: h.tr,
		Env:       platform.NewMemory(signal, false),
		Storage:   h.store,
		Copy: func(s string) error {
			if h.copyErr != nil {
				return h.copyErr
			}
			h.copied = append(h.copied, s)
			return nil
		},
	})
	h.m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestNewModel_ShowsGreetingAndOffer(t *testing.T) {
	h := newHarness(t, "MacIntel")

	require.Len(t, h.m.widget.Messages(), 1)
	assert.Equal(t, widget.Greeting, h.m.widget.Messages()[0].Content)
	assert.True(t, h.m.offer.Enabled)
	assert.Equal(t, "/scripts/mac_install.sh", h.m.offer.Href)
	assert.Contains(t, h.m.View(), "ClawBuddy")
}

func TestEnter_BlankInputSendsNothing(t *testing.T) {
	h := newHarness(t, "Win32")
	h.m.input.SetValue("   ")

	h.m.Update(key(tea.KeyEnter))

	assert.False(t, h.m.widget.Waiting())
	assert.Len(t, h.m.widget.Messages(), 1)
	assert.Equal(t, 0, h.tr.calls)
}

func TestEnter_RoundTrip(t *testing.T) {
	h := newHarness(t, "Win32")
	h.m.input.SetValue("How do I install?")

	_, cmd := h.m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, h.m.widget.Waiting())
	assert.Empty(t, h.m.input.Value())
	require.Len(t, h.m.widget.Messages(), 2)

	// a second enter while waiting is ignored
	h.m.input.SetValue("again")
	h.m.Update(key(tea.KeyEnter))
	assert.Len(t, h.m.widget.Messages(), 2)

	msg := h.m.send(h.m.widget.Messages())()
	h.m.Update(msg)

	assert.False(t, h.m.widget.Waiting())
	msgs := h.m.widget.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, types.Message{Role: types.RoleModel, Content: "Run the installer."}, msgs[2])
}

func TestReplyError_AppendsFallback(t *testing.T) {
	h := newHarness(t, "Linux x86_64")
	h.tr.err = errors.New("connection refused")
	h.m.input.SetValue("hello")
	h.m.Update(key(tea.KeyEnter))

	h.m.Update(h.m.send(h.m.widget.Messages())())

	msgs := h.m.widget.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, widget.LostTrain, msgs[2].Content)
}

func TestCtrlO_TogglesWidget(t *testing.T) {
	h := newHarness(t, "Win32")

	h.m.Update(key(tea.KeyCtrlO))
	assert.False(t, h.m.widget.IsOpen())
	assert.Contains(t, h.m.View(), "ctrl+o to open")

	// closed widget ignores submissions
	h.m.input.SetValue("hi")
	h.m.Update(key(tea.KeyEnter))
	assert.Len(t, h.m.widget.Messages(), 1)

	h.m.Update(key(tea.KeyCtrlO))
	assert.True(t, h.m.widget.IsOpen())
}

func TestCtrlT_FlipsAndPersistsTheme(t *testing.T) {
	h := newHarness(t, "Win32")
	assert.False(t, h.m.doc.HasFlag("dark"))

	h.m.Update(key(tea.KeyCtrlT))

	v, ok := h.store.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.True(t, h.m.doc.HasFlag("dark"))

	h.m.Update(key(tea.KeyCtrlT))
	v, _ = h.store.Get("theme")
	assert.Equal(t, "light", v)
	assert.False(t, h.m.doc.HasFlag("dark"))
}

func TestRenderer_ReusedUntilThemeOrWidthChanges(t *testing.T) {
	h := newHarness(t, "Win32")
	first := h.m.md
	require.NotNil(t, first)

	h.m.refresh()
	h.m.refresh()
	assert.Same(t, first, h.m.md)

	h.m.Update(key(tea.KeyCtrlT))
	assert.NotSame(t, first, h.m.md)
	assert.Equal(t, h.m.theme.Current(), h.m.mdTheme)

	themed := h.m.md
	h.m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.NotSame(t, themed, h.m.md)
}

func TestCopy(t *testing.T) {
	h := newHarness(t, "Win32")

	h.m.Update(key(tea.KeyCtrlY))
	h.m.Update(key(tea.KeyCtrlD))
	assert.Equal(t, []string{widget.Greeting, "/scripts/install_openclaw.bat"}, h.copied)
	assert.Equal(t, "download path copied", h.m.status)

	h.copyErr = errors.New("no xclip")
	h.m.Update(key(tea.KeyCtrlY))
	assert.Contains(t, h.m.status, "clipboard unavailable")
}

func TestCopyDownloadLink_UnknownPlatform(t *testing.T) {
	h := newHarness(t, "PlayStation")

	h.m.Update(key(tea.KeyCtrlD))

	assert.Empty(t, h.copied)
	assert.Equal(t, "no installer for this computer", h.m.status)
	assert.Contains(t, h.m.View(), "could not tell")
}
