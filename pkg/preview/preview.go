// Package preview is an interactive terminal view of a flow layout. The
// layout reruns whenever the terminal is resized, so the container width
// always tracks the window.
package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/go-drift/flowlayout/pkg/render"
	"github.com/go-drift/flowlayout/pkg/stats"
)

// DefaultWidth is the container width used before the first window size
// message arrives.
const DefaultWidth = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ReplaceMsg swaps in a new set of boxes and configuration, as sent after the
// scene file changes on disk.
type ReplaceMsg struct {
	Boxes  []*flow.Box
	Config flow.Config
}

// ReloadErrorMsg reports a scene that failed to reload. The previous layout
// stays on screen until the next successful ReplaceMsg.
type ReloadErrorMsg struct {
	Err error
}

// Model is a bubbletea model that lays out boxes measured in terminal cells.
type Model struct {
	title string
	boxes []*flow.Box
	cfg   flow.Config

	width  int
	height int

	frame     *render.Frame
	summary   stats.Summary
	reloadErr error
}

// New returns a preview of boxes laid out with cfg.
func New(title string, boxes []*flow.Box, cfg flow.Config) *Model {
	m := &Model{
		title: title,
		boxes: boxes,
		cfg:   cfg.Sanitize(),
		width: DefaultWidth,
	}
	m.relayout()
	return m
}

// Config returns the layout configuration currently in effect.
func (m *Model) Config() flow.Config {
	return m.cfg
}

// Frame returns the most recent layout.
func (m *Model) Frame() *render.Frame {
	return m.frame
}

// ReloadErr returns the last reload failure, or nil once a reload succeeds.
func (m *Model) ReloadErr() error {
	return m.reloadErr
}

// Width returns the terminal width the layout was run against.
func (m *Model) Width() int {
	return m.width
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	case ReplaceMsg:
		m.boxes = msg.Boxes
		m.cfg = msg.Config.Sanitize()
		m.reloadErr = nil
		m.relayout()
	case ReloadErrorMsg:
		m.reloadErr = msg.Err
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "e":
			m.cfg.EqualSizing = !m.cfg.EqualSizing
			m.relayout()
		case "+", "=":
			m.cfg.HorizontalSpacing++
			m.cfg.VerticalSpacing++
			m.relayout()
		case "-", "_":
			m.cfg.HorizontalSpacing = max(m.cfg.HorizontalSpacing-1, 0)
			m.cfg.VerticalSpacing = max(m.cfg.VerticalSpacing-1, 0)
			m.relayout()
		}
	}
	return m, nil
}

// relayout runs a fresh measurement and placement pass at the current
// terminal width.
func (m *Model) relayout() {
	for _, b := range m.boxes {
		b.ResetMeasurement()
	}
	m.frame = render.NewFrame(m.boxes, flow.AtMost(m.width), flow.Unbounded(), m.cfg)
	m.summary = stats.Summarize(m.frame.Placements, m.frame.ContentRect().Width)
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	body := render.ASCII(m.frame)
	if body == "" {
		body = "(nothing to lay out)"
	}
	b.WriteString(frameStyle.Render(body))
	b.WriteString("\n")

	size := m.frame.Size()
	status := fmt.Sprintf("%dx%d  equal=%t  spacing=%d/%d  %s",
		size.Width, size.Height, m.cfg.EqualSizing,
		m.cfg.HorizontalSpacing, m.cfg.VerticalSpacing, m.summary)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	if m.reloadErr != nil {
		b.WriteString(errorStyle.Render("reload failed: " + m.reloadErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(keybinds())
	return b.String()
}

func keybinds() string {
	kv := func(key, desc string) string {
		return keyStyle.Render(key) + " " + statusStyle.Render(desc)
	}
	return strings.Join([]string{
		kv("e", "equal"),
		kv("+/-", "spacing"),
		kv("q", "quit"),
	}, "  ")
}
