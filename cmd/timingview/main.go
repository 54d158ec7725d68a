// Command timingview is a read-only bubbletea scrubber over a timing
// fixture: a scroll position steps through elapsed seconds, and the
// fixture file is watched for writes so edits show up live, the way
// playlist-sorter's view mode watches a playlist file.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	timing "github.com/mvassen/timingcore"
	"github.com/mvassen/timingcore/internal/fixture"
)

const scrubStep = 0.25 // seconds per Up/Down press

func main() {
	log.SetFlags(0)
	log.SetPrefix("timingview: ")

	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatal("Usage: timingview <fixture.toml>")
	}
	path := flag.Arg(0)

	td, err := fixture.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal(err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		log.Fatal(err)
	}

	m := model{path: path, td: td, watcher: watcher, lastReload: time.Now()}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		watcher.Close()
		log.Fatal(err)
	}
	watcher.Close()
}

type keyMap struct {
	Up, Down, Reload, Quit key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scrub back")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scrub forward")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	flagStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("15")).
		Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type fileChangeMsg struct{}
type reloadCompleteMsg struct {
	td  *timing.TimingData
	err error
}

func waitForFileChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					time.Sleep(100 * time.Millisecond)
					return fileChangeMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func reloadFixture(path string) tea.Cmd {
	return func() tea.Msg {
		td, err := fixture.Load(path)
		return reloadCompleteMsg{td: td, err: err}
	}
}

type model struct {
	path       string
	td         *timing.TimingData
	watcher    *fsnotify.Watcher
	seconds    float64
	lastReload time.Time
	errMsg     string
	width      int
	height     int
	viewport   viewport.Model
	ready      bool
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForFileChange(m.watcher), tea.EnterAltScreen)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight, footerHeight := 2, 2
		h := msg.Height - headerHeight - footerHeight
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.viewport.SetContent(m.renderBody())
		return m, nil

	case fileChangeMsg:
		return m, tea.Batch(reloadFixture(m.path), waitForFileChange(m.watcher))

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("reload failed: %v", msg.err)
		} else {
			m.td = msg.td
			m.lastReload = time.Now()
			m.errMsg = ""
		}
		m.viewport.SetContent(m.renderBody())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.seconds -= scrubStep
			if m.seconds < 0 {
				m.seconds = 0
			}
			m.viewport.SetContent(m.renderBody())
		case key.Matches(msg, keys.Down):
			m.seconds += scrubStep
			m.viewport.SetContent(m.renderBody())
		case key.Matches(msg, keys.Reload):
			return m, reloadFixture(m.path)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	title := titleStyle.Render(fmt.Sprintf("Timing Viewer: %s", m.path))
	return fmt.Sprintf("%s\n%s\n%s\n%s", title, m.viewport.View(), m.renderStatus(), m.renderHelp())
}

func (m model) renderBody() string {
	res := m.td.BeatAndBpsFromElapsedTime(m.seconds)
	lines := []string{
		fmt.Sprintf("seconds   %.3f", m.seconds),
		fmt.Sprintf("beat      %.3f", res.Beat),
		fmt.Sprintf("bps       %.2f", res.BPS),
		fmt.Sprintf("flags     %s", m.flagLine(res)),
	}
	if m.td.HasWarps() {
		lines = append(lines, fmt.Sprintf("warp?     %v", m.td.IsWarpAtBeat(res.Beat)))
	}
	if m.td.HasFakes() {
		lines = append(lines, fmt.Sprintf("fake?     %v", m.td.IsFakeAtBeat(res.Beat)))
	}
	if m.td.HasSpeedChanges() {
		pct := m.td.GetDisplayedSpeedPercent(res.Beat, m.seconds-m.td.OffsetSeconds())
		lines = append(lines, fmt.Sprintf("speed     %.0f%%", pct*100))
	}
	if m.td.HasScrollChanges() {
		lines = append(lines, fmt.Sprintf("scroll    %.3f", m.td.GetDisplayedBeat(res.Beat)))
	}
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}

func (m model) flagLine(res timing.BeatQueryResult) string {
	s := ""
	if res.InDelay {
		s += flagStyle.Render("DELAY") + " "
	}
	if res.InFreeze {
		s += flagStyle.Render("STOP") + " "
	}
	if res.WarpLengthBeats > 0 {
		s += flagStyle.Render("WARP") + " "
	}
	if s == "" {
		return "-"
	}
	return s
}

func (m model) renderStatus() string {
	reloadTime := m.lastReload.Format("15:04:05")
	text := fmt.Sprintf("Last reload: %s", reloadTime)
	if m.errMsg != "" {
		text = errorStyle.Render(m.errMsg)
	}
	return statusStyle.Width(m.width).Render(text)
}

func (m model) renderHelp() string {
	return helpStyle.Render("↑/↓: scrub | r: reload | q: quit")
}
