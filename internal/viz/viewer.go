package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickMsg drives the viewer refresh.
type TickMsg time.Time

// DoneMsg tells the viewer that drawing has finished.
type DoneMsg struct{ Err error }

// RefreshMsg asks for an immediate repaint.
type RefreshMsg struct{}

const (
	doneBanner = ">> Done. Click mouse or press a key to end. <<"
	tickRate   = time.Second / 30
)

// Viewer displays a frame source while a drawing routine runs elsewhere.
type Viewer struct {
	title       string
	frame       func() string
	content     string
	frames      int
	done        bool
	err         error
	interrupted bool
	width       int
}

// NewViewer returns a viewer that repaints from frame.
func NewViewer(title string, frame func() string) Viewer {
	return Viewer{title: title, frame: frame}
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (v Viewer) Init() tea.Cmd {
	return tick()
}

// Update handles refresh ticks, completion and input.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		v.content = v.frame()
		v.frames++
		if v.done {
			return v, nil
		}
		return v, tick()
	case RefreshMsg:
		v.content = v.frame()
	case DoneMsg:
		v.done = true
		v.err = msg.Err
		v.content = v.frame()
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			v.interrupted = !v.done
			return v, tea.Quit
		case "t":
			NextTheme()
			return v, nil
		}
		if v.done {
			return v, tea.Quit
		}
	case tea.MouseMsg:
		if v.done && msg.Action == tea.MouseActionPress {
			return v, tea.Quit
		}
	}
	return v, nil
}

// View renders the frame inside a panel with a status line.
func (v Viewer) View() string {
	var s strings.Builder
	s.WriteString(Title.Render(v.title))
	s.WriteByte('\n')
	s.WriteString(Panel.Render(strings.TrimSuffix(v.content, "\n")))
	s.WriteByte('\n')
	switch {
	case v.err != nil:
		s.WriteString(StatusError.Render("error: " + v.err.Error()))
		s.WriteString("  " + KeyHint.Render("press a key to end"))
	case v.done:
		s.WriteString(StatusDone.Render(doneBanner))
	default:
		s.WriteString(StatusDraw.Render(AnimatedSpinner(v.frames) + " drawing"))
		s.WriteString("  " + KeyHint.Render("ctrl+c: abort  t: theme"))
	}
	return lipgloss.NewStyle().MaxWidth(max(v.width, 0)).Render(s.String())
}

// Done reports whether drawing completed.
func (v Viewer) Done() bool { return v.done }

// Interrupted reports whether the user aborted before drawing completed.
func (v Viewer) Interrupted() bool { return v.interrupted }

// Err is the error the drawing routine finished with.
func (v Viewer) Err() error { return v.err }
