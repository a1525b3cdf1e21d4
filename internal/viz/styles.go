package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles, rebuilt by SetTheme.
var (
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	KeyHint     lipgloss.Style
	ItemName    lipgloss.Style
	StatusDone  lipgloss.Style
	StatusDraw  lipgloss.Style
	StatusError lipgloss.Style
)

func init() { applyTheme(CurrentTheme) }

func applyTheme(t Theme) {
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)
	Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)
	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)
	ItemName = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)
	StatusDone = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)
	StatusDraw = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Warning)
	StatusError = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff4444"))
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// Item is one row of a name/description listing.
type Item struct {
	Name string
	Desc string
}

// Listing renders items as an aligned two-column list under a title.
func Listing(title string, items []Item) string {
	width := 0
	for _, it := range items {
		width = max(width, lipgloss.Width(it.Name))
	}

	var b strings.Builder
	b.WriteString(Title.Render(title))
	b.WriteByte('\n')
	for _, it := range items {
		name := ItemName.Render(fmt.Sprintf("%-*s", width, it.Name))
		fmt.Fprintf(&b, "  %s  %s\n", name, Subtle.Render(it.Desc))
	}
	return b.String()
}

// Separator is a muted rule of the given width.
func Separator(width int) string {
	if width < 7 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
