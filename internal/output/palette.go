// Package output renders listings, applying the resolved theme.
package output

import (
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/service"
	"taskdeck/internal/theme"
)

// Palette is the set of styles a resolved theme selects. Exactly one
// palette is active at a time; Apply swaps it wholesale.
type Palette struct {
	Name string

	Title  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Err    lipgloss.Style

	Status   map[string]lipgloss.Style
	Priority map[string]lipgloss.Style
}

func lightPalette() Palette {
	return Palette{
		Name:   string(theme.Light),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
		Err:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Status: map[string]lipgloss.Style{
			service.StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			service.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
			service.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		},
		Priority: map[string]lipgloss.Style{
			service.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			service.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
			service.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
			service.PriorityUrgent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		},
	}
}

func darkPalette() Palette {
	return Palette{
		Name:   string(theme.Dark),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Err:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Status: map[string]lipgloss.Style{
			service.StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			service.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			service.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		},
		Priority: map[string]lipgloss.Style{
			service.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			service.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
			service.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			service.PriorityUrgent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		},
	}
}

var active = lightPalette()

// Apply swaps the active palette to the one for the resolved theme. This
// is the render-side effect the theme store drives; there is never a mixed
// state, the swap replaces every style at once.
func Apply(resolved theme.Choice) {
	if resolved == theme.Dark {
		active = darkPalette()
		return
	}
	active = lightPalette()
}

// Active returns the name of the palette currently applied.
func Active() string {
	return active.Name
}

func styleStatus(status string) lipgloss.Style {
	if st, ok := active.Status[status]; ok {
		return st
	}
	return active.Muted
}

func stylePriority(priority string) lipgloss.Style {
	if st, ok := active.Priority[priority]; ok {
		return st
	}
	return active.Muted
}
