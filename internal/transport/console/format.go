package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"famtree/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (h *Handler) title(s string) string {
	if h.plain {
		return s
	}
	return titleStyle.Render(s)
}

func (h *Handler) errText(s string) string {
	if h.plain {
		return s
	}
	return errorStyle.Render(s)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func renderPeople(ps []*domain.Person) string {
	if len(ps) == 0 {
		return MsgNone
	}
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name())
	}
	return strings.Join(names, ", ")
}
