package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/azure-skies/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// Renderer converts screen buffers to styled strings, caching one lipgloss
// style per color pair.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

// ansi returns the lipgloss color for a palette index.
func ansi(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if k.fg != core.ColorDefault {
		st = st.Foreground(ansi(k.fg))
	}
	if k.bg != core.ColorDefault {
		st = st.Background(ansi(k.bg))
	}
	r.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != k.fg || cell.BG != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
