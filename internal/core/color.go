package core

// Color is an ANSI 256-color palette index for a screen cell.
// ColorDefault leaves the terminal's own color in place.
type Color uint8

// Predefined colors for HUD text.
const (
	ColorDefault Color = 0
	ColorRed     Color = 9
	ColorWhite   Color = 15
)

// RGB maps a 24-bit color onto the 6x6x6 color cube of the 256-color palette.
// The result is never ColorDefault.
func RGB(r, g, b uint8) Color {
	return Color(16 + 36*cubeLevel(r) + 6*cubeLevel(g) + cubeLevel(b))
}

// cubeLevel maps a channel value to the nearest of the cube's six levels
// (0, 95, 135, 175, 215, 255).
func cubeLevel(v uint8) uint8 {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v-35)/40
}
