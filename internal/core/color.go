package core

// Color is the foreground color of a screen cell. The platform decides how
// each one is drawn.
type Color uint8

const (
	ColorDefault     Color = iota // Terminal default
	ColorRed                      // Boss, boss bullets, bomb pickups
	ColorGreen                    // Speed pickups
	ColorYellow                   // Drones, double-shot pickups, hit flash
	ColorMagenta                  // Spread bullets
	ColorCyan                     // Aimed bullets, triple-shot pickups
	ColorWhite                    // Text and player shots
	ColorGray                     // Background stars
	ColorBrightRed                // Game over banner
	ColorBrightWhite              // Titles and the player ship
)

var colorNames = [...]string{
	ColorDefault:     "default",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorMagenta:     "magenta",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
	ColorGray:        "gray",
	ColorBrightRed:   "bright-red",
	ColorBrightWhite: "bright-white",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
