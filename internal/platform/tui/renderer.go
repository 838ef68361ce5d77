package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tuxascii/internal/core"
	"github.com/vovakirdan/tuxascii/internal/games/tuxascii"
)

// hudRows is the number of screen rows above the arena during gameplay.
const hudRows = 1

// fullSpriteRows is the arena height in rows from which the three-line
// sprites fit their 30-unit hitboxes.
const fullSpriteRows = 60

var (
	playerSprite      = []string{" /\\ ", "/><\\", "\\__/"}
	enemySprite       = []string{"/\\_/\\", " o o ", " >-< "}
	bossSprite        = []string{" /^\\/^\\ ", "<|00  |>", " \\VV__/ "}
	playerSpriteSmall = []string{"/A\\"}
	enemySpriteSmall  = []string{">v<"}
	bossSpriteSmall   = []string{"<|00|>"}
)

var loreText = []string{
	"In the year 2099, the cosmic emperor Propriebus has",
	"declared war on all open-source lifeforms. His armies",
	"of locked-down drones sweep through the galaxy,",
	"assimilating all in their path.",
	"",
	"Only one hero remains to defend the freedom of code:",
	"Tux, the last penguin warrior, armed with the power",
	"of ASCII and an unbreakable spirit of openness.",
	"",
	"Pilot Tux through waves of enemies and reclaim the",
	"digital universe one character at a time!",
}

// Renderer draws a session's render state into a screen buffer.
type Renderer struct {
	screen *core.Screen
	keys   KeyMap
}

// NewRenderer creates a renderer for a width x height cell surface.
func NewRenderer(width, height int, keys KeyMap) *Renderer {
	return &Renderer{
		screen: core.NewScreen(width, height),
		keys:   keys,
	}
}

// Resize changes the drawing surface size.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(max(width, 1), max(height, 1))
}

// Screen returns the buffer of the last Draw.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Draw renders one frame.
func (r *Renderer) Draw(rs tuxascii.RenderState) {
	s := r.screen
	s.Clear()

	top := 0
	if rs.Screen == tuxascii.ScreenGameplay {
		top = hudRows
	}
	v := viewport{top: top, cols: s.Width(), rows: s.Height() - top}

	for _, st := range rs.Stars {
		v.put(s, v.col(st.X), v.row(st.Y), st.Glyph, core.ColorGray)
	}

	switch rs.Screen {
	case tuxascii.ScreenTitle:
		r.drawTitle()
	case tuxascii.ScreenLore:
		r.drawLore()
	case tuxascii.ScreenControls:
		r.drawControls()
	case tuxascii.ScreenGameplay:
		r.drawArena(v, rs)
		r.drawHUD(rs.HUD)
	case tuxascii.ScreenGameOver:
		r.drawGameOver(rs.HUD.Score)
	}
}

func (r *Renderer) drawArena(v viewport, rs tuxascii.RenderState) {
	s := r.screen
	full := v.rows >= fullSpriteRows

	for _, pu := range rs.PowerUps {
		cx, cy := pu.Bounds.Center()
		v.put(s, v.col(cx), v.row(cy), pu.Kind.Glyph(), pu.Kind.Color())
	}

	for _, e := range rs.Enemies {
		sprite, color := enemySpriteSmall, core.ColorYellow
		if e.Kind == tuxascii.EnemyBoss {
			sprite, color = bossSpriteSmall, core.ColorRed
			if full {
				sprite = bossSprite
			}
		} else if full {
			sprite = enemySprite
		}
		v.sprite(s, e.Bounds, sprite, color)
	}

	for _, p := range rs.EnemyProjectiles {
		v.put(s, v.col(p.Bounds.X), v.row(p.Bounds.Y), p.Glyph, p.Color)
	}
	for _, p := range rs.PlayerProjectiles {
		v.put(s, v.col(p.Bounds.X), v.row(p.Bounds.Y), p.Glyph, p.Color)
	}

	sprite := playerSpriteSmall
	if full {
		sprite = playerSprite
	}
	color := core.ColorBrightWhite
	if rs.Player.Flash {
		color = core.ColorYellow
	}
	v.sprite(s, rs.Player.Bounds, sprite, color)
}

func (r *Renderer) drawHUD(hud tuxascii.HUD) {
	s := r.screen
	text := fmt.Sprintf(" Score: %d  Lives: %d  Bombs: %d  Power: ", hud.Score, hud.Lives, hud.Bombs)
	s.DrawTextColored(0, 0, text, core.ColorWhite)
	s.DrawTextColored(utf8.RuneCountInString(text), 0, hud.Power.String(), hud.Power.Color())
}

func (r *Renderer) drawTitle() {
	s := r.screen
	h := s.Height()

	s.DrawTextCenteredColored(h/4, "T U X A S C I I", core.ColorBrightWhite)
	s.DrawTextCenteredColored(h/4+2, "By ElysiumSoft 2025", core.ColorWhite)

	options := []struct {
		b     key.Binding
		label string
	}{
		{r.keys.Start, "Start Game"},
		{r.keys.Lore, "Lore"},
		{r.keys.Controls, "Controls"},
	}
	for i, o := range options {
		s.DrawTextCenteredColored(h/2+i*2, fmt.Sprintf("%s [%s]", pressLabel(o.b), o.label), core.ColorWhite)
	}
}

func (r *Renderer) drawLore() {
	r.drawTextScene("Lore", loreText)
}

func (r *Renderer) drawControls() {
	k := r.keys
	move := strings.Join([]string{
		k.Left.Help().Key, k.Right.Help().Key, k.Up.Help().Key, k.Down.Help().Key,
	}, ", ")

	lines := []string{
		move + " - Move Tux",
		k.Fire.Help().Key + " - Shoot",
		k.Bomb.Help().Key + " - Use Bomb (clears all enemies)",
		k.Back.Help().Key + " - Quit to title screen",
		"",
		"Power-ups:",
	}
	r.drawTextScene("Controls", lines)

	s := r.screen
	row := 3 + len(lines)
	for _, kind := range []tuxascii.PowerKind{tuxascii.PowerDouble, tuxascii.PowerTriple, tuxascii.PowerSpeed, tuxascii.PowerBomb} {
		text := fmt.Sprintf("%c - %s", kind.Glyph(), powerDescription(kind))
		s.DrawTextCenteredColored(row, text, kind.Color())
		row++
	}
}

func powerDescription(kind tuxascii.PowerKind) string {
	switch kind {
	case tuxascii.PowerDouble:
		return "Double shot"
	case tuxascii.PowerTriple:
		return "Triple shot"
	case tuxascii.PowerSpeed:
		return "Speed boost"
	case tuxascii.PowerBomb:
		return "Extra bomb"
	default:
		return ""
	}
}

// drawTextScene draws a titled block of centered lines with the
// return-to-title hint at the bottom.
func (r *Renderer) drawTextScene(title string, lines []string) {
	s := r.screen

	s.DrawTextCenteredColored(1, title, core.ColorBrightWhite)
	for i, line := range lines {
		s.DrawTextCenteredColored(3+i, line, core.ColorWhite)
	}
	s.DrawTextCenteredColored(s.Height()-1, r.backHint(), core.ColorWhite)
}

func (r *Renderer) drawGameOver(score int) {
	s := r.screen
	h := s.Height()

	s.DrawTextCenteredColored(h/3, "GAME OVER", core.ColorBrightRed)
	s.DrawTextCenteredColored(h/2, fmt.Sprintf("Final Score: %d", score), core.ColorWhite)
	s.DrawTextCenteredColored(h/2+2, fmt.Sprintf("Press %s to restart", pressLabel(r.keys.Restart)), core.ColorWhite)
	s.DrawTextCenteredColored(h/2+4, r.backHint(), core.ColorWhite)
}

func (r *Renderer) backHint() string {
	return fmt.Sprintf("Press %s to return to title screen", pressLabel(r.keys.Back))
}

// pressLabel returns the first key of a binding the way the screens print it.
func pressLabel(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return "?"
	}
	return strings.ToUpper(keyLabel(keys[:1]))
}

// viewport maps arena coordinates to screen cells.
type viewport struct {
	top  int // First screen row of the arena
	cols int
	rows int
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / tuxascii.ArenaWidth))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*float64(v.rows)/tuxascii.ArenaHeight))
}

// put draws a rune if the cell lies inside the arena.
func (v viewport) put(s *core.Screen, col, row int, r rune, c core.Color) {
	if row < v.top || row >= v.top+v.rows || col < 0 || col >= v.cols {
		return
	}
	s.SetColored(col, row, r, c)
}

// sprite draws a multi-line sprite centered on a hitbox. Spaces are
// transparent.
func (v viewport) sprite(s *core.Screen, b core.RectF, lines []string, c core.Color) {
	cx, _ := b.Center()
	row := v.row(b.Y)
	for i, line := range lines {
		col := v.col(cx) - utf8.RuneCountInString(line)/2
		for _, ch := range line {
			if ch != ' ' {
				v.put(s, col, row+i, ch, c)
			}
			col++
		}
	}
}
