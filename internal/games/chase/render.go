package chase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

// Visual characters for rendering
const (
	GroundChar = '═'
	HatChar    = '▲'
	BodyChar   = '█'
	LegLeft    = '╱'
	LegRight   = '╲'
	RollChar   = '@'
	DiveChar   = '▼'
	HurtChar   = '▓'
	GhostChar  = '▒'
	VineChar   = '║'
	VineTip    = '▼'
	BatChar    = 'ʌ'
	BatFlap    = 'v'
	StumpChar  = '▓'
	CrawlChar  = '≈'
	HoleChar   = '░'
	DustChar   = '·'
	SparkChar  = '*'
)

var burstFrames = []rune{'✶', '✷', '✸', '✹', '·'}

var spriteColors = map[SpriteID]core.Color{
	SpriteRunnerSit:  core.ColorMagenta,
	SpriteRunnerRun:  core.ColorMagenta,
	SpriteRunnerJump: core.ColorMagenta,
	SpriteRunnerFall: core.ColorMagenta,
	SpriteRunnerRoll: core.ColorMagenta,
	SpriteRunnerDive: core.ColorMagenta,
	SpriteRunnerHit:  core.ColorBrightRed,
	SpriteGhost:      core.ColorBrightWhite,
	SpriteVine:       core.ColorGreen,
	SpriteBat:        core.ColorBlue,
	SpriteStump:      core.ColorBrown,
	SpriteCrawler:    core.ColorRed,
	SpriteHole:       core.ColorGray,
	SpriteDust:       core.ColorGray,
	SpriteSpark:      core.ColorYellow,
	SpriteBurst:      core.ColorBrightYellow,
}

// ScreenSurface projects canvas pixels onto the cells of a core.Screen.
type ScreenSurface struct {
	dst    *core.Screen
	top    int // First screen row of the playfield
	sx, sy float64
}

// NewScreenSurface maps a canvasW x canvasH canvas onto dst below row top.
func NewScreenSurface(dst *core.Screen, canvasW, canvasH float64, top int) *ScreenSurface {
	rows := dst.Height() - top
	if rows < 1 {
		rows = 1
	}
	return &ScreenSurface{
		dst: dst,
		top: top,
		sx:  float64(dst.Width()) / canvasW,
		sy:  float64(rows) / canvasH,
	}
}

// Cells returns the screen cells covered by a canvas box, at least one cell.
func (s *ScreenSurface) Cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * s.sx))
	x1 := int(math.Ceil(r.Right() * s.sx))
	y0 := int(math.Floor(r.Y * s.sy))
	y1 := int(math.Ceil(r.Bottom() * s.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+s.top, x1-x0, y1-y0)
}

// Row returns the screen row of a canvas y-coordinate.
func (s *ScreenSurface) Row(y float64) int {
	return int(math.Floor(y*s.sy)) + s.top
}

// Draw paints one drawable.
func (s *ScreenSurface) Draw(d Drawable) {
	cells := s.Cells(d.Rect)
	color := spriteColors[d.Sprite]
	if d.Tint {
		color = core.ColorOrange
	}
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			ch := glyph(d, x-cells.X, y-cells.Y, cells)
			s.dst.SetWithColor(x, y, ch, color)
		}
	}
}

// glyph picks the rune for one cell of a drawable.
func glyph(d Drawable, col, row int, cells core.Rect) rune {
	last := row == cells.H-1
	switch d.Sprite {
	case SpriteRunnerRun, SpriteRunnerSit, SpriteRunnerJump, SpriteRunnerFall:
		switch {
		case row == 0:
			return HatChar
		case last && d.Sprite == SpriteRunnerRun:
			if (col+d.Frame)%2 == 0 {
				return LegLeft
			}
			return LegRight
		default:
			return BodyChar
		}
	case SpriteRunnerRoll:
		return RollChar
	case SpriteRunnerDive:
		if last {
			return DiveChar
		}
		return BodyChar
	case SpriteRunnerHit:
		return HurtChar
	case SpriteGhost:
		return GhostChar
	case SpriteVine:
		if last {
			return VineTip
		}
		return VineChar
	case SpriteBat:
		if d.Frame%2 == 0 {
			return BatChar
		}
		return BatFlap
	case SpriteStump:
		return StumpChar
	case SpriteCrawler:
		return CrawlChar
	case SpriteHole:
		return HoleChar
	case SpriteDust:
		return DustChar
	case SpriteSpark:
		return SparkChar
	case SpriteBurst:
		if d.Frame < len(burstFrames) {
			return burstFrames[d.Frame]
		}
		return burstFrames[len(burstFrames)-1]
	default:
		return '?'
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	surface := NewScreenSurface(dst, g.cfg.Canvas.Width, g.cfg.Canvas.Height, 1)
	dst.DrawHLine(0, surface.Row(g.cfg.Canvas.GroundY()), dst.Width(), GroundChar, core.ColorBrown)

	g.session.Draw(surface)

	hud := g.session.HUD()
	g.drawHUD(dst, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if hud.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER: "+hud.Reason,
			fmt.Sprintf("Score: %d  Best combo: %d  |  Press R to restart", hud.Score, hud.BestCombo))
	}
}

// drawHUD renders the counters on the top row and the status message on the last one.
func (g *Game) drawHUD(dst *core.Screen, hud HUD) {
	left := fmt.Sprintf(" Score: %d  Combo: %d  Misses: %d/%d ", hud.Score, hud.Combo, hud.MissStreak, hud.MissThreshold)
	dst.DrawText(0, 0, left)

	right := fmt.Sprintf(" Ghost: %4.0fpx  Spd: %3.0f ", hud.Distance, hud.Speed)
	color := core.ColorDefault
	if hud.Slowed {
		color = core.ColorOrange
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, color)

	if hud.Message != "" {
		dst.DrawTextColored(1, dst.Height()-1, hud.Message, core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
