// Package chase implements the ghost chase simulation: a wizard runs after a
// ghost, striking obstacles to slow down and keep the ghost ahead.
// The package is pure logic; hosts feed it input frames and elapsed time and
// read back draw-ready entities.
package chase

import "github.com/vovakirdan/ghost-chase/internal/core"

// Entity is the shape shared by everything that lives on the canvas.
// Coordinates are canvas pixels with the origin at the top-left corner.
type Entity struct {
	X, Y          float64
	Width, Height float64

	MarkedForRemoval bool
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// Right returns the x-coordinate of the right edge.
func (e Entity) Right() float64 {
	return e.X + e.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (e Entity) Bottom() float64 {
	return e.Y + e.Height
}

// SpriteID is a logical sprite name. Hosts resolve it to whatever they draw with.
type SpriteID string

const (
	SpriteRunnerSit  SpriteID = "runner/sit"
	SpriteRunnerRun  SpriteID = "runner/run"
	SpriteRunnerJump SpriteID = "runner/jump"
	SpriteRunnerFall SpriteID = "runner/fall"
	SpriteRunnerRoll SpriteID = "runner/roll"
	SpriteRunnerDive SpriteID = "runner/dive"
	SpriteRunnerHit  SpriteID = "runner/hit"

	SpriteGhost   SpriteID = "ghost"
	SpriteVine    SpriteID = "vine"
	SpriteBat     SpriteID = "bat"
	SpriteStump   SpriteID = "stump"
	SpriteCrawler SpriteID = "crawler"
	SpriteHole    SpriteID = "hole"

	SpriteDust  SpriteID = "dust"
	SpriteSpark SpriteID = "spark"
	SpriteBurst SpriteID = "burst"
)

// Layer orders drawables; lower layers are drawn first.
type Layer int

const (
	LayerGround Layer = iota
	LayerObstacles
	LayerParticles
	LayerActors
	LayerEffects
)

// Drawable is the read-only view of one entity handed to a Surface.
type Drawable struct {
	Layer  Layer
	Sprite SpriteID
	Rect   core.RectF
	Frame  int
	Tint   bool
}

// Surface receives drawables during Session.Draw.
type Surface interface {
	Draw(d Drawable)
}
