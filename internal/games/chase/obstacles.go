package chase

import (
	"math"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

// ObstacleKind identifies an obstacle variant.
type ObstacleKind int

const (
	KindNone        ObstacleKind = iota // Empty slot
	KindVine                            // Hangs from the top, the runner passes through it
	KindBat                             // Flies in the top slot, destroyed when struck
	KindStump                           // Sits on the ground
	KindDoubleStump                     // Two stumps side by side
	KindCrawler                         // Crawls on the ground, destroyed when struck
	KindHole                            // Gap in the ground, entered by ducking over it
)

// String returns the kind's name.
func (k ObstacleKind) String() string {
	switch k {
	case KindVine:
		return "vine"
	case KindBat:
		return "bat"
	case KindStump:
		return "stump"
	case KindDoubleStump:
		return "double_stump"
	case KindCrawler:
		return "crawler"
	case KindHole:
		return "hole"
	default:
		return "none"
	}
}

// Sprite returns the logical sprite for the kind.
func (k ObstacleKind) Sprite() SpriteID {
	switch k {
	case KindVine:
		return SpriteVine
	case KindBat:
		return SpriteBat
	case KindStump, KindDoubleStump:
		return SpriteStump
	case KindCrawler:
		return SpriteCrawler
	case KindHole:
		return SpriteHole
	default:
		return ""
	}
}

// DestroyedOnHit reports whether a strike removes the obstacle.
func (k ObstacleKind) DestroyedOnHit() bool {
	return k == KindBat || k == KindCrawler
}

// Top reports whether the kind belongs in a pair's top slot.
func (k ObstacleKind) Top() bool {
	return k == KindVine || k == KindBat
}

// Obstacle is one physical obstacle. Compound kinds carry a second sprite in Twin.
type Obstacle struct {
	Entity
	Kind ObstacleKind
	VX   float64
	Twin *Entity
}

// move shifts the obstacle and its twin horizontally.
func (o *Obstacle) move(dx float64) {
	o.X += dx
	if o.Twin != nil {
		o.Twin.X += dx
	}
}

// Right returns the rightmost edge including the twin.
func (o *Obstacle) Right() float64 {
	if o.Twin != nil {
		return math.Max(o.Entity.Right(), o.Twin.Right())
	}
	return o.Entity.Right()
}

// Overlaps reports whether box intersects the obstacle or its twin.
func (o *Obstacle) Overlaps(box core.RectF) bool {
	if o.Rect().Intersects(box) {
		return true
	}
	return o.Twin != nil && o.Twin.Rect().Intersects(box)
}

// Center returns the center of the obstacle's full extent.
func (o *Obstacle) Center() (float64, float64) {
	left, top, bottom := o.X, o.Y, o.Bottom()
	if o.Twin != nil {
		top = math.Min(top, o.Twin.Y)
		bottom = math.Max(bottom, o.Twin.Bottom())
	}
	return (left + o.Right()) / 2, (top + bottom) / 2
}

// Pair groups the obstacles spawned together. Collided and Passed are set at
// most once each.
type Pair struct {
	ID     int
	Top    *Obstacle
	Bottom *Obstacle

	Collided bool
	Passed   bool
	Hole     bool // Bottom slot is a hole
}

// Members returns the present obstacles, top first.
func (p *Pair) Members() []*Obstacle {
	members := make([]*Obstacle, 0, 2)
	if p.Top != nil {
		members = append(members, p.Top)
	}
	if p.Bottom != nil {
		members = append(members, p.Bottom)
	}
	return members
}

// Empty reports whether every member has been removed.
func (p *Pair) Empty() bool {
	return p.Top == nil && p.Bottom == nil
}

// Right returns the rightmost edge over all members.
func (p *Pair) Right() float64 {
	right := math.Inf(-1)
	for _, o := range p.Members() {
		right = math.Max(right, o.Right())
	}
	return right
}

// Left returns the leftmost edge over all members.
func (p *Pair) Left() float64 {
	left := math.Inf(1)
	for _, o := range p.Members() {
		left = math.Min(left, o.X)
	}
	return left
}

// clearDestroyed drops members marked for removal from their slots.
func (p *Pair) clearDestroyed() {
	if p.Top != nil && p.Top.MarkedForRemoval {
		p.Top = nil
	}
	if p.Bottom != nil && p.Bottom.MarkedForRemoval {
		p.Bottom = nil
	}
}
