package chase

// EffectKind distinguishes transient effects.
type EffectKind int

const (
	EffectDust  EffectKind = iota // Kicked up behind a running runner
	EffectSpark                   // Flies off a struck obstacle
	EffectBurst                   // Collision animation at the struck obstacle's center
)

// Sprite returns the logical sprite for the effect.
func (k EffectKind) Sprite() SpriteID {
	switch k {
	case EffectSpark:
		return SpriteSpark
	case EffectBurst:
		return SpriteBurst
	default:
		return SpriteDust
	}
}

// Effect is a short-lived animated entity. It is removed once its animation
// runs past MaxFrame or when its queue evicts it.
type Effect struct {
	Entity
	Kind     EffectKind
	VX, VY   float64 // Own velocity in px/s, on top of the world scroll
	Frame    int
	MaxFrame int

	frameTimer    float64
	frameInterval float64
}

func newEffect(kind EffectKind, x, y, size float64, frames int, fps float64) Effect {
	interval := 1000.0 / 15
	if fps > 0 {
		interval = 1000.0 / fps
	}
	return Effect{
		Entity:        Entity{X: x - size/2, Y: y - size/2, Width: size, Height: size},
		Kind:          kind,
		MaxFrame:      frames - 1,
		frameInterval: interval,
	}
}

// advance moves the effect with the world and steps its animation.
// It reports whether the effect is still alive.
func (e *Effect) advance(dt, scroll float64) bool {
	secs := dt / 1000
	e.X += (e.VX - scroll) * secs
	e.Y += e.VY * secs

	e.frameTimer += dt
	for e.frameTimer >= e.frameInterval {
		e.frameTimer -= e.frameInterval
		e.Frame++
	}
	return e.Frame <= e.MaxFrame && !e.MarkedForRemoval
}

// EffectQueue is a fixed-capacity ring of effects. Pushing into a full queue
// evicts the oldest entry; Update compacts survivors in place, keeping order.
type EffectQueue struct {
	buf     []Effect
	head    int
	n       int
	evicted int
}

// NewEffectQueue creates a queue holding at most capacity effects.
func NewEffectQueue(capacity int) *EffectQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &EffectQueue{buf: make([]Effect, capacity)}
}

// Push appends an effect, evicting the oldest one when the queue is full.
func (q *EffectQueue) Push(e Effect) {
	if q.n == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.n--
		q.evicted++
	}
	q.buf[(q.head+q.n)%len(q.buf)] = e
	q.n++
}

// Update advances every effect and drops the finished ones.
func (q *EffectQueue) Update(dt, scroll float64) {
	kept := 0
	for i := 0; i < q.n; i++ {
		idx := (q.head + i) % len(q.buf)
		if !q.buf[idx].advance(dt, scroll) {
			continue
		}
		if kept != i {
			q.buf[(q.head+kept)%len(q.buf)] = q.buf[idx]
		}
		kept++
	}
	for i := kept; i < q.n; i++ {
		q.buf[(q.head+i)%len(q.buf)] = Effect{}
	}
	q.n = kept
}

// Each calls fn for every live effect, oldest first.
func (q *EffectQueue) Each(fn func(e *Effect)) {
	for i := 0; i < q.n; i++ {
		fn(&q.buf[(q.head+i)%len(q.buf)])
	}
}

// Len returns the number of live effects.
func (q *EffectQueue) Len() int {
	return q.n
}

// Cap returns the queue capacity.
func (q *EffectQueue) Cap() int {
	return len(q.buf)
}

// Evicted returns how many effects were dropped to make room.
func (q *EffectQueue) Evicted() int {
	return q.evicted
}

// Clear removes every effect.
func (q *EffectQueue) Clear() {
	for i := range q.buf {
		q.buf[i] = Effect{}
	}
	q.head, q.n = 0, 0
}
