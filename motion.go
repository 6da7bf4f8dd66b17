package motion

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Angle is a rotation in radians. Angles interpolate along the shortest arc
// (see LerpAngle), unlike plain float64 values.
type Angle float64

// LoopKind selects what happens when a tween's progress reaches a bound.
type LoopKind uint8

const (
	LoopNone    LoopKind = iota // stop at completion
	LoopRestart                 // snap progress back to 0 and replay forward
	LoopYoyo                    // reverse direction at each bound
)

// ResetBehaviour selects the final value published when a tween is released.
type ResetBehaviour uint8

const (
	KeepCurrent ResetBehaviour = iota // no final OnUpdate call
	ToStart                           // publish the start value one last time
	ToEnd                             // publish the end value one last time
)

// State is a tween's play state.
type State uint8

const (
	StateStopped State = iota // idle; not in the active set
	StatePlaying              // advancing each frame
	StatePaused               // in the active set but not advancing
)

// InfiniteLoops makes SetLoops repeat forever.
const InfiniteLoops = -1

// Floors applied by the coercing setters. Non-positive durations and speeds
// are authoring mistakes that should degrade gracefully, not divide by zero.
const (
	minDuration = 1e-6
	minSpeed    = 1e-6
)

// Disposable is the optional liveness query an owner can implement. A tween
// configured with SetReleaseWithOwner releases itself on the first tick after
// its owner reports IsDisposed.
type Disposable interface {
	IsDisposed() bool
}

// ownerAlive reports whether an owner handle should still be treated as live.
// Owners that do not implement Disposable are always live.
func ownerAlive(owner any) bool {
	if owner == nil {
		return false
	}
	if d, ok := owner.(Disposable); ok {
		return !d.IsDisposed()
	}
	return true
}
