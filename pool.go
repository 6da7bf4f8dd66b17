package motion

import "reflect"

// Default pool bounds used by NewRuntime for the built-in value types.
const (
	defaultPoolInitial = 0
	defaultPoolMax     = 64
)

// pool is a bounded stack of idle tweens for one concrete value type.
// After warmup, Acquire/Release cycles are zero-alloc.
type pool[T any] struct {
	rt      *Runtime
	lerp    Interp[T]
	idle    []*Tween[T]
	maxSize int
}

// newTween constructs a fresh instance in its default (stopped) state.
func (p *pool[T]) newTween() *Tween[T] {
	t := &Tween[T]{rt: p.rt, pool: p, lerp: p.lerp}
	t.reset()
	return t
}

// get pops an idle instance or constructs one.
func (p *pool[T]) get() *Tween[T] {
	if n := len(p.idle); n > 0 {
		t := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		t.pooled = false
		return t
	}
	return p.newTween()
}

// put returns an instance to the idle stack, or discards it when full.
// The caller has already reset the instance.
func (p *pool[T]) put(t *Tween[T]) {
	t.pooled = true
	if len(p.idle) >= p.maxSize {
		return
	}
	p.idle = append(p.idle, t)
}

// RegisterPool associates value type T with a bounded tween pool and the
// interpolation function its tweens use. initial instances are preallocated;
// at most max idle instances are retained. Registering a type that already
// has a pool is ignored with a warning, so queued idle instances are never
// silently destroyed.
//
// NewRuntime registers pools for float64, int, Vec2, Vec3, Color, and Angle;
// RegisterPool is the extension point for everything else:
//
//	motion.RegisterPool[MyStruct](rt, lerpMyStruct, 0, 64)
func RegisterPool[T any](rt *Runtime, lerp Interp[T], initial, max int) {
	key := reflect.TypeFor[T]()
	if _, ok := rt.pools[key]; ok {
		warnf("pool for %v already registered; keeping the existing pool", key)
		return
	}
	if max < 1 {
		max = 1
	}
	if initial < 0 {
		initial = 0
	}
	if initial > max {
		initial = max
	}
	p := &pool[T]{rt: rt, lerp: lerp, maxSize: max}
	for i := 0; i < initial; i++ {
		t := p.newTween()
		t.pooled = true
		p.idle = append(p.idle, t)
	}
	rt.pools[key] = p
}

// Acquire returns a tween for T in its default state, reusing an idle pooled
// instance when one is available. Returns nil, with a diagnostic, when no
// pool is registered for T — a setup bug in the calling subsystem, not a
// crash.
func Acquire[T any](rt *Runtime) *Tween[T] {
	key := reflect.TypeFor[T]()
	entry, ok := rt.pools[key]
	if !ok {
		warnf("no pool registered for %v; call RegisterPool before Acquire", key)
		return nil
	}
	return entry.(*pool[T]).get()
}

// IdleCount returns the number of idle pooled instances for T, or 0 when no
// pool is registered. Useful for instrumentation and tests.
func IdleCount[T any](rt *Runtime) int {
	entry, ok := rt.pools[reflect.TypeFor[T]()]
	if !ok {
		return 0
	}
	return len(entry.(*pool[T]).idle)
}
