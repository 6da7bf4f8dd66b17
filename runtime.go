package motion

import "reflect"

// animation is the type-erased view the scheduler and ownership registry have
// of a *Tween[T].
type animation interface {
	step(dt, scale float64)
	forceRelease(reset ResetBehaviour)
}

// ownerSet is the collection of animations currently bound to one owner.
// Sets are recycled through a free list to avoid allocation churn as owners
// come and go.
type ownerSet struct {
	anims []animation
}

// Runtime owns the active set, the ownership registry, and the per-type tween
// pools. All methods must be called from the single thread that calls
// Advance; there is no internal locking.
type Runtime struct {
	// TimeScale multiplies the dt seen by scaled tweens. 0 pauses them,
	// 0.5 is half speed. Tweens opt out with SetUnscaledTime.
	TimeScale float64

	active    []animation
	advancing bool
	owners    map[any]*ownerSet
	setFree   []*ownerSet
	pools     map[reflect.Type]any
}

// NewRuntime creates a Runtime with pools registered for the built-in value
// types: float64, int, Vec2, Vec3, Color (component-wise linear), and Angle
// (shortest arc).
func NewRuntime() *Runtime {
	rt := &Runtime{
		TimeScale: 1,
		owners:    make(map[any]*ownerSet),
		pools:     make(map[reflect.Type]any),
	}
	RegisterPool[float64](rt, LerpFloat64, defaultPoolInitial, defaultPoolMax)
	RegisterPool[int](rt, LerpInt, defaultPoolInitial, defaultPoolMax)
	RegisterPool[Vec2](rt, LerpVec2, defaultPoolInitial, defaultPoolMax)
	RegisterPool[Vec3](rt, LerpVec3, defaultPoolInitial, defaultPoolMax)
	RegisterPool[Color](rt, LerpColor, defaultPoolInitial, defaultPoolMax)
	RegisterPool[Angle](rt, LerpAngle, defaultPoolInitial, defaultPoolMax)
	return rt
}

// Advance ticks every active animation exactly once, in reverse registration
// order. Animations started during the call land past the iteration start
// and are first ticked on the next call; animations may stop, release, or
// re-parent themselves (or each other) mid-tick without corrupting the
// iteration: mid-pass removals nil their slot and the list compacts after
// the pass, so indices stay stable while ticking.
func (rt *Runtime) Advance(dt float64) {
	rt.advancing = true
	for i := len(rt.active) - 1; i >= 0; i-- {
		if a := rt.active[i]; a != nil {
			a.step(dt, rt.TimeScale)
		}
	}
	rt.advancing = false

	n := 0
	for _, a := range rt.active {
		if a != nil {
			rt.active[n] = a
			n++
		}
	}
	clear(rt.active[n:])
	rt.active = rt.active[:n]
}

// ActiveCount returns the number of animations in the active set, including
// paused ones.
func (rt *Runtime) ActiveCount() int {
	n := 0
	for _, a := range rt.active {
		if a != nil {
			n++
		}
	}
	return n
}

// Clear releases every animation bound to owner, publishing a final value per
// reset, and drops the owner's mapping. No-op for an unknown owner; owners
// may be torn down before or after their animations complete.
func (rt *Runtime) Clear(owner any, reset ResetBehaviour) {
	set, ok := rt.owners[owner]
	if !ok {
		return
	}
	// Drop the mapping first so each release's unbind is a clean no-op and a
	// callback that attaches new tweens to the same owner gets a fresh set.
	delete(rt.owners, owner)
	for _, a := range set.anims {
		a.forceRelease(reset)
	}
	rt.recycleSet(set)
}

// HasAnimations reports whether any animation is currently bound to owner.
func (rt *Runtime) HasAnimations(owner any) bool {
	set, ok := rt.owners[owner]
	return ok && len(set.anims) > 0
}

// --- Active set ---

// registerActive appends a to the tick list. Called by Tween.Start.
func (rt *Runtime) registerActive(a animation) {
	rt.active = append(rt.active, a)
}

// unregisterActive removes a from the tick list, preserving order. During an
// Advance pass the slot is nilled in place (indices must stay stable under
// the iterator); otherwise it is removed with copy+nil so the backing array
// does not retain a dangling reference.
func (rt *Runtime) unregisterActive(a animation) {
	for i, other := range rt.active {
		if other == a {
			if rt.advancing {
				rt.active[i] = nil
				return
			}
			copy(rt.active[i:], rt.active[i+1:])
			rt.active[len(rt.active)-1] = nil
			rt.active = rt.active[:len(rt.active)-1]
			return
		}
	}
}

// --- Ownership registry ---

// bind inserts a into owner's set, allocating (or recycling) the set on first
// use. The caller has already detached a from any previous owner.
func (rt *Runtime) bind(a animation, owner any) {
	set, ok := rt.owners[owner]
	if !ok {
		set = rt.acquireSet()
		rt.owners[owner] = set
	}
	set.anims = append(set.anims, a)
}

// unbind removes a from owner's set. When the set empties, the owner mapping
// is dropped and the set returns to the free list. No-op for unknown owners.
func (rt *Runtime) unbind(a animation, owner any) {
	set, ok := rt.owners[owner]
	if !ok {
		return
	}
	for i, other := range set.anims {
		if other == a {
			last := len(set.anims) - 1
			set.anims[i] = set.anims[last]
			set.anims[last] = nil
			set.anims = set.anims[:last]
			break
		}
	}
	if len(set.anims) == 0 {
		delete(rt.owners, owner)
		rt.recycleSet(set)
	}
}

// acquireSet pops a recycled set or allocates one.
func (rt *Runtime) acquireSet() *ownerSet {
	if n := len(rt.setFree); n > 0 {
		set := rt.setFree[n-1]
		rt.setFree[n-1] = nil
		rt.setFree = rt.setFree[:n-1]
		return set
	}
	return &ownerSet{}
}

// recycleSet clears a set and pushes it onto the free list.
func (rt *Runtime) recycleSet(set *ownerSet) {
	clear(set.anims)
	set.anims = set.anims[:0]
	rt.setFree = append(rt.setFree, set)
}
