package motion

// Tween is a single typed interpolation task with its own timing, loop, and
// callback state. Tweens come from a Runtime's pool registry (via [Animate]
// or [Acquire]); do not construct them directly.
//
// All configuration methods return the tween itself for chaining:
//
//	motion.Animate(rt, a, b, 0.5, apply).
//		SetEase(ease.InOutQuad).
//		SetDelay(0.2).
//		AttachTo(owner)
//
// A tween holds no reference to other tweens, and an owner handle is never
// dereferenced except through the optional [Disposable] liveness query.
type Tween[T any] struct {
	start T
	end   T
	lerp  Interp[T]

	progress  float64 // always in [0, 1] outside of step
	direction float64 // +1 or -1 (yoyo return leg)
	duration  float64
	delay     float64
	delayLeft float64
	speed     float64
	loopKind  LoopKind
	loopsLeft int // -1 = infinite
	easeFn    EaseFunc
	unscaled  bool
	state     State

	owner            any
	autoRelease      bool
	releaseWithOwner bool

	onUpdate   []func(T)
	onComplete []func()

	rt     *Runtime
	pool   *pool[T]
	pooled bool
	gen    uint64 // bumped on release; invalidates in-flight callback passes
}

// Animate acquires a tween for T from rt's pool registry, configures its
// range, duration, and update callback, starts it, and returns it for further
// chained configuration.
//
// Returns nil when no pool is registered for T (see [RegisterPool]); a
// diagnostic is printed and the caller is expected to treat it as a setup bug.
func Animate[T any](rt *Runtime, from, to T, duration float64, onUpdate func(T)) *Tween[T] {
	t := Acquire[T](rt)
	if t == nil {
		return nil
	}
	t.SetStart(from)
	t.SetEnd(to, false)
	t.SetDuration(duration)
	if onUpdate != nil {
		t.OnUpdate(onUpdate)
	}
	return t.Start()
}

// --- Play state ---

// Start begins playback from the beginning and registers the tween with the
// scheduler. Only valid from StateStopped; no-op otherwise, and no-op if the
// duration was never set.
func (t *Tween[T]) Start() *Tween[T] {
	if t.state != StateStopped {
		return t
	}
	if t.duration < minDuration {
		return t
	}
	t.progress = 0
	t.direction = 1
	t.delayLeft = t.delay
	t.state = StatePlaying
	t.rt.registerActive(t)
	return t
}

// Stop halts playback, removes the tween from the scheduler, and detaches it
// from its owner. Progress is left where it was. A stopped tween holds no
// owner binding, so Stop detaches even when playback already ended.
func (t *Tween[T]) Stop() *Tween[T] {
	if t.state != StateStopped {
		t.state = StateStopped
		t.rt.unregisterActive(t)
	}
	if t.owner != nil {
		t.rt.unbind(t, t.owner)
		t.owner = nil
	}
	return t
}

// Pause suspends playback without resetting progress. No-op unless playing.
func (t *Tween[T]) Pause() *Tween[T] {
	if t.state == StatePlaying {
		t.state = StatePaused
	}
	return t
}

// Resume continues a paused tween. Resuming a stopped tween that never made
// progress restarts it instead.
func (t *Tween[T]) Resume() *Tween[T] {
	switch {
	case t.state == StatePaused:
		t.state = StatePlaying
	case t.state == StateStopped && t.progress == 0:
		t.Start()
	}
	return t
}

// --- Configuration ---

// SetStart sets the interpolation start value.
func (t *Tween[T]) SetStart(v T) *Tween[T] {
	t.start = v
	return t
}

// SetEnd sets a new end value and resets progress to 0. When rebase is true
// and the tween has made progress, the current value becomes the new start,
// so a mid-flight retarget continues smoothly instead of jumping.
func (t *Tween[T]) SetEnd(v T, rebase bool) *Tween[T] {
	if rebase && t.progress > 0 {
		t.start = t.Value()
	}
	t.end = v
	t.progress = 0
	t.direction = 1
	return t
}

// SetDuration sets the playback duration in seconds. Non-positive values are
// coerced to a small positive floor so progress math stays defined.
func (t *Tween[T]) SetDuration(seconds float64) *Tween[T] {
	if seconds < minDuration {
		seconds = minDuration
	}
	t.duration = seconds
	return t
}

// SetDelay sets a pre-playback delay in seconds. Negative values become 0.
// Effective when chained after Animate: a tween that has not yet consumed
// any delay or made progress picks up the new delay before its first real
// tick. A partially elapsed delay is not restarted.
func (t *Tween[T]) SetDelay(seconds float64) *Tween[T] {
	if seconds < 0 {
		seconds = 0
	}
	prev := t.delay
	t.delay = seconds
	if t.state == StateStopped || (t.progress == 0 && t.delayLeft == prev) {
		t.delayLeft = seconds
	}
	return t
}

// SetSpeed sets a playback speed multiplier. Non-positive values are coerced
// to a small positive floor.
func (t *Tween[T]) SetSpeed(multiplier float64) *Tween[T] {
	if multiplier < minSpeed {
		multiplier = minSpeed
	}
	t.speed = multiplier
	return t
}

// SetLoops configures looping: count extra repetitions of the given kind
// after the initial play. Use InfiniteLoops to repeat forever. Counts below
// InfiniteLoops are coerced to InfiniteLoops.
func (t *Tween[T]) SetLoops(count int, kind LoopKind) *Tween[T] {
	if count < InfiniteLoops {
		count = InfiniteLoops
	}
	t.loopsLeft = count
	t.loopKind = kind
	return t
}

// SetEase sets the easing curve. nil means linear.
func (t *Tween[T]) SetEase(fn EaseFunc) *Tween[T] {
	t.easeFn = fn
	return t
}

// SetUnscaledTime controls whether the tween ignores the Runtime's TimeScale.
// Unscaled tweens keep animating through slow motion and TimeScale-0 pauses
// (UI fades during pause screens, for example).
func (t *Tween[T]) SetUnscaledTime(unscaled bool) *Tween[T] {
	t.unscaled = unscaled
	return t
}

// SetAutoRelease controls whether the tween returns itself to its pool after
// completing naturally. Defaults to true; disable it to inspect or restart a
// finished tween, then call Release yourself.
func (t *Tween[T]) SetAutoRelease(auto bool) *Tween[T] {
	t.autoRelease = auto
	return t
}

// SetReleaseWithOwner controls whether the tween releases itself when its
// owner reports disposed (owners must implement [Disposable] for this to
// have any effect). Defaults to false.
func (t *Tween[T]) SetReleaseWithOwner(release bool) *Tween[T] {
	t.releaseWithOwner = release
	return t
}

// OnUpdate subscribes fn to value updates. Subscription is additive: every
// registered callback fires on each tick, in subscription order.
func (t *Tween[T]) OnUpdate(fn func(T)) *Tween[T] {
	if fn != nil {
		t.onUpdate = append(t.onUpdate, fn)
	}
	return t
}

// OnComplete subscribes fn to natural completion. Additive, like OnUpdate.
// Callbacks do not fire on Stop or Release.
func (t *Tween[T]) OnComplete(fn func()) *Tween[T] {
	if fn != nil {
		t.onComplete = append(t.onComplete, fn)
	}
	return t
}

// AttachTo binds the tween to an owner handle, re-parenting it if it was
// bound to a different owner. Panics if owner is nil; binding to a missing
// owner is a programmer error at the call site.
func (t *Tween[T]) AttachTo(owner any) *Tween[T] {
	if owner == nil {
		panic("motion: cannot attach a tween to a nil owner")
	}
	if t.owner == owner {
		return t
	}
	if t.owner != nil {
		t.rt.unbind(t, t.owner)
	}
	t.rt.bind(t, owner)
	t.owner = owner
	return t
}

// --- Queries ---

// State returns the tween's play state.
func (t *Tween[T]) State() State {
	return t.state
}

// Progress returns the linear (pre-easing) progress in [0, 1].
func (t *Tween[T]) Progress() float64 {
	return t.progress
}

// Direction reports which way progress is moving: +1 forward, -1 on the
// return leg of a yoyo loop.
func (t *Tween[T]) Direction() float64 {
	return t.direction
}

// Owner returns the owner handle the tween is bound to, or nil.
func (t *Tween[T]) Owner() any {
	return t.owner
}

// Value returns the interpolated value at the current (eased) progress.
func (t *Tween[T]) Value() T {
	p := t.progress
	if t.easeFn != nil {
		p = t.easeFn(p)
	}
	return t.lerp(t.start, t.end, p)
}

// --- Lifecycle ---

// Release stops the tween, optionally publishes one final value per reset,
// clears all transient state, and returns the instance to its pool. Releasing
// an already pooled tween is a warned no-op; owner teardown racing natural
// completion is expected, not a bug.
func (t *Tween[T]) Release(reset ResetBehaviour) {
	if t.pooled {
		warnf("Release on an already pooled tween ignored")
		return
	}
	t.Stop()
	switch reset {
	case ToStart:
		t.publish(t.start)
	case ToEnd:
		t.publish(t.end)
	}
	t.reset()
	t.pool.put(t)
}

// forceRelease implements the animation interface for Runtime.Clear.
func (t *Tween[T]) forceRelease(reset ResetBehaviour) {
	t.Release(reset)
}

// step advances playback by dt seconds. scale is the Runtime's TimeScale,
// ignored by unscaled tweens. Called once per Advance while registered.
func (t *Tween[T]) step(dt, scale float64) {
	if t.state != StatePlaying {
		return
	}
	if !t.unscaled {
		dt *= scale
	}
	if t.delayLeft > 0 {
		t.delayLeft -= dt
		return
	}
	if t.releaseWithOwner && t.owner != nil && !ownerAlive(t.owner) {
		t.Release(KeepCurrent)
		return
	}

	t.progress += t.direction * dt * t.speed / t.duration

	finished := false
	if t.progress >= 1 {
		t.progress = 1
		if t.loopKind == LoopYoyo {
			t.direction = -1
		} else {
			finished = true
		}
	} else if t.progress <= 0 && t.direction < 0 {
		t.progress = 0
		t.direction = 1
		finished = true
	}

	t.publish(t.Value())

	if finished {
		t.finishLoop()
	}
}

// finishLoop handles a closed-out loop: consume a repetition, spin forever,
// or complete.
func (t *Tween[T]) finishLoop() {
	switch {
	case t.loopsLeft > 0:
		t.loopsLeft--
		t.progress = 0
	case t.loopsLeft == InfiniteLoops:
		t.progress = 0
	default:
		t.complete()
	}
}

// complete stops the tween, fires completion callbacks, and auto-releases.
// A completion callback may restart or release the tween itself; both are
// tolerated.
func (t *Tween[T]) complete() {
	t.Stop()
	gen := t.gen
	for _, fn := range t.onComplete {
		// A callback releasing the tween invalidates the pass; a re-acquired
		// instance's subscribers land in the same backing array and must not
		// see this completion.
		if t.gen != gen {
			return
		}
		if fn != nil {
			fn()
		}
	}
	if t.gen == gen && t.autoRelease && !t.pooled && t.state == StateStopped {
		t.Release(KeepCurrent)
	}
}

// publish invokes every update subscriber with v. A subscriber releasing the
// tween invalidates the rest of the pass, even when the instance is acquired
// again before the pass finishes.
func (t *Tween[T]) publish(v T) {
	gen := t.gen
	for _, fn := range t.onUpdate {
		if t.gen != gen {
			return
		}
		if fn != nil {
			fn(v)
		}
	}
}

// reset restores every transient field to its default so a pooled instance
// is indistinguishable from a freshly constructed one.
func (t *Tween[T]) reset() {
	var zero T
	t.start = zero
	t.end = zero
	t.progress = 0
	t.direction = 1
	t.duration = 0
	t.delay = 0
	t.delayLeft = 0
	t.speed = 1
	t.loopKind = LoopNone
	t.loopsLeft = 0
	t.easeFn = nil
	t.unscaled = false
	t.state = StateStopped
	t.owner = nil
	t.autoRelease = true
	t.releaseWithOwner = false
	clear(t.onUpdate)
	t.onUpdate = t.onUpdate[:0]
	clear(t.onComplete)
	t.onComplete = t.onComplete[:0]
	t.gen++
}
