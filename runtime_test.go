package motion

import (
	"math"
	"testing"
)

func TestOwnershipExclusivity(t *testing.T) {
	rt := NewRuntime()
	ownerA := &fakeOwner{}
	ownerB := &fakeOwner{}

	tw := Animate(rt, 0.0, 1.0, 1.0, nil).AttachTo(ownerA)

	if !rt.HasAnimations(ownerA) {
		t.Fatal("ownerA should have the animation")
	}

	tw.AttachTo(ownerB)

	if rt.HasAnimations(ownerA) {
		t.Error("re-attaching must remove the animation from ownerA's set")
	}
	if !rt.HasAnimations(ownerB) {
		t.Error("re-attaching must add the animation to ownerB's set")
	}
	if tw.Owner() != ownerB {
		t.Error("Owner() should report ownerB")
	}
}

func TestClearToStartPublishesStartValue(t *testing.T) {
	rt := NewRuntime()
	owner := &fakeOwner{}

	var last float64
	calls := 0
	Animate(rt, 2.0, 8.0, 2.0, func(v float64) { last = v; calls++ }).
		AttachTo(owner)

	rt.Advance(1.0) // halfway: 5.0
	callsBefore := calls

	rt.Clear(owner, ToStart)

	if calls != callsBefore+1 {
		t.Fatalf("expected exactly one final update, got %d", calls-callsBefore)
	}
	if math.Abs(last-2.0) > 1e-9 {
		t.Errorf("final value = %f, want start 2.0", last)
	}
	if rt.HasAnimations(owner) {
		t.Error("owner mapping should be dropped after Clear")
	}
}

func TestClearToEndPublishesEndValue(t *testing.T) {
	rt := NewRuntime()
	owner := &fakeOwner{}

	var last float64
	Animate(rt, 2.0, 8.0, 2.0, func(v float64) { last = v }).
		AttachTo(owner)

	rt.Advance(1.0)
	rt.Clear(owner, ToEnd)

	if math.Abs(last-8.0) > 1e-9 {
		t.Errorf("final value = %f, want end 8.0", last)
	}
}

func TestClearKeepCurrentPublishesNothing(t *testing.T) {
	rt := NewRuntime()
	owner := &fakeOwner{}

	calls := 0
	Animate(rt, 2.0, 8.0, 2.0, func(float64) { calls++ }).
		AttachTo(owner)

	rt.Advance(1.0)
	callsBefore := calls

	rt.Clear(owner, KeepCurrent)

	if calls != callsBefore {
		t.Errorf("KeepCurrent must not publish a final value (got %d extra)", calls-callsBefore)
	}
}

func TestClearReleasesAllBoundAnimations(t *testing.T) {
	rt := NewRuntime()
	owner := &fakeOwner{}

	for i := 0; i < 5; i++ {
		Animate(rt, 0.0, 1.0, 10.0, nil).AttachTo(owner)
	}
	Animate(rt, 0.0, 1.0, 10.0, nil) // unowned; must survive

	rt.Clear(owner, KeepCurrent)

	if rt.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d after Clear, want 1 (the unowned tween)", rt.ActiveCount())
	}
	if got := IdleCount[float64](rt); got != 5 {
		t.Errorf("IdleCount = %d, want 5 released instances", got)
	}
}

func TestClearUnknownOwnerIsANoOp(t *testing.T) {
	rt := NewRuntime()

	// Idempotent cleanup: owners may be torn down before, after, or twice.
	rt.Clear(&fakeOwner{}, KeepCurrent)
	rt.Clear(nil, ToEnd)

	owner := &fakeOwner{}
	Animate(rt, 0.0, 1.0, 1.0, nil).AttachTo(owner)
	rt.Clear(owner, KeepCurrent)
	rt.Clear(owner, KeepCurrent)

	if rt.HasAnimations(owner) {
		t.Error("owner should have no animations after Clear")
	}
}

func TestHasAnimationsUnknownOwner(t *testing.T) {
	rt := NewRuntime()
	if rt.HasAnimations(&fakeOwner{}) {
		t.Error("an owner absent from the registry has no animations")
	}
}

func TestNilOwnerPanics(t *testing.T) {
	rt := NewRuntime()
	tw := Animate(rt, 0.0, 1.0, 1.0, nil)

	defer func() {
		if recover() == nil {
			t.Error("AttachTo(nil) should panic; it is a call-site logic bug")
		}
	}()
	tw.AttachTo(nil)
}

func TestReverseRegistrationTickOrder(t *testing.T) {
	rt := NewRuntime()

	var order []string
	Animate(rt, 0.0, 1.0, 10.0, func(float64) { order = append(order, "first") })
	Animate(rt, 0.0, 1.0, 10.0, func(float64) { order = append(order, "second") })

	rt.Advance(0.1)

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("tick order = %v, want [second first]", order)
	}
}

func TestSameFrameStartIsDeferred(t *testing.T) {
	rt := NewRuntime()

	var spawned *Tween[float64]
	Animate(rt, 0.0, 1.0, 1.0, func(float64) {
		if spawned == nil {
			spawned = Animate(rt, 0.0, 1.0, 1.0, nil)
		}
	})

	rt.Advance(0.25)

	if spawned == nil {
		t.Fatal("spawner callback did not run")
	}
	if p := spawned.Progress(); p != 0 {
		t.Errorf("tween started mid-advance has progress %f, want 0 until next call", p)
	}

	rt.Advance(0.25)
	if p := spawned.Progress(); math.Abs(p-0.25) > 1e-9 {
		t.Errorf("Progress = %f on the following call, want 0.25", p)
	}
}

func TestMidTickSelfStop(t *testing.T) {
	rt := NewRuntime()

	var victim *Tween[float64]
	victim = Animate(rt, 0.0, 1.0, 10.0, nil).SetAutoRelease(false)

	// Registered after the victim, so it ticks first (reverse order) and can
	// remove an entry the iterator has not reached yet.
	Animate(rt, 0.0, 1.0, 10.0, func(float64) {
		victim.Stop()
	})

	rt.Advance(0.1) // must not panic or skip entries

	if victim.State() != StateStopped {
		t.Error("victim should be stopped")
	}
	if rt.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", rt.ActiveCount())
	}
}

func TestMidTickSelfRelease(t *testing.T) {
	rt := NewRuntime()

	var tw *Tween[float64]
	tw = Animate(rt, 0.0, 1.0, 10.0, func(float64) {
		tw.Release(KeepCurrent)
	})
	Animate(rt, 0.0, 1.0, 10.0, nil)

	rt.Advance(0.1)
	rt.Advance(0.1)

	if rt.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d after self-release, want 1", rt.ActiveCount())
	}
}

func TestMidTickReparent(t *testing.T) {
	rt := NewRuntime()
	ownerA := &fakeOwner{}
	ownerB := &fakeOwner{}

	var tw *Tween[float64]
	tw = Animate(rt, 0.0, 1.0, 10.0, func(float64) {
		tw.AttachTo(ownerB)
	}).AttachTo(ownerA)

	rt.Advance(0.1) // re-parents during its own tick

	if rt.HasAnimations(ownerA) {
		t.Error("ownerA should be empty after mid-tick re-parent")
	}
	if !rt.HasAnimations(ownerB) {
		t.Error("ownerB should hold the animation")
	}

	rt.Advance(0.1) // registry stayed consistent; no panic, still ticking
	if math.Abs(tw.Progress()-0.02) > 1e-9 {
		t.Errorf("Progress = %f, want 0.02", tw.Progress())
	}
}

func TestClearDuringAdvance(t *testing.T) {
	rt := NewRuntime()
	owner := &fakeOwner{}

	for i := 0; i < 3; i++ {
		Animate(rt, 0.0, 1.0, 10.0, nil).AttachTo(owner)
	}
	// Ticks first and wipes the other three mid-iteration.
	Animate(rt, 0.0, 1.0, 10.0, func(float64) {
		rt.Clear(owner, KeepCurrent)
	})

	rt.Advance(0.1)

	if rt.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1 after mid-advance Clear", rt.ActiveCount())
	}
}

func TestAdvanceWithNoAnimations(t *testing.T) {
	rt := NewRuntime()
	rt.Advance(1.0) // no-op, no panic
	if rt.ActiveCount() != 0 {
		t.Error("ActiveCount should be 0")
	}
}

func TestTimeScale(t *testing.T) {
	rt := NewRuntime()
	rt.TimeScale = 0.5

	scaled := Animate(rt, 0.0, 1.0, 1.0, nil).SetAutoRelease(false)
	unscaled := Animate(rt, 0.0, 1.0, 1.0, nil).
		SetUnscaledTime(true).
		SetAutoRelease(false)

	rt.Advance(0.5)

	if math.Abs(scaled.Progress()-0.25) > 1e-9 {
		t.Errorf("scaled Progress = %f, want 0.25", scaled.Progress())
	}
	if math.Abs(unscaled.Progress()-0.5) > 1e-9 {
		t.Errorf("unscaled Progress = %f, want 0.5", unscaled.Progress())
	}

	// TimeScale 0 pauses scaled tweens globally; unscaled ones keep going.
	rt.TimeScale = 0
	rt.Advance(0.5)

	if math.Abs(scaled.Progress()-0.25) > 1e-9 {
		t.Errorf("scaled Progress = %f at TimeScale 0, want 0.25", scaled.Progress())
	}
	if unscaled.State() != StateStopped {
		t.Errorf("unscaled tween should have completed, state = %v", unscaled.State())
	}
}

func TestOwnerSetRecycling(t *testing.T) {
	rt := NewRuntime()

	// Churn owners; the free list should keep the set count flat.
	for i := 0; i < 10; i++ {
		owner := &fakeOwner{}
		Animate(rt, 0.0, 1.0, 10.0, nil).AttachTo(owner)
		rt.Clear(owner, KeepCurrent)
	}

	if len(rt.setFree) != 1 {
		t.Errorf("free list holds %d sets, want 1 recycled set", len(rt.setFree))
	}
	if len(rt.owners) != 0 {
		t.Errorf("owner map has %d entries, want 0", len(rt.owners))
	}
}
