// Package motion is a frame-driven value-interpolation (tweening) engine.
//
// Motion advances many independent typed animations once per tick, recycles
// their instances through per-type object pools, and tracks which running
// animations belong to which owning object so an owner's animations can be
// bulk-queried or cancelled cheaply.
//
// # Quick start
//
// Create a [Runtime], start tweens, and call [Runtime.Advance] once per frame
// from your game loop:
//
//	rt := motion.NewRuntime()
//
//	motion.Animate(rt, 0.0, 10.0, 2.0, func(v float64) {
//		sprite.X = v
//	})
//
//	// each frame:
//	rt.Advance(1.0 / 60.0)
//
// Tweens are configured with chained setters:
//
//	motion.Animate(rt, start, end, 1.5, apply).
//		SetEase(ease.OutBounce).
//		SetLoops(2, motion.LoopYoyo).
//		AttachTo(sprite)
//
// # Value types
//
// A fresh Runtime supports float64, int, [Vec2], [Vec3], [Color], and [Angle]
// out of the box. Additional types are added with [RegisterPool] and an
// [Interp] function; the scheduler never needs to know about them.
//
// # Easing
//
// [EaseFunc] is a plain func(float64) float64, so the curves in
// [github.com/fogleman/ease] plug in directly. Curves written for
// [gween] can be adapted with [GweenEase].
//
// # Ownership
//
// Tweens may be attached to an owner with [Tween.AttachTo]. Owners are opaque
// handles used only for bulk query and cancel ([Runtime.Clear],
// [Runtime.HasAnimations]); the engine never extends an owner's lifetime. An
// owner that implements [Disposable] additionally lets tweens configured with
// [Tween.SetReleaseWithOwner] clean themselves up when the owner goes away.
//
// # Concurrency
//
// Motion is single-threaded and cooperative: all state transitions happen
// synchronously inside Advance or inside the calling code. There is no
// locking and no background goroutine.
//
// [gween]: https://github.com/tanema/gween
package motion
