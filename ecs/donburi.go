// Package ecs provides ECS adapters for motion.
//
// The primary adapter is [Owner], which wraps a [Donburi] entity as a motion
// owner handle. The handle's liveness tracks the entity's validity in its
// world, so tweens attached with [Attach] release themselves once the entity
// is removed — no per-entity teardown code required.
//
// Usage:
//
//	e := world.Create(Position)
//	ecs.Attach(motion.Animate(rt, from, to, 0.5, apply), world, e)
//
//	// later, in any system:
//	world.Remove(e) // the tween cleans itself up on the next Advance
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
)

// EntityOwner is a motion owner handle backed by a Donburi entity. Two
// EntityOwner values for the same world and entity compare equal, so they
// address the same owned set of tweens.
type EntityOwner struct {
	world  donburi.World
	entity donburi.Entity
}

// Owner wraps a Donburi entity as a motion owner handle.
func Owner(world donburi.World, entity donburi.Entity) EntityOwner {
	return EntityOwner{world: world, entity: entity}
}

// IsDisposed implements motion.Disposable: the owner is gone once the entity
// is no longer valid in its world.
func (o EntityOwner) IsDisposed() bool {
	return !o.world.Valid(o.entity)
}

// Entity returns the wrapped entity.
func (o EntityOwner) Entity() donburi.Entity {
	return o.entity
}

// Attach binds tw to the entity and enables release-with-owner, so the tween
// is pooled automatically when the entity is removed. Returns tw for further
// chaining. No-op on a nil tween, so it composes with motion.Animate's
// missing-pool result.
func Attach[T any](tw *motion.Tween[T], world donburi.World, entity donburi.Entity) *motion.Tween[T] {
	if tw == nil {
		return nil
	}
	return tw.AttachTo(Owner(world, entity)).SetReleaseWithOwner(true)
}

// Clear releases every tween attached to the entity, publishing a final
// value per reset.
func Clear(rt *motion.Runtime, world donburi.World, entity donburi.Entity, reset motion.ResetBehaviour) {
	rt.Clear(Owner(world, entity), reset)
}

// HasAnimations reports whether any tween is attached to the entity.
func HasAnimations(rt *motion.Runtime, world donburi.World, entity donburi.Entity) bool {
	return rt.HasAnimations(Owner(world, entity))
}
