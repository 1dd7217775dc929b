// Package ecs provides ECS adapters for veil's opacity engine.
//
// The primary adapter is [NewDonburiRemover], which bridges veil despawn
// requests into a [Donburi] world as typed events. Subscribe to
// [RemovalEventType] in the ECS system that owns entity lifetime and remove
// (or ignore) the named entities there.
//
// Usage:
//
//	remover := ecs.NewDonburiRemover(world)
//	engine.Tick(dt, tree, remover)
//	RemovalEventType.ProcessEvents(world) // before the next Compose
//
// [OpacityComponent] stores a veil.Opacity directly on Donburi entities for
// worlds that keep all per-entity data in components.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
