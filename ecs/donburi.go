package ecs

import (
	"github.com/phanxgames/veil"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// OpacityComponent is the Donburi component type for veil.Opacity, for
// worlds that keep the authoritative opacity on the entity itself and sync
// it into a veil.Engine each frame.
var OpacityComponent = donburi.NewComponentType[veil.Opacity]()

// RemovalEventType is the Donburi event type for veil despawn requests.
// Subscribe to this in the system that owns entity lifetime; requests are
// best-effort and may name entities that no longer exist.
var RemovalEventType = events.NewEventType[RemovalRequest]()

// RemovalRequest asks the host to despawn one node. Published when that
// node's fade-out completes.
type RemovalRequest struct {
	Node veil.NodeID
}

type donburiRemover struct {
	world donburi.World
}

// NewDonburiRemover creates a veil.Remover backed by a Donburi world.
// Despawn requests are published to RemovalEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiRemover(world donburi.World) veil.Remover {
	return &donburiRemover{world: world}
}

func (r *donburiRemover) RequestRemoval(id veil.NodeID) {
	RemovalEventType.Publish(r.world, RemovalRequest{Node: id})
}
