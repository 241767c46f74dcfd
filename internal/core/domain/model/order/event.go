package order

import (
	"errors"
	"maps"
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// Event is one entry of the append-only order history. Its type is the status
// the order entered. Events are created by Order mutations only.
type Event struct {
	id          kernel.UUID
	orderID     kernel.UUID
	ownerID     kernel.ID
	typ         Status
	actorUserID *kernel.ID
	payload     map[string]any
	occurredAt  time.Time
}

func newEvent(o *Order, actorUserID *kernel.ID, payload map[string]any) Event {
	return Event{
		id:          kernel.NewUUID(),
		orderID:     o.id,
		ownerID:     o.ownerID,
		typ:         o.status,
		actorUserID: actorUserID,
		payload:     maps.Clone(payload),
		occurredAt:  o.updatedAt,
	}
}

// RestoreEvent rebuilds an event read from the history table.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	ownerID kernel.ID,
	typ Status,
	actorUserID *kernel.ID,
	payload map[string]any,
	occurredAt time.Time,
) (Event, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		ownerID.Validate(),
		typ.Validate(),
	); err != nil {
		return Event{}, err
	}

	return Event{
		id:          id,
		orderID:     orderID,
		ownerID:     ownerID,
		typ:         typ,
		actorUserID: actorUserID,
		payload:     payload,
		occurredAt:  occurredAt,
	}, nil
}

func (e Event) ID() kernel.UUID {
	return e.id
}

func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

// OwnerID is the owner of the row the event belongs to, not necessarily the
// owner of the actor.
func (e Event) OwnerID() kernel.ID {
	return e.ownerID
}

func (e Event) Type() Status {
	return e.typ
}

// ActorUserID is nil for events raised by the marketplace sweep.
func (e Event) ActorUserID() *kernel.ID {
	return e.actorUserID
}

func (e Event) Payload() map[string]any {
	return maps.Clone(e.payload)
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
