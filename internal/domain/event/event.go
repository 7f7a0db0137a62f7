package event

import (
	"context"
	"time"
)

// Event types published on the per-shop realtime channel.
const (
	TypeNewOrder          = "new-order"
	TypeOrderStatusUpdate = "order-status-update"
	TypeOrderCancelled    = "order-cancelled"
	TypeOrderDeleted      = "order-deleted"
	TypeLowStockAlert     = "low-stock-alert"
	TypeTableStatusUpdate = "table-status-update"
)

// Event is one domain event. Payload is marshaled as-is for subscribers.
type Event struct {
	Type    string    `json:"type"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

// New builds an event stamped with the current time.
func New(eventType string, payload any) Event {
	return Event{Type: eventType, Payload: payload, At: time.Now()}
}

// Publisher delivers events to a shop's subscribers. Publication is
// best-effort and fire-and-forget: implementations must never block the
// request path or surface delivery failures to the caller.
type Publisher interface {
	Publish(ctx context.Context, shopID string, ev Event)
}

// Noop discards every event. Used when no broker is configured and in tests.
type Noop struct{}

// Publish implements Publisher.
func (Noop) Publish(context.Context, string, Event) {}
