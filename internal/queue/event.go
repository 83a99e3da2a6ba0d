// Package queue defines message payloads exchanged over the message broker.
package queue

// Debt activity actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Record kinds carried in a DebtActivityEvent.
const (
	KindClient = "client"
	KindVendor = "vendor"
)

// DebtActivityEvent is published whenever a client or vendor record
// changes. It carries enough information for downstream consumers to
// build an audit trail or notify without querying the record source.
type DebtActivityEvent struct {
	Kind       string  `json:"kind"`   // "client" or "vendor"
	Action     string  `json:"action"` // "created", "updated" or "deleted"
	RecordID   string  `json:"record_id"`
	RecordName string  `json:"record_name"`
	Amount     float64 `json:"amount"` // IQD
	ActorID    string  `json:"actor_id"`
	OccurredAt string  `json:"occurred_at"`
}
