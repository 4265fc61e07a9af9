// Package lifecycle defines the immutable lifecycle event record emitted for
// every action status transition, the builder that derives its secondary
// fields, and the store state snapshot shape those events reduce into.
//
// Events are value types: once built they are passed by copy and never
// mutated. Ownership passes to the store on dispatch.
package lifecycle

import (
	"fmt"
	"time"
)

// Status is the lifecycle phase of a single action invocation.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// TypeClear is the fixed event type of the sentinel clear event dispatched by
// Definition.Clear. It carries only the action identity and entity name and
// instructs the store to drop that action's slice.
const TypeClear = "statekit/clear"

// DataKey classifies the payload shape of a terminal success event.
type DataKey string

const (
	// DataKeyNone marks events that carry no payload (pending or error).
	DataKeyNone DataKey = ""
	// DataKeyItem marks a single extracted identifier payload.
	DataKeyItem DataKey = "item"
	// DataKeyItems marks a list-of-identifiers payload.
	DataKeyItems DataKey = "items"
)

// Event is one immutable record describing a single pending/success/error
// transition of an action invocation.
type Event struct {
	Time           time.Time `json:"time"`
	Type           string    `json:"type"`
	ActionID       string    `json:"action_id"`
	ParentActionID string    `json:"parent_action_id,omitempty"`
	Status         Status    `json:"status"`
	IsFetching     bool      `json:"is_fetching"`
	ErrorText      string    `json:"error_text,omitempty"`
	HasError       bool      `json:"has_error"`
	EntityName     string    `json:"entity_name"`
	IsArrayData    bool      `json:"is_array_data"`
	DataKey        DataKey   `json:"data_key,omitempty"`

	// Payload holds the extracted identifier (DataKeyItem) or list of
	// identifiers (DataKeyItems). Nil on pending and error events.
	Payload any `json:"payload,omitempty"`

	// PayloadSource is the raw denormalized data the payload identifiers
	// were extracted from.
	PayloadSource any `json:"payload_source,omitempty"`

	RawResult       any `json:"raw_result,omitempty"`
	BackendResponse any `json:"backend_response,omitempty"`
}

// Clear builds the sentinel clear event for the given action identity.
func Clear(actionID, entityName string, now time.Time) Event {
	return Event{
		Time:       now,
		Type:       TypeClear,
		ActionID:   actionID,
		EntityName: entityName,
	}
}

// KeyOf canonicalizes an extracted identifier into the string form used as an
// entity cache key. Identifiers of different Go types that print identically
// (int64(7) and "7") intentionally collide, matching the cache's semantics.
func KeyOf(id any) string {
	return fmt.Sprintf("%v", id)
}
