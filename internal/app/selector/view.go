package selector

import (
	"time"

	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
)

// ActionView is the stable read-model shape for one action. When no event has
// been dispatched for the action yet, the zero value is returned: empty
// status and error text, zero time, not fetching.
type ActionView struct {
	Status      string    `json:"status"`
	Time        time.Time `json:"time"`
	HasError    bool      `json:"has_error"`
	ErrorText   string    `json:"error_text"`
	IsFetching  bool      `json:"is_fetching"`
	IsArrayData bool      `json:"is_array_data"`
	EntityName  string    `json:"entity_name"`
}

// ViewOf derives the ActionView for actionID from a state snapshot.
func ViewOf(state lifecycle.State, actionID string) ActionView {
	as, ok := state.Action(actionID)
	if !ok {
		return ActionView{}
	}

	ev := as.Latest
	return ActionView{
		Status:      string(ev.Status),
		Time:        ev.Time,
		HasError:    ev.HasError,
		ErrorText:   ev.ErrorText,
		IsFetching:  ev.IsFetching,
		IsArrayData: ev.IsArrayData,
		EntityName:  ev.EntityName,
	}
}

// Denormalize resolves the latest payload of actionID through the entity
// cache: a list payload yields the entities found for its identifiers, a
// scalar payload yields the single entity. The second return is false when
// the action has no payload or the scalar entity is missing from the cache.
func Denormalize(state lifecycle.State, actionID string) (any, bool) {
	as, ok := state.Action(actionID)
	if !ok || as.Latest.Payload == nil {
		return nil, false
	}
	return resolve(state, as.Latest.EntityName, as.Latest.Payload)
}

// DenormalizePrev resolves the previous payload of actionID, letting readers
// render stale data while a refresh is in flight.
func DenormalizePrev(state lifecycle.State, actionID string) (any, bool) {
	as, ok := state.Action(actionID)
	if !ok || as.PrevPayload == nil {
		return nil, false
	}
	return resolve(state, as.Latest.EntityName, as.PrevPayload)
}

// resolve maps identifiers to cached entities. Identifiers missing from the
// cache are skipped in lists.
func resolve(state lifecycle.State, entityName string, payload any) (any, bool) {
	if ids, ok := payload.([]any); ok {
		out := make([]any, 0, len(ids))
		for _, id := range ids {
			if v, found := state.Entity(entityName, id); found {
				out = append(out, v)
			}
		}
		return out, true
	}

	v, found := state.Entity(entityName, payload)
	if !found {
		return nil, false
	}
	return v, true
}
