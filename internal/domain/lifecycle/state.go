package lifecycle

// ActionState is the store's view of one action: the latest lifecycle event
// dispatched for it plus the payload of the previous terminal event, kept so
// read-side consumers can render stale data while a refresh is in flight.
type ActionState struct {
	Latest      Event
	PrevPayload any
}

// State is an immutable snapshot of the store: the latest event per action and
// the normalized entity cache keyed by entity name, then canonical id.
//
// Snapshots are safe to read without synchronization. Entity values are shared
// with the store; consumers must treat them as read-only.
type State struct {
	Actions  map[string]ActionState
	Entities map[string]map[string]any
}

// Action returns the state for the given action id and whether any event has
// been dispatched for it.
func (s State) Action(actionID string) (ActionState, bool) {
	as, ok := s.Actions[actionID]
	return as, ok
}

// Entity looks up one entity by name and canonical id.
func (s State) Entity(entityName string, id any) (any, bool) {
	byID, ok := s.Entities[entityName]
	if !ok {
		return nil, false
	}
	v, ok := byID[KeyOf(id)]
	return v, ok
}
