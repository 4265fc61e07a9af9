package lifecycle

import (
	"reflect"
	"time"

	"github.com/mwhitaker/statekit/internal/domain"
)

// Fixed error texts derived by the builder. EmptyPayloadText reclassifies a
// success that arrived with no usable result; EmptyDataText surfaces a
// completed, non-error state that has no payload source.
const (
	EmptyPayloadText = "Empty payload"
	EmptyDataText    = "Empty Data"
)

// BuildFn produces one immutable lifecycle event from an error/payload/raw
// result/raw response tuple.
type BuildFn func(err error, payloadSource, rawResult, response any) Event

// NewBuilder returns a BuildFn bound to an action's identity, status, and
// schema. The now clock is injected for deterministic tests.
//
// Derivation rules, evaluated in order:
//  1. success with an absent payload source reclassifies to error
//     (EmptyPayloadText);
//  2. IsFetching is true iff status is pending;
//  3. ErrorText is the supplied error when terminal, EmptyDataText when a
//     terminal event has no payload source, empty otherwise;
//  4. HasError is true iff ErrorText is non-empty;
//  5. DataKey/IsArrayData/Payload are derived only on terminal, non-error
//     events with a payload source present.
func NewBuilder(id, parentID string, status Status, schema domain.Schema, now func() time.Time) BuildFn {
	if now == nil {
		now = time.Now
	}

	return func(err error, payloadSource, rawResult, response any) Event {
		st := status
		if st == StatusSuccess && isAbsent(payloadSource) {
			st = StatusError
			err = nil
			payloadSource = nil
		}

		ev := Event{
			Time:            now(),
			Type:            id,
			ActionID:        id,
			ParentActionID:  parentID,
			Status:          st,
			IsFetching:      st == StatusPending,
			EntityName:      schema.EntityKey(),
			RawResult:       rawResult,
			BackendResponse: response,
		}

		ev.ErrorText = errorText(ev, err, payloadSource, status)
		ev.HasError = ev.ErrorText != ""

		if ev.IsFetching || ev.HasError || isAbsent(payloadSource) {
			return ev
		}

		ev.PayloadSource = payloadSource

		if isSequence(payloadSource) {
			ev.DataKey = DataKeyItems
			ev.IsArrayData = true
			ids, extractErr := extractIDs(schema, payloadSource)
			if extractErr != nil {
				return extractFailure(ev, extractErr)
			}
			ev.Payload = ids
			return ev
		}

		ev.DataKey = DataKeyItem
		id, extractErr := schema.ExtractID(payloadSource)
		if extractErr != nil {
			return extractFailure(ev, extractErr)
		}
		ev.Payload = id
		return ev
	}
}

// errorText derives rule 3. The originalStatus distinguishes a genuine success
// with data from the reclassified empty-payload case.
func errorText(ev Event, err error, payloadSource any, originalStatus Status) string {
	if ev.IsFetching {
		return ""
	}
	if originalStatus == StatusSuccess && ev.Status == StatusError {
		return EmptyPayloadText
	}
	if err != nil {
		return err.Error()
	}
	if isAbsent(payloadSource) && ev.Status == StatusError {
		return EmptyDataText
	}
	return ""
}

// extractFailure demotes an otherwise-successful event when identifier
// extraction fails. Payload fields are stripped so the invariant that
// hasError events carry no payload still holds.
func extractFailure(ev Event, err error) Event {
	ev.Status = StatusError
	ev.ErrorText = err.Error()
	ev.HasError = true
	ev.DataKey = DataKeyNone
	ev.IsArrayData = false
	ev.Payload = nil
	ev.PayloadSource = nil
	return ev
}

// extractIDs maps each element of a sequence payload through the schema's
// identifier extraction.
func extractIDs(schema domain.Schema, seq any) ([]any, error) {
	v := reflect.ValueOf(seq)
	ids := make([]any, v.Len())
	for i := range v.Len() {
		id, err := schema.ExtractID(v.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// isSequence reports whether v is a slice or array payload. Byte slices are
// treated as scalar blobs, not entity sequences.
func isSequence(v any) bool {
	if _, ok := v.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// isAbsent reports whether v is nil, including typed nil pointers, maps, and
// slices hidden behind a non-nil interface.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
