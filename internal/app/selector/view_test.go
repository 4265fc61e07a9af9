package selector

import (
	"reflect"
	"testing"
	"time"

	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
)

type part struct {
	ID   string
	Name string
}

func stateWith(actions map[string]lifecycle.ActionState, entities map[string]map[string]any) lifecycle.State {
	return lifecycle.State{Actions: actions, Entities: entities}
}

func TestViewOf(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	state := stateWith(map[string]lifecycle.ActionState{
		"load parts_t": {Latest: lifecycle.Event{
			ActionID:    "load parts_t",
			Status:      lifecycle.StatusError,
			Time:        at,
			HasError:    true,
			ErrorText:   "network down",
			IsArrayData: true,
			EntityName:  "parts",
		}},
	}, nil)

	view := ViewOf(state, "load parts_t")
	want := ActionView{
		Status:      string(lifecycle.StatusError),
		Time:        at,
		HasError:    true,
		ErrorText:   "network down",
		IsArrayData: true,
		EntityName:  "parts",
	}
	if view != want {
		t.Fatalf("view = %+v, want %+v", view, want)
	}
}

func TestViewOf_UnknownActionIsZero(t *testing.T) {
	t.Parallel()

	view := ViewOf(lifecycle.State{}, "never dispatched")
	if view != (ActionView{}) {
		t.Fatalf("view = %+v, want the zero view", view)
	}
}

func TestDenormalize(t *testing.T) {
	t.Parallel()

	entities := map[string]map[string]any{
		"parts": {
			"p1": part{ID: "p1", Name: "bolt"},
			"p2": part{ID: "p2", Name: "nut"},
		},
	}

	tests := []struct {
		name     string
		payload  any
		want     any
		wantOK   bool
	}{
		{
			name:    "list resolves in payload order",
			payload: []any{"p2", "p1"},
			want:    []any{part{ID: "p2", Name: "nut"}, part{ID: "p1", Name: "bolt"}},
			wantOK:  true,
		},
		{
			name:    "list skips identifiers missing from the cache",
			payload: []any{"p1", "gone"},
			want:    []any{part{ID: "p1", Name: "bolt"}},
			wantOK:  true,
		},
		{
			name:    "scalar resolves to the single entity",
			payload: "p1",
			want:    part{ID: "p1", Name: "bolt"},
			wantOK:  true,
		},
		{
			name:    "scalar missing from the cache",
			payload: "gone",
			wantOK:  false,
		},
		{
			name:   "no payload",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := stateWith(map[string]lifecycle.ActionState{
				"load parts_t": {Latest: lifecycle.Event{
					EntityName: "parts",
					Payload:    tt.payload,
				}},
			}, entities)

			got, ok := Denormalize(state, "load parts_t")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDenormalizePrev(t *testing.T) {
	t.Parallel()

	state := stateWith(map[string]lifecycle.ActionState{
		"load part_t": {
			Latest:      lifecycle.Event{EntityName: "parts", IsFetching: true},
			PrevPayload: "p1",
		},
	}, map[string]map[string]any{
		"parts": {"p1": part{ID: "p1", Name: "bolt"}},
	})

	got, ok := DenormalizePrev(state, "load part_t")
	if !ok {
		t.Fatal("previous payload must resolve while a refresh is in flight")
	}
	if got.(part).Name != "bolt" {
		t.Fatalf("got %#v", got)
	}

	if _, ok := Denormalize(state, "load part_t"); ok {
		t.Fatal("latest payload is absent and must not resolve")
	}
}

func TestDenormalize_UnknownAction(t *testing.T) {
	t.Parallel()

	if _, ok := Denormalize(lifecycle.State{}, "missing"); ok {
		t.Fatal("unknown action must not resolve")
	}
}
