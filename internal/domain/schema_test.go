package domain

import (
	"errors"
	"testing"
)

func TestNewSchema_BlankKey(t *testing.T) {
	t.Parallel()
	_, err := NewSchema("  ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation for blank key, got %v", err)
	}
}

func TestEntitySchema_DefaultExtract(t *testing.T) {
	t.Parallel()

	type widget struct {
		ID   int64
		Name string
	}
	type lowered struct {
		Id string
	}

	s, err := NewSchema("widgets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		item    any
		want    any
		wantErr bool
	}{
		{name: "struct ID field", item: widget{ID: 42}, want: int64(42)},
		{name: "struct Id field", item: lowered{Id: "w-1"}, want: "w-1"},
		{name: "pointer to struct", item: &widget{ID: 7}, want: int64(7)},
		{name: "map id key", item: map[string]any{"id": 3}, want: 3},
		{name: "map ID key", item: map[string]any{"ID": "x"}, want: "x"},
		{name: "nil item", item: nil, wantErr: true},
		{name: "nil pointer", item: (*widget)(nil), wantErr: true},
		{name: "no id field", item: struct{ Name string }{"n"}, wantErr: true},
		{name: "non-string map keys", item: map[int]any{1: "x"}, wantErr: true},
		{name: "scalar", item: 12, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := s.ExtractID(tt.item)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got id %v", got)
				}
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("want ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("id = %v (%T), want %v", got, got, tt.want)
			}
		})
	}
}

func TestEntitySchema_CustomExtract(t *testing.T) {
	t.Parallel()
	s, err := NewSchema("users", WithExtract(func(item any) (any, error) {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, errors.New("not a map")
		}
		return m["email"], nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.ExtractID(map[string]any{"email": "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a@b.c" {
		t.Fatalf("id = %v, want custom extractor result", got)
	}
	if s.EntityKey() != "users" {
		t.Fatalf("entity key = %q", s.EntityKey())
	}
}

func TestMustSchema_PanicsOnInvalid(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("MustSchema must panic on blank key")
		}
	}()
	MustSchema("")
}
