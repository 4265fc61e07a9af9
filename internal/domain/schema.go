package domain

import (
	"fmt"
	"reflect"
	"strings"
)

// Schema describes how a domain entity type maps into the normalized entity
// cache: the cache key it lives under and how to extract an identifier from
// a single entity instance.
//
// Schema is bound to an action definition at construction time and is
// immutable for the definition's lifetime.
type Schema interface {
	// EntityKey returns the entity cache key (e.g. "articles").
	EntityKey() string

	// ExtractID extracts the identifier from a single entity instance.
	ExtractID(item any) (any, error)
}

// ExtractFunc extracts an identifier from one entity instance.
type ExtractFunc func(item any) (any, error)

// EntitySchema is the standard Schema implementation. By default it reads an
// "ID"/"Id" struct field or an "id" map key via reflection; a custom extractor
// can be supplied for entities that identify themselves differently.
type EntitySchema struct {
	key     string
	extract ExtractFunc
}

// SchemaOption configures NewSchema.
type SchemaOption func(*EntitySchema)

// WithExtract overrides the default reflective identifier extraction.
func WithExtract(fn ExtractFunc) SchemaOption {
	return func(s *EntitySchema) {
		s.extract = fn
	}
}

// NewSchema creates an EntitySchema for the given entity cache key.
// Returns ErrValidation (wrapped) if key is blank.
func NewSchema(key string, opts ...SchemaOption) (*EntitySchema, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: schema entity key %s", ErrValidation, MsgRequired)
	}

	s := &EntitySchema{key: key, extract: defaultExtract}
	for _, opt := range opts {
		opt(s)
	}
	if s.extract == nil {
		s.extract = defaultExtract
	}
	return s, nil
}

// MustSchema is NewSchema for static initialization; panics on invalid input.
func MustSchema(key string, opts ...SchemaOption) *EntitySchema {
	s, err := NewSchema(key, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// EntityKey returns the entity cache key.
func (s *EntitySchema) EntityKey() string { return s.key }

// ExtractID extracts the identifier from item using the configured extractor.
func (s *EntitySchema) ExtractID(item any) (any, error) {
	return s.extract(item)
}

// defaultExtract reads the identifier from an "ID"/"Id" struct field or an
// "id" map key. Pointers are dereferenced first.
func defaultExtract(item any) (any, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: cannot extract id from nil entity", ErrValidation)
	}

	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: cannot extract id from nil entity", ErrValidation)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		for _, name := range [...]string{"ID", "Id"} {
			if f := v.FieldByName(name); f.IsValid() {
				return f.Interface(), nil
			}
		}
		return nil, fmt.Errorf("%w: entity type %T has no ID field", ErrValidation, item)

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: entity map has non-string keys", ErrValidation)
		}
		for _, key := range [...]string{"id", "ID"} {
			mv := v.MapIndex(reflect.ValueOf(key))
			if mv.IsValid() {
				return mv.Interface(), nil
			}
		}
		return nil, fmt.Errorf("%w: entity map has no id key", ErrValidation)

	default:
		return nil, fmt.Errorf("%w: cannot extract id from %T", ErrValidation, item)
	}
}
