// Package identity generates action identities from human-readable keys plus
// a process-wide uniqueness token. The token is rolled once per generator, so
// the same key always yields the same identity within a process; distinct
// definitions stay unique because their keys differ.
//
// The generator is an injected dependency rather than ambient global state so
// tests can substitute a deterministic token.
package identity

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces action identities.
type Generator interface {
	// ActionID derives a stable identity for key. Calls with the same key
	// on the same generator return the same identity.
	ActionID(key string) string

	// Fresh derives an identity for key that has never been returned
	// before by this generator, for true copies of existing definitions.
	Fresh(key string) string
}

// tokenLen is the number of leading UUID characters kept as the process token.
const tokenLen = 8

// TokenGenerator is the standard Generator: a random token fixed at
// construction plus an atomic counter for Fresh identities.
type TokenGenerator struct {
	token string
	seq   atomic.Uint64
}

// New creates a TokenGenerator with a random process token.
func New() *TokenGenerator {
	return &TokenGenerator{token: uuid.NewString()[:tokenLen]}
}

// Fixed creates a TokenGenerator with the given token, for deterministic tests.
func Fixed(token string) *TokenGenerator {
	return &TokenGenerator{token: token}
}

// ActionID derives the stable identity for key.
func (g *TokenGenerator) ActionID(key string) string {
	return strings.TrimSpace(key) + "_" + g.token
}

// Fresh derives a never-before-returned identity for key.
func (g *TokenGenerator) Fresh(key string) string {
	return fmt.Sprintf("%s_%s_%d", strings.TrimSpace(key), g.token, g.seq.Add(1))
}

// Shared returns the lazily constructed process-wide generator used when no
// generator is injected.
var Shared = sync.OnceValue(func() Generator { return New() })
