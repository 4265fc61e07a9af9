// Package domain contains shared domain types for the state-management layer.
// Lifecycle event types live in the domain/lifecycle sub-package. This root
// package holds sentinel errors, validation types, and the entity Schema
// descriptor that maps domain entities to their identifiers.
package domain
