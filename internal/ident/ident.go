// Package ident generates the identifiers assigned to projects and documents.
package ident

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces fresh unique identifiers.
type Generator interface {
	NewID() (string, error)
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return id.String(), nil
}

// Sequence yields "<prefix>1", "<prefix>2", ... in call order.
// It is safe for concurrent use and intended for deterministic output in tests.
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NewSequence creates a Sequence with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s%d", s.Prefix, s.next), nil
}
