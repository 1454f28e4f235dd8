// Package ids provides the identifier strategies used for orders, items and
// templates.
package ids

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out fresh identifiers. Implementations must never return
// the same value twice.
type Generator interface {
	New() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

// New returns a new random UUID string.
func (UUID) New() string {
	return uuid.NewString()
}

// Sequence generates deterministic ids from a monotonic counter, e.g.
// "ord-1", "ord-2". The zero value produces bare numbers.
type Sequence struct {
	Prefix string
	n      atomic.Uint64
}

// NewSequence returns a sequence whose ids start with prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// New returns the next id in the sequence.
func (s *Sequence) New() string {
	n := s.n.Add(1)
	if s.Prefix == "" {
		return strconv.FormatUint(n, 10)
	}
	return s.Prefix + "-" + strconv.FormatUint(n, 10)
}

// Strategy names accepted by FromName.
const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// FromName returns the generator for a configured strategy name.
func FromName(name string) (Generator, error) {
	switch name {
	case StrategyUUID, "":
		return UUID{}, nil
	case StrategySequence:
		return NewSequence(""), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", name)
	}
}
