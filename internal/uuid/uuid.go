// Package uuid wraps ID generation so stores can be tested with fixed IDs
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator hands out "<prefix>-1", "<prefix>-2", ... for readable fixtures
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceGenerator creates a SequenceGenerator with the given prefix
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next ID in the sequence
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

// IsValid reports whether id parses as a UUID
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
