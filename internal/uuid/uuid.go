// uuid id generation behind an interface so tests can pin ids
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces ids that are unique for the lifetime of the process
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// PrefixedGenerator tags ids with a kind prefix, e.g. "token-4f1c…"
type PrefixedGenerator struct {
	prefix string
	next   Generator
}

// NewPrefixedGenerator wraps next so every id starts with prefix and a dash
func NewPrefixedGenerator(prefix string, next Generator) *PrefixedGenerator {
	if next == nil {
		next = NewGoogleUUIDGenerator()
	}
	return &PrefixedGenerator{
		prefix: strings.TrimSuffix(prefix, "-"),
		next:   next,
	}
}

// New generates a prefixed id
func (g *PrefixedGenerator) New() string {
	return g.prefix + "-" + g.next.New()
}
