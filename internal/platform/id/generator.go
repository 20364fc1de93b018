package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for records the service owns, such as sync runs.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time-ordered UUIDv7 values.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}
