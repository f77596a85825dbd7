package crypto

import "github.com/google/uuid"

type IDGenerator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time-ordered v7 UUIDs so new users land at the end of
// the primary key index.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (*UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
