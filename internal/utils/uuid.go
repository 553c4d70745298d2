package utils

import "github.com/google/uuid"

// VaultIDGenerator issues server-side vault ids.
type VaultIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewVaultIDGenerator() *VaultIDGenerator {
	return &VaultIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a time-ordered UUIDv7 so that ids sort by creation.
// A random v4 is used if the v7 source fails.
func (g *VaultIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
