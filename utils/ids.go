package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.New().String()
}

// GenerateDigitalID returns the human-readable tourist code, DT plus six
// digits. Uniqueness is not guaranteed by construction; collisions are
// astronomically unlikely at the fleet sizes involved.
func GenerateDigitalID() string {
	return fmt.Sprintf("DT%06d", rand.Intn(900000)+100000)
}

// GenerateIntegrityHash produces the opaque fixed-length digest stamped on a
// tourist profile at creation.
func GenerateIntegrityHash() string {
	sum := sha256.Sum256([]byte(uuid.New().String()))
	return hex.EncodeToString(sum[:])
}
