package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== CONFIRMATION CODE ====================

// GenerateConfirmationCode creates a booking confirmation code.
// Format: BK<YYMMDDHHMMSS><RANDOM>, e.g. BK2509011430220417
func GenerateConfirmationCode() string {
	now := time.Now()
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))
	return fmt.Sprintf("BK%s%s", now.Format("060102150405"), randomPart)
}
