package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== RESERVATION CODE ====================

const (
	ReservationCodePrefix = "TIX-"
	reservationCodeLength = 8
	reservationAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateReservationCode returns "TIX-" followed by 8 upper-case alphanumerics
// drawn from crypto/rand.
func GenerateReservationCode() (string, error) {
	buf := make([]byte, reservationCodeLength)
	max := big.NewInt(int64(len(reservationAlphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate reservation code: %w", err)
		}
		buf[i] = reservationAlphabet[n.Int64()]
	}

	return ReservationCodePrefix + string(buf), nil
}
