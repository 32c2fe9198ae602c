package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePickupOTP returns a random 4-digit code the rider shows the
// driver at pickup
func GeneratePickupOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
