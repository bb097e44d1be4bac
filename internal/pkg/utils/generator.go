package utils

import (
	"doctrack-service/internal/pkg/constvars"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateLockValue() string {
	return uuid.New().String()
}

func GenerateMockTransactionID() string {
	return constvars.MockTransactionPrefix + uuid.New().String()
}

// GeneratePaymentReference mints APT + last 8 chars of the appointment id +
// last 6 digits of the millisecond timestamp.
func GeneratePaymentReference(appointmentID string, now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return constvars.PaymentReferencePrefix + lastN(appointmentID, 8) + lastN(millis, 6)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func GenerateSessionJWT(principalID, role, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  principalID,
		"role": role,
		"exp":  time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
