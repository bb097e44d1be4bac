package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentReference(t *testing.T) {
	now := time.UnixMilli(1746871234567)

	t.Run("Uses the appointment suffix and timestamp suffix", func(t *testing.T) {
		reference := GeneratePaymentReference("6650f1c2a9e4b7d312345678", now)
		assert.Equal(t, "APT12345678234567", reference)
	})

	t.Run("Short appointment ids are used whole", func(t *testing.T) {
		reference := GeneratePaymentReference("abc", now)
		assert.Equal(t, "APTabc234567", reference)
	})

	t.Run("Same inputs mint the same reference", func(t *testing.T) {
		assert.Equal(t,
			GeneratePaymentReference("6650f1c2a9e4b7d312345678", now),
			GeneratePaymentReference("6650f1c2a9e4b7d312345678", now),
		)
	})

	t.Run("Later attempts mint a different reference", func(t *testing.T) {
		first := GeneratePaymentReference("6650f1c2a9e4b7d312345678", now)
		second := GeneratePaymentReference("6650f1c2a9e4b7d312345678", now.Add(time.Millisecond))
		assert.NotEqual(t, first, second)
	})
}

func TestGenerateMockTransactionID(t *testing.T) {
	id := GenerateMockTransactionID()
	assert.True(t, strings.HasPrefix(id, "MOCK-"))
	assert.NotEqual(t, id, GenerateMockTransactionID())
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("patient-1", "patient", "secret", 1)
	require.NoError(t, err)

	subject, role, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "patient-1", subject)
	assert.Equal(t, "patient", role)

	_, _, err = ParseJWT(token, "other-secret")
	assert.Error(t, err, "token signed with another secret must be rejected")

	_, _, err = ParseJWT("not-a-token", "secret")
	assert.Error(t, err)
}
