package payment_gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	t.Run("Canonical message concatenates username amount and reference", func(t *testing.T) {
		assert.Equal(t, "merchant-user1500APT12345678", SignatureMessage("merchant-user", 1500, "APT12345678"))
		assert.Equal(t, "merchant-user1500.5APT12345678", SignatureMessage("merchant-user", 1500.5, "APT12345678"))
	})

	t.Run("Known digests", func(t *testing.T) {
		assert.Equal(t, "Foz8kEXbJpOKYjI28bsmePVHcWCZ65RDErTHlX4ckSQ=", Sign("api-key", "merchant-user1500APT12345678"))
		assert.Equal(t, "S1hN20u4+MWgz2CAGFMcwG4D+f3PLdEMympuJZZ5x1E=", Sign("api-key", "merchant-user1500.5APT12345678"))
	})

	t.Run("Retries with the same inputs sign identically", func(t *testing.T) {
		message := SignatureMessage("merchant-user", 2500, "APT87654321")
		assert.Equal(t, Sign("api-key", message), Sign("api-key", message))
		assert.NotEqual(t, Sign("api-key", message), Sign("other-key", message))
	})
}
