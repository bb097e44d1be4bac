package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBACPolicy(t *testing.T) {
	enforcer, err := newEnforcer(rbacModel, rbacPolicy)
	require.NoError(t, err)

	t.Run("Public routes are open to every role", func(t *testing.T) {
		for _, role := range []string{"patient", "doctor", "admin", "anonymous"} {
			allowed, err := enforcer.Enforce(role, "GET", "/doctors/doc-1/slots")
			assert.NoError(t, err)
			assert.True(t, allowed, "%s should read doctor slots", role)

			allowed, err = enforcer.Enforce(role, "POST", "/payments/webhook/jenga")
			assert.NoError(t, err)
			assert.True(t, allowed, "%s should reach the webhook", role)
		}
	})

	t.Run("Patient Role Specific Use Cases", func(t *testing.T) {
		allowed, err := enforcer.Enforce("patient", "POST", "/appointments/apt-1/cancel")
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = enforcer.Enforce("patient", "POST", "/payments/initiate")
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = enforcer.Enforce("patient", "POST", "/doctor/appointments/apt-1/complete")
		assert.NoError(t, err)
		assert.False(t, allowed, "patient must not complete appointments")

		allowed, err = enforcer.Enforce("patient", "GET", "/admin/dashboard")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("Doctor Role Specific Use Cases", func(t *testing.T) {
		allowed, err := enforcer.Enforce("doctor", "POST", "/doctor/appointments/apt-1/complete")
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = enforcer.Enforce("doctor", "POST", "/appointments")
		assert.NoError(t, err)
		assert.False(t, allowed, "doctor must not book as a patient")
	})

	t.Run("Admin Role Specific Use Cases", func(t *testing.T) {
		allowed, err := enforcer.Enforce("admin", "POST", "/admin/doctors/doc-1/availability")
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = enforcer.Enforce("admin", "GET", "/appointments/apt-1/receipt")
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = enforcer.Enforce("admin", "POST", "/payments/initiate")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
