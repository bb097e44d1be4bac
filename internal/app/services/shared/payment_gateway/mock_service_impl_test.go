package payment_gateway

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/pkg/dto/requests"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Old settled references are forgotten", func(t *testing.T) {
		mockClock := clock.NewMock()
		service := NewMockService(mockClock, 3*time.Second, zap.NewNop()).(*mockService)

		_, err := service.Initiate(ctx, &requests.GatewayPayment{Reference: "APTOLD00001", Amount: 100})
		require.NoError(t, err)

		mockClock.Add(30 * time.Minute)
		_, err = service.Initiate(ctx, &requests.GatewayPayment{Reference: "APTNEW00001", Amount: 100})
		require.NoError(t, err)
		assert.Len(t, service.transactions, 2)

		mockClock.Add(time.Hour)
		status, err := service.CheckStatus(ctx, "APTNEW00001")
		require.NoError(t, err)
		assert.Equal(t, "SUCCESS", status.Status)
		assert.Len(t, service.transactions, 1)

		status, _ = service.CheckStatus(ctx, "APTOLD00001")
		assert.Equal(t, "PENDING", status.Status)
		assert.Empty(t, status.TransactionID)
	})

	t.Run("Reference settles only after the deferred window", func(t *testing.T) {
		mockClock := clock.NewMock()
		service := NewMockService(mockClock, 3*time.Second, zap.NewNop())
		assert.True(t, service.IsMockMode())

		ack, err := service.Initiate(ctx, &requests.GatewayPayment{Reference: "APT12345678", Amount: 1500})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ack.TransactionID, "MOCK-"))

		status, err := service.CheckStatus(ctx, "APT12345678")
		require.NoError(t, err)
		assert.Equal(t, "PENDING", status.Status)

		mockClock.Add(2999 * time.Millisecond)
		status, _ = service.CheckStatus(ctx, "APT12345678")
		assert.Equal(t, "PENDING", status.Status)

		mockClock.Add(time.Millisecond)
		status, _ = service.CheckStatus(ctx, "APT12345678")
		assert.Equal(t, "SUCCESS", status.Status)
		assert.Equal(t, ack.TransactionID, status.TransactionID)
	})

	t.Run("Unknown references stay pending", func(t *testing.T) {
		service := NewMockService(clock.NewMock(), time.Second, zap.NewNop())

		status, err := service.CheckStatus(ctx, "APT00000000")
		require.NoError(t, err)
		assert.Equal(t, "PENDING", status.Status)
		assert.Empty(t, status.TransactionID)
	})
}

func TestNewPaymentGateway(t *testing.T) {
	complete := config.AppJenga{
		BaseUrl:       "https://uat.finserve.africa",
		Username:      "merchant-user",
		Password:      "secret",
		ApiKey:        "api-key",
		AccountNumber: "0011547896523",
	}

	t.Run("Complete credentials select the live client", func(t *testing.T) {
		gateway := NewPaymentGateway(&config.InternalConfig{Jenga: complete}, clock.NewMock(), zap.NewNop())
		assert.False(t, gateway.IsMockMode())
	})

	t.Run("Any missing credential selects mock mode", func(t *testing.T) {
		for _, blank := range []func(*config.AppJenga){
			func(c *config.AppJenga) { c.BaseUrl = "" },
			func(c *config.AppJenga) { c.Username = "" },
			func(c *config.AppJenga) { c.Password = "" },
			func(c *config.AppJenga) { c.ApiKey = "" },
			func(c *config.AppJenga) { c.AccountNumber = "" },
		} {
			cfg := complete
			blank(&cfg)
			gateway := NewPaymentGateway(&config.InternalConfig{Jenga: cfg}, clock.NewMock(), zap.NewNop())
			assert.True(t, gateway.IsMockMode())
		}
	})
}
