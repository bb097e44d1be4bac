package payment_gateway

import (
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// IsJengaConfigured reports whether every credential needed for live calls is set.
func IsJengaConfigured(cfg config.AppJenga) bool {
	return cfg.BaseUrl != "" &&
		cfg.Username != "" &&
		cfg.Password != "" &&
		cfg.ApiKey != "" &&
		cfg.AccountNumber != ""
}

// NewPaymentGateway picks the live Jenga client or the mock once, at startup.
func NewPaymentGateway(internalConfig *config.InternalConfig, clk clock.Clock, logger *zap.Logger) contracts.PaymentGatewayService {
	if IsJengaConfigured(internalConfig.Jenga) {
		logger.Info("Payment gateway running against Jenga",
			zap.Bool(constvars.LoggingMockModeKey, false),
		)
		return NewJengaService(internalConfig.Jenga, clk, logger)
	}

	delay := time.Duration(internalConfig.Payment.MockCompletionDelayInSeconds) * time.Second
	logger.Warn("Jenga credentials incomplete, payment gateway running in mock mode",
		zap.Bool(constvars.LoggingMockModeKey, true),
		zap.Duration(constvars.LoggingDelayKey, delay),
	)
	return NewMockService(clk, delay, logger)
}
