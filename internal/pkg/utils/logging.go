package utils

import (
	"context"
	"time"

	"doctrack-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func eventFields(requestID, kindKey, event string, extra []zap.Field) []zap.Field {
	fields := make([]zap.Field, 0, len(extra)+3)
	fields = append(fields,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(kindKey, event),
		zap.Time("timestamp", time.Now()),
	)
	return append(fields, extra...)
}

// LogBusinessEvent records a state change worth auditing: a booking, a
// cancellation, a settled payment.
func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	logger.Info("Business event occurred", eventFields(requestID, "business_event", event, fields)...)
}

func LogSecurityEvent(logger *zap.Logger, event string, requestID string, severity string, fields ...zap.Field) {
	all := eventFields(requestID, "security_event", event, fields)
	logger.Warn("Security event detected", append(all, zap.String("severity", severity))...)
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
