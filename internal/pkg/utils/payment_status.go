package utils

import (
	"doctrack-service/internal/pkg/constvars"
	"strings"
)

// IsSettledPaymentStatus reports whether any of the processor statuses means
// the money moved. Matching is case-insensitive.
func IsSettledPaymentStatus(statuses ...string) bool {
	for _, status := range statuses {
		switch strings.ToUpper(strings.TrimSpace(status)) {
		case constvars.JengaStatusSuccess, constvars.JengaStatusCompleted, constvars.JengaStatusPaid:
			return true
		}
	}
	return false
}

func IsFailedPaymentStatus(statuses ...string) bool {
	for _, status := range statuses {
		switch strings.ToUpper(strings.TrimSpace(status)) {
		case constvars.JengaStatusFailed, constvars.JengaStatusDeclined, constvars.JengaStatusReversed:
			return true
		}
	}
	return false
}

func IsPendingPaymentStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), constvars.JengaStatusPending)
}
