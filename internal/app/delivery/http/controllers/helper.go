package controllers

import (
	"context"
	"doctrack-service/internal/app/delivery/http/middlewares"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

func requireRequestID(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID())
		return "", false
	}
	return requestID, true
}

func requirePrincipal(log *zap.Logger, w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := middlewares.GetPrincipal(r.Context())
	if !ok {
		utils.BuildErrorResponse(log, w, exceptions.ErrPrincipalMissing())
		return models.Principal{}, false
	}
	return principal, true
}

func respondUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
