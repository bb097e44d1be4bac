package controllers

import (
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/utils"
	"net/http"
	"sync"
)

type HealthController struct {
	PaymentGateway contracts.PaymentGatewayService
	InternalConfig *config.InternalConfig
}

var (
	healthControllerInstance *HealthController
	onceHealthController     sync.Once
)

func NewHealthController(paymentGateway contracts.PaymentGatewayService, internalConfig *config.InternalConfig) *HealthController {
	onceHealthController.Do(func() {
		healthControllerInstance = &HealthController{
			PaymentGateway: paymentGateway,
			InternalConfig: internalConfig,
		}
	})
	return healthControllerInstance
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccess, map[string]interface{}{
		"version":    ctrl.InternalConfig.App.Version,
		"isMockMode": ctrl.PaymentGateway.IsMockMode(),
	})
}
