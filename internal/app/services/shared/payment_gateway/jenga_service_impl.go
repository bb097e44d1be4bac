package payment_gateway

import (
	"bytes"
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type jengaService struct {
	BaseUrl                string
	Username               string
	Password               string
	ApiKey                 string
	AccountNumber          string
	MerchantCode           string
	MerchantName           string
	AirlineDestinationName string
	HTTPClient             *http.Client
	Clock                  clock.Clock
	Log                    *zap.Logger
}

func NewJengaService(cfg config.AppJenga, clk clock.Clock, logger *zap.Logger) contracts.PaymentGatewayService {
	timeout := time.Duration(cfg.RequestTimeoutInSecond) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &jengaService{
		BaseUrl:                cfg.BaseUrl,
		Username:               cfg.Username,
		Password:               cfg.Password,
		ApiKey:                 cfg.ApiKey,
		AccountNumber:          cfg.AccountNumber,
		MerchantCode:           cfg.MerchantCode,
		MerchantName:           cfg.MerchantName,
		AirlineDestinationName: cfg.AirlineDestinationName,
		HTTPClient:             &http.Client{Timeout: timeout},
		Clock:                  clk,
		Log:                    logger,
	}
}

func (s *jengaService) IsMockMode() bool {
	return false
}

// Authenticate fetches a fresh bearer token. Tokens are never cached, each
// payment attempt authenticates on its own.
func (s *jengaService) Authenticate(ctx context.Context) (string, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("jengaService.Authenticate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+constvars.JengaPathToken, bytes.NewBufferString("{}"))
	if err != nil {
		return "", exceptions.ErrGatewayAuth(err)
	}
	req.SetBasicAuth(s.Username, s.Password)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrGatewayAuth(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", exceptions.ErrGatewayAuth(gatewayHTTPError(resp))
	}

	token := new(responses.JengaToken)
	if err := json.NewDecoder(resp.Body).Decode(token); err != nil {
		return "", exceptions.ErrGatewayAuth(err)
	}
	if token.AccessToken == "" {
		return "", exceptions.ErrGatewayAuth(fmt.Errorf("token response carries no accessToken"))
	}
	return token.AccessToken, nil
}

func (s *jengaService) Initiate(ctx context.Context, request *requests.GatewayPayment) (*responses.GatewayAcknowledgement, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("jengaService.Initiate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentReferenceKey, request.Reference),
		zap.String(constvars.LoggingPaymentMethodKey, request.Channel),
	)

	token, err := s.Authenticate(ctx)
	if err != nil {
		s.Log.Error("jengaService.Initiate error calling Authenticate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentInitiationAuth(err)
	}

	body, err := json.Marshal(s.buildRemittance(request))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.BaseUrl+constvars.JengaPathRemittance, bytes.NewBuffer(body))
	if err != nil {
		return nil, exceptions.ErrPaymentInitiation(err, request.Channel)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	req.Header.Set(constvars.HeaderSignature, Sign(s.ApiKey, SignatureMessage(s.Username, request.Amount, request.Reference)))
	req.Header.Set(constvars.HeaderAPIKey, s.ApiKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrPaymentInitiation(err, request.Channel)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := gatewayHTTPError(resp)
		s.Log.Error("jengaService.Initiate remittance rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentInitiation(err, request.Channel)
	}

	ack := new(responses.GatewayAcknowledgement)
	if err := json.NewDecoder(resp.Body).Decode(ack); err != nil {
		return nil, exceptions.ErrPaymentInitiation(err, request.Channel)
	}
	ack.Reference = request.Reference
	ack.Message = constvars.PaymentInitiatedSuccess

	s.Log.Info("jengaService.Initiate remittance accepted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentReferenceKey, request.Reference),
		zap.String(constvars.LoggingTransactionIDKey, ack.TransactionID),
	)
	return ack, nil
}

func (s *jengaService) buildRemittance(request *requests.GatewayPayment) requests.JengaRemittance {
	transfer := requests.JengaTransfer{
		Amount:       request.Amount,
		CurrencyCode: constvars.JengaCurrencyCode,
		Reference:    request.Reference,
		Date:         s.Clock.Now().Format(constvars.JengaDateLayout),
	}

	if request.Channel == constvars.PaymentMethodAirline {
		transfer.Type = constvars.JengaTransferAirline
		transfer.Description = fmt.Sprintf("Doctor Appointment Fee - %s", request.PatientName)
		return requests.JengaRemittance{
			Source: requests.JengaParty{
				CountryCode:   constvars.JengaCountryCode,
				Name:          request.PatientName,
				AccountNumber: s.AccountNumber,
			},
			Destination: requests.JengaParty{
				Type:          constvars.JengaDestinationTypeAir,
				CountryCode:   constvars.JengaCountryCode,
				Name:          s.AirlineDestinationName,
				AccountNumber: s.AccountNumber,
			},
			Transfer: transfer,
		}
	}

	transfer.Type = constvars.JengaTransferMerchant
	transfer.Description = fmt.Sprintf("Medical Appointment - %s - %s", request.PatientName, request.AppointmentID)
	return requests.JengaRemittance{
		Source: requests.JengaParty{
			CountryCode:   constvars.JengaCountryCode,
			Name:          request.PatientName,
			AccountNumber: s.AccountNumber,
		},
		Destination: requests.JengaParty{
			Type:          constvars.JengaDestinationTypeMer,
			CountryCode:   constvars.JengaCountryCode,
			Name:          s.MerchantName,
			MobileNumber:  request.PatientPhone,
			AccountNumber: s.AccountNumber,
			MerchantCode:  s.MerchantCode,
		},
		Transfer: transfer,
	}
}

func (s *jengaService) CheckStatus(ctx context.Context, reference string) (*responses.GatewayTransactionStatus, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("jengaService.CheckStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentReferenceKey, reference),
	)

	token, err := s.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s%s/%s", s.BaseUrl, constvars.JengaPathRemittance, url.PathEscape(reference))
	status := new(responses.GatewayTransactionStatus)
	if err := s.getJSON(ctx, endpoint, token, status); err != nil {
		return nil, exceptions.ErrGatewayStatus(err)
	}
	if status.Reference == "" {
		status.Reference = reference
	}
	return status, nil
}

func (s *jengaService) GetAccountBalance(ctx context.Context) (map[string]interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("jengaService.GetAccountBalance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := s.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s%s/%s/%s", s.BaseUrl, constvars.JengaPathBalance, constvars.JengaCountryCode, url.PathEscape(s.AccountNumber))
	balance := make(map[string]interface{})
	if err := s.getJSON(ctx, endpoint, token, &balance); err != nil {
		return nil, exceptions.ErrGatewayStatus(err)
	}
	return balance, nil
}

func (s *jengaService) getJSON(ctx context.Context, endpoint, token string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	req.Header.Set(constvars.HeaderAPIKey, s.ApiKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gatewayHTTPError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// gatewayHTTPError turns a non-2xx processor answer into an error carrying
// the processor's own message when it sent one.
func gatewayHTTPError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	processorError := new(responses.JengaError)
	if err := json.Unmarshal(raw, processorError); err == nil && processorError.Message != "" {
		return fmt.Errorf(constvars.ErrDevGatewayUnexpectedStatus+": %s", resp.StatusCode, processorError.Message)
	}
	return fmt.Errorf(constvars.ErrDevGatewayUnexpectedStatus, resp.StatusCode)
}
