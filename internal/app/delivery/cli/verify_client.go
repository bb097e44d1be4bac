package cli

import (
	"bytes"
	"context"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type verifyEnvelope struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Code    string                  `json:"code"`
	Data    responses.VerifyPayment `json:"data"`
}

// APIClient talks to the running service on behalf of an operator.
type APIClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewAPIClient(baseURL, token string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// VerifyPayment asks the service to reconcile one payment attempt. A 202
// answer means the processor has not settled the reference yet.
func (c *APIClient) VerifyPayment(ctx context.Context, request requests.VerifyPayment) (*responses.VerifyPayment, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/payments/verify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope verifyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode verify response (status %d): %w", resp.StatusCode, err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return &envelope.Data, nil
	default:
		return nil, fmt.Errorf("verify rejected with status %d: %s (%s)", resp.StatusCode, envelope.Message, envelope.Code)
	}
}

// PaymentCheck adapts VerifyPayment to the poller.
func (c *APIClient) PaymentCheck(request requests.VerifyPayment) CheckFunc {
	return func(ctx context.Context) (bool, error) {
		result, err := c.VerifyPayment(ctx, request)
		if err != nil {
			return false, err
		}
		return result.Paid, nil
	}
}
