package routers

import (
	"bytes"
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/delivery/http/controllers"
	"doctrack-service/internal/app/delivery/http/middlewares"
	"doctrack-service/internal/app/drivers/rbac"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret       = "router-test-secret"
	testWebhookToken = "hook-token"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) Book(ctx context.Context, principal models.Principal, request *requests.BookAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, principal, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, principal models.Principal, appointmentID string) error {
	args := m.Called(ctx, principal, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) Complete(ctx context.Context, principal models.Principal, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, principal, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) ListForPatient(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, patientID)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentUsecase) ListForDoctor(ctx context.Context, doctorID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, doctorID)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentUsecase) ListAll(ctx context.Context) ([]responses.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentUsecase) DoctorDashboard(ctx context.Context, doctorID string) (*responses.DoctorDashboard, error) {
	args := m.Called(ctx, doctorID)
	dashboard, _ := args.Get(0).(*responses.DoctorDashboard)
	return dashboard, args.Error(1)
}

func (m *MockAppointmentUsecase) AdminDashboard(ctx context.Context) (*responses.AdminDashboard, error) {
	args := m.Called(ctx)
	dashboard, _ := args.Get(0).(*responses.AdminDashboard)
	return dashboard, args.Error(1)
}

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) Reserve(ctx context.Context, doctorID, slotDate, slotTime string) error {
	return m.Called(ctx, doctorID, slotDate, slotTime).Error(0)
}

func (m *MockSlotUsecase) Release(ctx context.Context, doctorID, slotDate, slotTime string) error {
	return m.Called(ctx, doctorID, slotDate, slotTime).Error(0)
}

func (m *MockSlotUsecase) GetDoctorSlots(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockSlotUsecase) ChangeAvailability(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) Initiate(ctx context.Context, principal models.Principal, request *requests.InitiatePayment) (*responses.InitiatePayment, error) {
	args := m.Called(ctx, principal, request)
	result, _ := args.Get(0).(*responses.InitiatePayment)
	return result, args.Error(1)
}

func (m *MockPaymentUsecase) Verify(ctx context.Context, principal models.Principal, request *requests.VerifyPayment) (*responses.VerifyPayment, error) {
	args := m.Called(ctx, principal, request)
	result, _ := args.Get(0).(*responses.VerifyPayment)
	return result, args.Error(1)
}

func (m *MockPaymentUsecase) HandleJengaWebhook(ctx context.Context, request *requests.JengaWebhook) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type MockReceiptUsecase struct {
	mock.Mock
}

func (m *MockReceiptUsecase) GetReceipt(ctx context.Context, principal models.Principal, appointmentID string) (*responses.Receipt, error) {
	args := m.Called(ctx, principal, appointmentID)
	receipt, _ := args.Get(0).(*responses.Receipt)
	return receipt, args.Error(1)
}

type stubGateway struct {
	mockMode bool
}

func (g stubGateway) IsMockMode() bool { return g.mockMode }
func (stubGateway) Authenticate(ctx context.Context) (string, error) {
	return "", nil
}
func (stubGateway) Initiate(ctx context.Context, request *requests.GatewayPayment) (*responses.GatewayAcknowledgement, error) {
	return nil, errors.New("not used")
}
func (stubGateway) CheckStatus(ctx context.Context, reference string) (*responses.GatewayTransactionStatus, error) {
	return nil, errors.New("not used")
}
func (stubGateway) GetAccountBalance(ctx context.Context) (map[string]interface{}, error) {
	return nil, errors.New("not used")
}

type routerFixture struct {
	router       *chi.Mux
	appointments *MockAppointmentUsecase
	slots        *MockSlotUsecase
	payments     *MockPaymentUsecase
	receipts     *MockReceiptUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "/api",
			CORSAllowedOrigins:         []string{"*"},
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestBodyLimitInMegabyte: 1,
			RequestTimeoutInSeconds:    5,
		},
		JWT:     config.AppJWT{Secret: testSecret},
		Webhook: config.AppWebhook{JengaToken: testWebhookToken, MaxRequests: 1000, MaxTimeRequestsPerSeconds: 1},
	}

	fixture := &routerFixture{
		router:       chi.NewRouter(),
		appointments: new(MockAppointmentUsecase),
		slots:        new(MockSlotUsecase),
		payments:     new(MockPaymentUsecase),
		receipts:     new(MockReceiptUsecase),
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, rbac.NewEnforcer(), internalConfig)
	SetupRoutes(fixture.router, internalConfig, middlewareInstance, Controllers{
		Health:      &controllers.HealthController{PaymentGateway: stubGateway{mockMode: true}, InternalConfig: internalConfig},
		Doctor:      &controllers.DoctorController{Log: logger, SlotUsecase: fixture.slots, InternalConfig: internalConfig},
		Appointment: &controllers.AppointmentController{Log: logger, AppointmentUsecase: fixture.appointments, InternalConfig: internalConfig},
		Payment:     &controllers.PaymentController{Log: logger, PaymentUsecase: fixture.payments, InternalConfig: internalConfig},
		Webhook:     &controllers.WebhookController{Log: logger, PaymentUsecase: fixture.payments, InternalConfig: internalConfig},
		Receipt:     &controllers.ReceiptController{Log: logger, ReceiptUsecase: fixture.receipts, InternalConfig: internalConfig},
	})
	return fixture
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			payload.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&payload).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func sessionToken(t *testing.T, principalID, role string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(principalID, role, testSecret, 1)
	require.NoError(t, err)
	return token
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRootPath(t *testing.T) {
	assert.Equal(t, "/api/v1", RootPath(&config.InternalConfig{App: config.App{EndpointPrefix: "/api", Version: "v1"}}))
	assert.Equal(t, "/api/v1", RootPath(&config.InternalConfig{App: config.App{EndpointPrefix: "api/", Version: "/v1"}}))
}

func TestHealthRoute(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.do(t, http.MethodGet, "/api/v1/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	data := decodeEnvelope(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, true, data["isMockMode"])
}

func TestDoctorSlotsArePublic(t *testing.T) {
	f := newRouterFixture(t)
	f.slots.On("GetDoctorSlots", mock.Anything, "D1").Return(&models.Doctor{
		ID:          "D1",
		Available:   true,
		Fees:        1500,
		SlotsBooked: map[string][]string{"15_3_2025": {"10:00 AM"}},
	}, nil)

	rr := f.do(t, http.MethodGet, "/api/v1/doctors/D1/slots", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeEnvelope(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, "D1", data["docId"])
	f.slots.AssertExpectations(t)
}

func TestBookAppointmentRoute(t *testing.T) {
	f := newRouterFixture(t)
	patient := models.Principal{ID: "P1", Role: constvars.RolePatient}
	body := requests.BookAppointment{DoctorID: "D1", SlotDate: "15_3_2025", SlotTime: "10:00 AM"}

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/api/v1/appointments", "", body)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("doctor role is forbidden", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/api/v1/appointments", sessionToken(t, "D1", constvars.RoleDoctor), body)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid slot never reaches the usecase", func(t *testing.T) {
		invalid := requests.BookAppointment{DoctorID: "D1", SlotDate: "2025-03-15", SlotTime: "10:00 AM"}
		rr := f.do(t, http.MethodPost, "/api/v1/appointments", sessionToken(t, "P1", constvars.RolePatient), invalid)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.appointments.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("patient books", func(t *testing.T) {
		f.appointments.On("Book", mock.Anything, patient, &body).
			Return(&responses.Appointment{ID: "A1", DoctorID: "D1", PatientID: "P1"}, nil).Once()

		rr := f.do(t, http.MethodPost, "/api/v1/appointments", sessionToken(t, "P1", constvars.RolePatient), body)

		assert.Equal(t, http.StatusCreated, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.Equal(t, constvars.AppointmentBookedSuccess, envelope["message"])
	})

	t.Run("slot conflict maps to 409", func(t *testing.T) {
		f.appointments.On("Book", mock.Anything, patient, &body).
			Return(nil, exceptions.ErrSlotTaken("D1", body.SlotDate, body.SlotTime)).Once()

		rr := f.do(t, http.MethodPost, "/api/v1/appointments", sessionToken(t, "P1", constvars.RolePatient), body)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, constvars.ErrCodeSlotTaken, decodeEnvelope(t, rr)["code"])
	})
}

func TestCancelRoutesPerRole(t *testing.T) {
	f := newRouterFixture(t)
	admin := models.Principal{ID: "ADM", Role: constvars.RoleAdmin}
	doctor := models.Principal{ID: "D1", Role: constvars.RoleDoctor}
	f.appointments.On("Cancel", mock.Anything, admin, "A1").Return(nil).Once()
	f.appointments.On("Cancel", mock.Anything, doctor, "A1").Return(exceptions.ErrNotOwner("D1", "A1")).Once()

	rr := f.do(t, http.MethodPost, "/api/v1/admin/appointments/A1/cancel", sessionToken(t, "ADM", constvars.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(t, http.MethodPost, "/api/v1/doctor/appointments/A1/cancel", sessionToken(t, "D1", constvars.RoleDoctor), nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = f.do(t, http.MethodPost, "/api/v1/admin/appointments/A1/cancel", sessionToken(t, "P1", constvars.RolePatient), nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	f.appointments.AssertExpectations(t)
}

func TestAdminChangeAvailabilityRoute(t *testing.T) {
	f := newRouterFixture(t)
	f.slots.On("ChangeAvailability", mock.Anything, "D1").Return(&models.Doctor{ID: "D1", Available: false}, nil)

	rr := f.do(t, http.MethodPost, "/api/v1/admin/doctors/D1/availability", sessionToken(t, "ADM", constvars.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeEnvelope(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, false, data["available"])
}

func TestVerifyPaymentStatusCodes(t *testing.T) {
	f := newRouterFixture(t)
	patient := models.Principal{ID: "P1", Role: constvars.RolePatient}
	pending := requests.VerifyPayment{AppointmentID: "A1", PaymentReference: "REF-PENDING"}
	paid := requests.VerifyPayment{AppointmentID: "A1", PaymentReference: "REF-PAID"}
	f.payments.On("Verify", mock.Anything, patient, &pending).
		Return(&responses.VerifyPayment{AppointmentID: "A1", Paid: false, PaymentStatus: "pending"}, nil)
	f.payments.On("Verify", mock.Anything, patient, &paid).
		Return(&responses.VerifyPayment{AppointmentID: "A1", Paid: true, PaymentStatus: "paid"}, nil)

	token := sessionToken(t, "P1", constvars.RolePatient)

	rr := f.do(t, http.MethodPost, "/api/v1/payments/verify", token, pending)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, constvars.PaymentPendingMessage, decodeEnvelope(t, rr)["message"])

	rr = f.do(t, http.MethodPost, "/api/v1/payments/verify", token, paid)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.PaymentVerifiedSuccess, decodeEnvelope(t, rr)["message"])
}

func TestJengaWebhookRoute(t *testing.T) {
	path := "/api/v1/payments/webhook/jenga"
	notification := requests.JengaWebhook{Reference: "REF1", TransactionStatus: "SUCCESS", TransactionID: "T1"}

	send := func(f *routerFixture, token string, body interface{}) *httptest.ResponseRecorder {
		var payload bytes.Buffer
		if s, ok := body.(string); ok {
			payload.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&payload).Encode(body))
		}
		req := httptest.NewRequest(http.MethodPost, path, &payload)
		if token != "" {
			req.Header.Set(constvars.HeaderWebhookToken, token)
		}
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("wrong token", func(t *testing.T) {
		f := newRouterFixture(t)
		rr := send(f, "nope", notification)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		f.payments.AssertNotCalled(t, "HandleJengaWebhook", mock.Anything, mock.Anything)
	})

	t.Run("processed notification is acknowledged", func(t *testing.T) {
		f := newRouterFixture(t)
		f.payments.On("HandleJengaWebhook", mock.Anything, &notification).Return("applied", nil).Once()

		rr := send(f, testWebhookToken, notification)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.WebhookProcessedSuccess, decodeEnvelope(t, rr)["status"])
		f.payments.AssertExpectations(t)
	})

	t.Run("malformed payload is acknowledged and ignored", func(t *testing.T) {
		f := newRouterFixture(t)
		rr := send(f, testWebhookToken, "{not json")
		assert.Equal(t, http.StatusOK, rr.Code)
		f.payments.AssertNotCalled(t, "HandleJengaWebhook", mock.Anything, mock.Anything)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		f := newRouterFixture(t)
		f.payments.On("HandleJengaWebhook", mock.Anything, &notification).
			Return("", exceptions.ErrMongoDBUpdateDocument(errors.New("down"))).Once()

		rr := send(f, testWebhookToken, notification)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestReceiptRoute(t *testing.T) {
	f := newRouterFixture(t)
	patient := models.Principal{ID: "P1", Role: constvars.RolePatient}
	f.receipts.On("GetReceipt", mock.Anything, patient, "A1").
		Return(&responses.Receipt{AppointmentID: "A1", URL: "https://files.local/receipts/A1.pdf"}, nil)

	rr := f.do(t, http.MethodGet, "/api/v1/appointments/A1/receipt", sessionToken(t, "P1", constvars.RolePatient), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeEnvelope(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, "https://files.local/receipts/A1.pdf", data["url"])
}
