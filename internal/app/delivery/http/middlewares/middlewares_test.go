package middlewares

import (
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/drivers/rbac"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret"

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), rbac.NewEnforcer(), &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1},
		JWT: config.AppJWT{Secret: testSecret},
	})
}

func bearer(t *testing.T, principalID, role string) string {
	token, err := utils.GenerateSessionJWT(principalID, role, testSecret, 1)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("generated when absent", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("client value kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, "client-123", seen)
	})
}

func TestAuthenticateAndAuthorize(t *testing.T) {
	m := newTestMiddlewares()
	var principal models.Principal
	handler := m.Authenticate(m.Authorize("/api/v1")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ = GetPrincipal(r.Context())
		w.WriteHeader(http.StatusOK)
	})))

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{"public health", http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{"public slots", http.MethodGet, "/api/v1/doctors/D1/slots", "", http.StatusOK},
		{"public webhook", http.MethodPost, "/api/v1/payments/webhook/jenga", "", http.StatusOK},
		{"anonymous booking", http.MethodPost, "/api/v1/appointments", "", http.StatusUnauthorized},
		{"patient booking", http.MethodPost, "/api/v1/appointments", bearer(t, "P1", constvars.RolePatient), http.StatusOK},
		{"doctor booking", http.MethodPost, "/api/v1/appointments", bearer(t, "D1", constvars.RoleDoctor), http.StatusForbidden},
		{"doctor completes", http.MethodPost, "/api/v1/doctor/appointments/A1/complete", bearer(t, "D1", constvars.RoleDoctor), http.StatusOK},
		{"patient completes", http.MethodPost, "/api/v1/doctor/appointments/A1/complete", bearer(t, "P1", constvars.RolePatient), http.StatusForbidden},
		{"admin receipt", http.MethodGet, "/api/v1/appointments/A1/receipt", bearer(t, "A1", constvars.RoleAdmin), http.StatusOK},
		{"admin toggles availability", http.MethodPost, "/api/v1/admin/doctors/D1/availability", bearer(t, "A1", constvars.RoleAdmin), http.StatusOK},
		{"garbage token", http.MethodGet, "/api/v1/health", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set(constvars.HeaderAuthorization, tc.auth)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.want, rr.Code)
		})
	}

	t.Run("principal reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearer(t, "P7", constvars.RolePatient))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, models.Principal{ID: "P7", Role: constvars.RolePatient}, principal)
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestLoggingLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newTestMiddlewares()
	m.Log = zap.New(core)

	respond := func(code int) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte("ok"))
		})
	}

	cases := []struct {
		path  string
		code  int
		level zapcore.Level
	}{
		{"/api/v1/health", http.StatusOK, zapcore.DebugLevel},
		{"/api/v1/appointments", http.StatusCreated, zapcore.InfoLevel},
		{"/api/v1/appointments", http.StatusConflict, zapcore.WarnLevel},
		{"/api/v1/payments/verify", http.StatusInternalServerError, zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		m.Logging(respond(tc.code)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, len(cases))
	for i, tc := range cases {
		assert.Equal(t, tc.level, entries[i].Level, tc.path)
		assert.Equal(t, int64(tc.code), entries[i].ContextMap()[constvars.LoggingStatusCodeKey])
		assert.Equal(t, int64(2), entries[i].ContextMap()["response_bytes"])
	}
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	oversized := strings.NewReader(strings.Repeat("x", (1<<20)+1))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/appointments", oversized))

	assert.Error(t, readErr)
}
