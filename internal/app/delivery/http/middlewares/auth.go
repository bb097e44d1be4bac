package middlewares

import (
	"context"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const anonymousRole = "anonymous"

// Authenticate turns a bearer token into a Principal on the context. Requests
// without a token pass through anonymous and are left to Authorize.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		subject, role, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "invalid_bearer_token", utils.GetRequestID(r.Context()), "medium",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		principal := models.Principal{ID: subject, Role: role}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks (role, method, path) against the RBAC policy. rootPath is
// stripped first so policies stay independent of the mount point.
func (m *Middlewares) Authorize(rootPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := anonymousRole
			principal, authenticated := GetPrincipal(r.Context())
			if authenticated {
				role = principal.Role
			}

			path := strings.TrimPrefix(r.URL.Path, rootPath)
			if path == "" {
				path = "/"
			}

			allowed, err := m.Enforcer.Enforce(role, r.Method, path)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
				return
			}
			if allowed {
				next.ServeHTTP(w, r)
				return
			}

			if !authenticated {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing())
				return
			}
			utils.LogSecurityEvent(m.Log, "role_forbidden", utils.GetRequestID(r.Context()), "low",
				zap.String(constvars.LoggingPrincipalIDKey, principal.ID),
				zap.String(constvars.LoggingPrincipalRoleKey, role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleForbidden(role, r.Method, path))
		})
	}
}

func GetPrincipal(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(models.Principal)
	return principal, ok && principal.ID != ""
}
