package middlewares

import (
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

func panicError(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", recovered)
}

// ErrorHandler turns a panicking handler into a 500 response. http.ErrAbortHandler
// is re-raised so net/http can abort the connection as intended.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			err := panicError(recovered)
			m.Log.Error("Recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.ByteString("stack", debug.Stack()),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
		}()
		next.ServeHTTP(w, r)
	})
}
