package rest

import (
	"bytes"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/errs"
	"github.com/procargo/backoffice/pkg/logger"
	"github.com/rs/xid"
)

const bearerPrefix = "Bearer "

// GetAuthMiddleware authenticates the bearer token and evaluates the guard of action.
func (h *Handler) GetAuthMiddleware(action domain.Action) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			tokenString := r.Header.Get("Authorization")
			if tokenString == "" {
				h.Metrics.authDenied(action, http.StatusUnauthorized)
				h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Missing Authorization header", nil)
				return
			}
			if len(tokenString) <= len(bearerPrefix) || !strings.EqualFold(tokenString[:len(bearerPrefix)], bearerPrefix) {
				h.Metrics.authDenied(action, http.StatusUnauthorized)
				h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Invalid Authorization header format", nil)
				return
			}
			tokenString = tokenString[len(bearerPrefix):]

			principal, err := h.Svc.VerifyToken(ctx, tokenString)
			if err != nil {
				if httpErr, ok := errs.IsHTTPStatusError(err); ok {
					h.Metrics.authDenied(action, httpErr.StatusCode)
				}
				h.HandleError(ctx, w, err)
				return
			}
			if !domain.Allowed(principal, action) {
				h.Metrics.authDenied(action, http.StatusForbidden)
				h.ErrorResponse(ctx, w, http.StatusForbidden, "access denied", errors.Errorf("role %s may not perform %s", principal.Role(), action))
				return
			}

			log := logger.Logger(ctx).With().Str("user_id", principal.UserID()).Str("role", string(principal.Role())).Logger()
			ctx = log.WithContext(ctx)
			ctx = domain.WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = xid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		log := logger.Logger(ctx).With().
			Str("method", r.Method).Str("req_id", reqID).
			Str("url", r.URL.String()).Logger()

		responseWriter := NewResponseWriter(w)
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Msgf("Recovered from panic, stack trace: %s", string(debug.Stack()))
				http.Error(responseWriter, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		ctx = log.WithContext(ctx)
		ctx = domain.WithRequestMeta(ctx, domain.RequestMeta{RequestID: reqID, IP: clientIP(r)})
		r = r.WithContext(ctx)
		next.ServeHTTP(responseWriter, r)
		cost := time.Since(start)
		log = log.With().
			Int("cost_msec", int(cost.Milliseconds())).
			Logger()
		if responseWriter.statusCode >= 500 {
			log.Error().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with server error")
		} else if responseWriter.statusCode >= 400 {
			log.Warn().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with client error")
		} else {
			log.Info().
				Int("status_code", responseWriter.statusCode).
				Msg("Request completed successfully")
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	responseBody bytes.Buffer
	statusCode   int
}

func NewResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write keeps error bodies for the request log.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode >= 400 {
		rw.responseBody.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}
