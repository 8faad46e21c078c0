package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// X-Road request headers.
const (
	HeaderClient    = "X-Road-Client"
	HeaderUserID    = "X-Road-UserId"
	HeaderRequestID = "X-Road-Id"
)

const clientPrefix = "SUBSYSTEM:"

type contextKeyClientID struct{}
type contextKeyUserID struct{}
type contextKeyRequestID struct{}

// GetClientID returns the caller's subsystem path, e.g. FO-TST/COM/123456/my-system.
func GetClientID(ctx context.Context) string {
	clientID, ok := ctx.Value(contextKeyClientID{}).(string)
	if !ok {
		return ""
	}
	return clientID
}

// GetUserID returns the optional end-user id sent by the caller.
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(contextKeyUserID{}).(string)
	if !ok {
		return ""
	}
	return userID
}

// GetRequestID returns the X-Road message id of the request.
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(contextKeyRequestID{}).(string)
	if !ok {
		return ""
	}
	return requestID
}

// RequireXRoadClient rejects requests without a SUBSYSTEM client header and
// stores the caller identity in the request context.
func RequireXRoadClient(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := r.Header.Get(HeaderRequestID)

			clientID, ok := strings.CutPrefix(strings.TrimSpace(r.Header.Get(HeaderClient)), clientPrefix)
			if !ok || strings.Count(clientID, "/") != 3 {
				logger.WarnContext(ctx, "unauthorized access - missing or malformed X-Road client",
					"client", r.Header.Get(HeaderClient),
					"request_id", requestID,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, err := w.Write([]byte(`{"code":"unauthorized","message":"X-Road-Client header with a SUBSYSTEM identifier is required"}`))
				if err != nil {
					logger.ErrorContext(ctx, "failed to write unauthorized response",
						"error", err,
						"request_id", requestID,
					)
				}
				return
			}

			ctx = context.WithValue(ctx, contextKeyClientID{}, clientID)
			ctx = context.WithValue(ctx, contextKeyUserID{}, r.Header.Get(HeaderUserID))
			ctx = context.WithValue(ctx, contextKeyRequestID{}, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
