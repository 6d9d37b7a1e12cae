package middleware

import (
	"net/http"
	"time"

	"openskies/airfield/internal/auth"
	"openskies/airfield/internal/common"
	"openskies/airfield/internal/db/repositories"
	"openskies/airfield/internal/logging"
	"openskies/airfield/internal/metrics"
	"openskies/airfield/internal/models/entities"
)

// BasicAuthMiddleware gates the login route. Credentials are checked
// against the user store; on success the authenticated user is placed
// in the request context for the login handler. Every attempt lands in
// the audit trail, best-effort. events and metricsReg may be nil.
func BasicAuthMiddleware(authorizer *auth.Authorizer, events *repositories.LoginEventRepo, metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			username, password, ok := r.BasicAuth()
			if !ok {
				common.RespondError(w, initTime, nil, "Missing basic auth credentials", http.StatusUnauthorized)
				return
			}

			user, authorized, err := authorizer.Authorize(r.Context(), username, password)
			if err != nil {
				common.RespondError(w, initTime, nil, "Failed to verify credentials", http.StatusInternalServerError)
				return
			}

			audit(r, events, metricsReg, username, authorized)

			if !authorized {
				common.RespondError(w, initTime, nil, "Unauthorized: "+username, http.StatusUnauthorized)
				return
			}

			ctx := auth.SetAuthedUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func audit(r *http.Request, events *repositories.LoginEventRepo, metricsReg *metrics.MetricsRegistry, username string, authorized bool) {
	result := "failure"
	if authorized {
		result = "success"
	}

	if metricsReg != nil {
		metricsReg.LoginAttemptsTotal.WithLabelValues(result).Inc()
	}

	if events == nil {
		return
	}
	event := entities.LoginEvent{
		Username:  username,
		Success:   authorized,
		RequestID: RequestIDFromContext(r.Context()),
	}
	if err := events.Record(r.Context(), event); err != nil {
		logging.Warn("Failed to record login event",
			"username", username,
			"error", err.Error(),
		)
	}
}
