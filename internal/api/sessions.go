package api

import (
	"errors"
	"net/http"
	"time"

	"openskies/airfield/internal/auth"
	"openskies/airfield/internal/common"
	"openskies/airfield/internal/logging"
	"openskies/airfield/internal/metrics"
)

// SessionCookieName carries the signed session token.
const SessionCookieName = "airfield_session"

// LoginHandler handles POST /login. The basic-auth middleware has
// already verified credentials and stashed the user in the context;
// this handler only establishes the session.
func LoginHandler(sessions common.SessionStore, signer *common.TokenSigner, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		user := auth.GetAuthedUser(r.Context())
		if user == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing credentials", http.StatusUnauthorized)
			return
		}

		sessionID, err := sessions.CreateSession(r.Context(), user.ID, user.Username)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create session", http.StatusInternalServerError)
			return
		}

		expiresAt := time.Now().Add(common.SessionTTL)
		token, err := signer.Sign(sessionID, user.ID, expiresAt)
		if err != nil {
			_ = sessions.DeleteSession(r.Context(), sessionID)
			common.RespondError(w, initTime, err, "Failed to sign session token", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		if metricsReg != nil {
			metricsReg.SessionsCreated.Inc()
		}
		logging.Info("Session established", "username", user.Username)

		common.RespondSuccess(w, initTime, "Logged in", map[string]string{
			"username": user.Username,
		})
	}
}

// LogoutHandler handles GET /logout. Without a live session the
// request is rejected with 401; with one, the session is destroyed
// and the cookie expired.
func LogoutHandler(sessions common.SessionStore, signer *common.TokenSigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			common.RespondError(w, initTime, nil, "Log in first", http.StatusUnauthorized)
			return
		}

		sessionID, err := signer.Verify(cookie.Value)
		if err != nil {
			common.RespondError(w, initTime, nil, "Log in first", http.StatusUnauthorized)
			return
		}

		session, err := sessions.GetSession(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, common.ErrSessionNotFound) {
				common.RespondError(w, initTime, nil, "Log in first", http.StatusUnauthorized)
				return
			}
			common.RespondError(w, initTime, err, "Failed to read session", http.StatusInternalServerError)
			return
		}

		if err := sessions.DeleteSession(r.Context(), sessionID); err != nil {
			common.RespondError(w, initTime, err, "Failed to destroy session", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		logging.Info("Session destroyed", "username", session.Username)

		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}
