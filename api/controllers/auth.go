package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/velora-commerce/velora-backend/api/middleware"
	"github.com/velora-commerce/velora-backend/api/responses"
	"github.com/velora-commerce/velora-backend/api/validators"
	authsvc "github.com/velora-commerce/velora-backend/internal/auth"
	"github.com/velora-commerce/velora-backend/pkg/config"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
	"github.com/velora-commerce/velora-backend/pkg/logger"
)

const (
	refreshCookieName = "velora_refresh_token"
	refreshCookiePath = "/auth"
)

func setRefreshCookie(w http.ResponseWriter, app config.AppConfig, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   app.IsProd(),
		SameSite: http.SameSiteStrictMode,
	})
}

func clearRefreshCookie(w http.ResponseWriter, app config.AppConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.IsProd(),
		SameSite: http.SameSiteStrictMode,
	})
}

// refreshTokenFromRequest prefers the httpOnly cookie and falls back to the
// JSON body for clients that cannot hold cookies.
func refreshTokenFromRequest(r *http.Request, body string) string {
	if cookie, err := r.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return strings.TrimSpace(body)
}

func parseBearerToken(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeAuthentication, "missing credentials")
	}
	token := raw
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeAuthentication, "missing credentials")
	}
	return token, nil
}

// AuthSignup registers a new account and issues the first token pair.
func AuthSignup(svc authsvc.Service, app config.AppConfig, sessionTTL time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body authsvc.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.Name = validators.SanitizeString(body.Name, 120)

		result, err := svc.Signup(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setRefreshCookie(w, app, result.RefreshToken, sessionTTL)
		responses.WriteSuccessStatus(w, http.StatusCreated, "User registered successfully", result)
	}
}

// AuthLogin authenticates a user and issues a fresh token pair.
func AuthLogin(svc authsvc.Service, app config.AppConfig, sessionTTL time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setRefreshCookie(w, app, result.RefreshToken, sessionTTL)
		responses.WriteSuccess(w, "Login successful", result)
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthRefresh rotates the refresh session and mints a new access token. The
// expired access token arrives as the bearer credential so the session id can
// be recovered without trusting the client with identity fields.
func AuthRefresh(svc authsvc.Service, app config.AppConfig, sessionTTL time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		accessToken, err := parseBearerToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body refreshRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := validators.DecodeJSONBody(r, &body); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		refreshToken := refreshTokenFromRequest(r, body.RefreshToken)
		if refreshToken == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeAuthentication, "missing refresh token"))
			return
		}

		result, err := svc.Refresh(r.Context(), accessToken, refreshToken)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setRefreshCookie(w, app, result.RefreshToken, sessionTTL)
		responses.WriteSuccess(w, "Token refreshed", result)
	}
}

// AuthLogout revokes the refresh session tied to the authenticated access
// token and clears the refresh cookie.
func AuthLogout(svc authsvc.Service, app config.AppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		accessID := middleware.AccessIDFromContext(r.Context())
		if err := svc.Logout(r.Context(), accessID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clearRefreshCookie(w, app)
		responses.WriteSuccess(w, "Logged out", nil)
	}
}
