package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionChecker reports whether a session is currently authenticated.
type SessionChecker interface {
	Authenticated() bool
}

// VerificationChecker reports whether the biometric identity gate is open.
type VerificationChecker interface {
	IdentityVerified() bool
}

// RequireSession rejects requests while no session is authenticated.
// Routes behind it correspond to the authenticated-only views.
func RequireSession(sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			return next(c)
		}
	}
}

// RequireVerifiedIdentity rejects requests until the biometric check has
// passed. It guards the profile-editing routes.
func RequireVerifiedIdentity(accounts VerificationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !accounts.IdentityVerified() {
				return echo.NewHTTPError(http.StatusForbidden, "identity not verified")
			}
			return next(c)
		}
	}
}
