package httpapi

import (
	"net/http"
	"time"
)

// Cookie names expected by the SPA.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// setAuthCookies sets both token cookies: httpOnly, SameSite=Lax, Path=/.
// The Secure flag stays off; the deployment terminates TLS upstream.
func setAuthCookies(w http.ResponseWriter, accessToken, refreshToken, domain string, accessMaxAge, refreshMaxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		MaxAge:   int(accessMaxAge.Seconds()),
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		MaxAge:   int(refreshMaxAge.Seconds()),
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookies expires both token cookies with the same attributes they
// were set with, so browsers reliably drop them.
func clearAuthCookies(w http.ResponseWriter, domain string) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			MaxAge:   -1,
			Path:     "/",
			Domain:   domain,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
