package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// TokenCookie is the single browser-persisted credential entry.
const TokenCookie = "sharehub_token"

const tokenMaxAge = 7 * 24 * time.Hour

// CookieOptions controls how the token cookie is written.
type CookieOptions struct {
	Secure bool
}

// SetToken persists token in the browser.
func (o CookieOptions) SetToken(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearToken removes the token from the browser.
func (o CookieOptions) ClearToken(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
