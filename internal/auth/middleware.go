package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the middleware stores the *Session in echo.Context.
const ContextKey = "session"

var errMalformedToken = errors.New("malformed token")

// Middleware decodes the token cookie on every request. Requests without a
// usable token continue anonymously.
func Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "cookie:" + TokenCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			s := Read(token)
			if s == nil {
				return nil, errMalformedToken
			}
			return s, nil
		},
		SuccessHandler: func(c echo.Context) {
			if s := Current(c); s != nil {
				req := c.Request()
				c.SetRequest(req.WithContext(NewContext(req.Context(), s)))
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// Current returns the session attached by Middleware, or nil when logged out.
func Current(c echo.Context) *Session {
	s, _ := c.Get(ContextKey).(*Session)
	return s
}

// RequireSession redirects anonymous requests to the sign-in page.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Current(c) == nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}
