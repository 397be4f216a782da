package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"obracalc.GO/config"
)

const (
	// CtxSession is the echo context key the resolved Session lives under.
	CtxSession = "session"
	// CtxSessionID is the echo context key for the anonymous session id.
	CtxSessionID = "session_id"

	cookieToken     = "obracalc_token"
	cookieSessionID = "obracalc_sid"
)

// Middleware resolves the session once per request and injects it into the
// echo context. When a backend is configured, anonymous requests get a 401
// on non-public /api paths and a redirect to /login on gated HTML pages;
// without a backend everything allows through.
func Middleware(svc *Service) echo.MiddlewareFunc {
	skipper := buildSkipper()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := svc.Current(TokenFromRequest(c))
			c.Set(CtxSession, sess)
			if svc.Enabled() && sess.Anonymous() && !skipper(c) {
				if strings.HasPrefix(c.Path(), "/api") {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "não autenticado"})
				}
				if gatedPage(c) {
					return c.Redirect(http.StatusFound, "/login")
				}
			}
			return next(c)
		}
	}
}

// gatedPage reports whether an HTML path requires a session when auth is on.
// Login, signup and static assets stay reachable.
func gatedPage(c echo.Context) bool {
	path := c.Path()
	for _, open := range []string{"/login", "/cadastro", "/logout", "/assets", "/media", "/playground", "/favicon.ico"} {
		if strings.HasPrefix(path, open) {
			return false
		}
	}
	return true
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

// TokenFromRequest reads the session token from the Authorization header
// (Bearer) or the session cookie.
func TokenFromRequest(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimPrefix(h, "Bearer ")
		}
	}
	if ck, err := c.Cookie(cookieToken); err == nil {
		return ck.Value
	}
	return ""
}

// SetTokenCookie attaches the session token cookie after login.
func SetTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearTokenCookie drops the session token cookie at logout.
func ClearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     cookieToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// CurrentSession returns the Session injected by Middleware. Handlers
// outside the middleware chain get an Anonymous session.
func CurrentSession(c echo.Context) Session {
	if v := c.Get(CtxSession); v != nil {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Session{}
}

// SessionID returns the stable anonymous session id, minting the cookie on
// first use. The cart ledger and order history key off this id.
func SessionID(c echo.Context) string {
	if v := c.Get(CtxSessionID); v != nil {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	if ck, err := c.Cookie(cookieSessionID); err == nil && ck.Value != "" {
		c.Set(CtxSessionID, ck.Value)
		return ck.Value
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cookieSessionID,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	c.Set(CtxSessionID, id)
	return id
}
