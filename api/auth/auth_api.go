package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	coreAuth "obracalc.GO/core/auth"
)

func init() {
	api.RegisterModule(RegisterAuthRoutes)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
	coreAuth.Profile
}

func RegisterAuthRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// POST /api/auth/login
	apiGroup.POST("/auth/login", func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		user, token, err := deps.Auth.Login(req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		coreAuth.SetTokenCookie(c, token)
		return c.JSON(http.StatusOK, echo.Map{"user": user, "token": token})
	})

	// POST /api/auth/register
	apiGroup.POST("/auth/register", func(c echo.Context) error {
		var req registerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		user, err := deps.Auth.Register(req.Email, req.Password, req.Profile)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, user)
	})

	// POST /api/auth/logout
	apiGroup.POST("/auth/logout", func(c echo.Context) error {
		if err := deps.Auth.Logout(coreAuth.TokenFromRequest(c)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		coreAuth.ClearTokenCookie(c)
		return c.NoContent(http.StatusNoContent)
	})

	// GET /api/auth/me: the resolved session; anonymous is not an error
	apiGroup.GET("/auth/me", func(c echo.Context) error {
		sess := coreAuth.CurrentSession(c)
		return c.JSON(http.StatusOK, echo.Map{
			"user":      sess.User,
			"anonymous": sess.Anonymous(),
			"enabled":   deps.Auth.Enabled(),
		})
	})
}
