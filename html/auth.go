package html

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	coreAuth "obracalc.GO/core/auth"
)

func init() {
	api.RegisterHTMLModule(RegisterAuthHTMLRoutes)
}

// RegisterAuthHTMLRoutes registers the login and registration pages.
func RegisterAuthHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	e.GET("/login", func(c echo.Context) error {
		if !coreAuth.CurrentSession(c).Anonymous() {
			return c.Redirect(http.StatusFound, "/")
		}
		data := viewData(c, deps, "Entrar")
		data["Email"] = ""
		return c.Render(http.StatusOK, "login.html", data)
	})

	e.POST("/login", func(c echo.Context) error {
		_, token, err := deps.Auth.Login(c.FormValue("email"), c.FormValue("senha"))
		if err != nil {
			data := viewData(c, deps, "Entrar")
			data["Error"] = err.Error()
			data["Email"] = c.FormValue("email")
			return c.Render(http.StatusOK, "login.html", data)
		}
		coreAuth.SetTokenCookie(c, token)
		return c.Redirect(http.StatusFound, "/")
	})

	e.POST("/cadastro", func(c echo.Context) error {
		profile := coreAuth.Profile{
			Name:            c.FormValue("nome"),
			Phone:           c.FormValue("telefone"),
			SiteAddress:     c.FormValue("endereco_obra"),
			UsageType:       c.FormValue("tipo_uso"),
			ICMSContributor: c.FormValue("contribuinte_icms") == "on",
			State:           c.FormValue("estado"),
		}
		_, err := deps.Auth.Register(c.FormValue("email"), c.FormValue("senha"), profile)
		if err != nil {
			data := viewData(c, deps, "Entrar")
			data["Error"] = err.Error()
			data["Email"] = ""
			return c.Render(http.StatusOK, "login.html", data)
		}
		// Log straight in after registration
		if _, token, err := deps.Auth.Login(c.FormValue("email"), c.FormValue("senha")); err == nil {
			coreAuth.SetTokenCookie(c, token)
		}
		return c.Redirect(http.StatusFound, "/")
	})

	e.POST("/logout", func(c echo.Context) error {
		deps.Auth.Logout(coreAuth.TokenFromRequest(c))
		coreAuth.ClearTokenCookie(c)
		return c.Redirect(http.StatusFound, "/")
	})
}
