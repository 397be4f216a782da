package html

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	"obracalc.GO/calc"
	coreAuth "obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
	"obracalc.GO/service/estimate"
)

func init() {
	api.RegisterHTMLModule(RegisterCalculatorHTMLRoutes)
}

// quoteRequest reads the calculator form fields, overrides included, so the
// calculator POST and the add-to-cart POST price the exact same quote.
func quoteRequest(c echo.Context) estimate.Request {
	req := estimate.Request{
		ProductID: c.FormValue("produto"),
		Area:      c.FormValue("area"),
		Mode:      calc.Mode(c.FormValue("modo")),
	}
	req.Thickness = formFloat(c, "espessura")
	req.Consumption = formFloat(c, "consumo")
	return req
}

// formFloat parses an optional numeric form field, comma decimals accepted.
// Empty or malformed values come back 0 (field unset).
func formFloat(c echo.Context, name string) float64 {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// RegisterCalculatorHTMLRoutes registers the quantity calculator pages.
func RegisterCalculatorHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	render := func(c echo.Context, status int, data map[string]interface{}) error {
		data["Products"] = deps.Store.GetAll()
		for key, def := range map[string]string{"Selected": "", "Area": "", "Mode": "area", "Espessura": "", "Consumo": ""} {
			if _, ok := data[key]; !ok {
				data[key] = def
			}
		}
		return c.Render(status, "calculadora.html", data)
	}

	e.GET("/calculadora", func(c echo.Context) error {
		return render(c, http.StatusOK, viewData(c, deps, "Calculadora"))
	})

	// Pre-selects a product from the catalog pages
	e.GET("/calculadora/:id", func(c echo.Context) error {
		data := viewData(c, deps, "Calculadora")
		if p, ok := deps.Store.GetByID(c.Param("id")); ok {
			data["Selected"] = p.ID
			if p.Specifications != nil {
				data["DefaultThickness"] = p.Specifications.Thickness
			}
		}
		return render(c, http.StatusOK, data)
	})

	e.POST("/calculadora", func(c echo.Context) error {
		req := quoteRequest(c)

		data := viewData(c, deps, "Calculadora")
		data["Selected"] = req.ProductID
		data["Area"] = req.Area
		data["Mode"] = string(req.Mode)
		data["Espessura"] = strings.TrimSpace(c.FormValue("espessura"))
		data["Consumo"] = strings.TrimSpace(c.FormValue("consumo"))

		res, _, err := estimate.Quote(deps.Store, req)
		if err != nil {
			data["Error"] = err.Error()
			return render(c, http.StatusOK, data)
		}
		data["Result"] = res

		row := entity.CalculationLog{
			ProductID:   req.ProductID,
			ProductName: res.ProductName,
			Area:        res.Area,
			Mode:        string(res.Mode),
			Rate:        res.ConsumptionRate,
			RequiredKg:  res.RequiredKg,
			Packages:    res.PackageCount,
		}
		if sess := coreAuth.CurrentSession(c); !sess.Anonymous() {
			row.UserID = &sess.User.ID
		}
		deps.Mirror.Calculation(row)

		return render(c, http.StatusOK, data)
	})
}
