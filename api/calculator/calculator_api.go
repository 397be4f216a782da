package calculator

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	"obracalc.GO/calc"
	coreAuth "obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
	"obracalc.GO/service/estimate"
)

func init() {
	api.RegisterModule(RegisterCalculatorRoutes)
}

func RegisterCalculatorRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// POST /api/calc: compute a required quantity; no cart mutation
	apiGroup.POST("/calc", func(c echo.Context) error {
		var req estimate.Request
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		res, _, err := estimate.Quote(deps.Store, req)
		switch {
		case errors.Is(err, estimate.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, calc.ErrInvalidArea), errors.Is(err, calc.ErrInvalidRate), errors.Is(err, estimate.ErrNoRate):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

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

		return c.JSON(http.StatusOK, res)
	})
}
