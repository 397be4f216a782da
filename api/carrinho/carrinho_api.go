package carrinho

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	"obracalc.GO/calc"
	"obracalc.GO/cart"
	coreAuth "obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
	"obracalc.GO/service/estimate"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

type addRequest struct {
	estimate.Request
	AreaName string `json:"areaName"`
}

type cartResponse struct {
	Items  []cart.Item      `json:"items"`
	Groups []cart.AreaGroup `json:"groups"`
	Count  int              `json:"count"`
	Total  float64          `json:"total"`
}

func RegisterCartRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// GET /api/cart: current session's cart, flat and grouped by area
	apiGroup.GET("/cart", func(c echo.Context) error {
		ledger := deps.Carts.ForSession(coreAuth.SessionID(c))
		return c.JSON(http.StatusOK, cartResponse{
			Items:  ledger.Items(),
			Groups: ledger.GroupByArea(),
			Count:  ledger.Len(),
			Total:  ledger.Total(),
		})
	})

	// POST /api/cart: recompute the quote server-side, then append a line
	apiGroup.POST("/cart", func(c echo.Context) error {
		var req addRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		res, _, err := estimate.Quote(deps.Store, req.Request)
		switch {
		case errors.Is(err, estimate.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, calc.ErrInvalidArea), errors.Is(err, calc.ErrInvalidRate), errors.Is(err, estimate.ErrNoRate):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		sid := coreAuth.SessionID(c)
		ledger := deps.Carts.ForSession(sid)
		item, err := ledger.Add(cart.Item{
			ProductID:   req.ProductID,
			ProductName: res.ProductName,
			Quantity:    res.PackageCount,
			Area:        res.Area,
			AreaName:    req.AreaName,
			TotalAmount: res.RequiredKg,
		})
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		row := entity.CartLog{
			SessionID:   sid,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Area:        item.Area,
			AreaName:    item.AreaName,
			TotalKg:     item.TotalAmount,
			UnitPrice:   item.UnitPrice,
		}
		if sess := coreAuth.CurrentSession(c); !sess.Anonymous() {
			row.UserID = &sess.User.ID
		}
		deps.Mirror.CartAdd(row)

		return c.JSON(http.StatusCreated, item)
	})

	// DELETE /api/cart/items/:id: remove one line by its stable id
	apiGroup.DELETE("/cart/items/:id", func(c echo.Context) error {
		ledger := deps.Carts.ForSession(coreAuth.SessionID(c))
		if err := ledger.Remove(c.Param("id")); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})

	// DELETE /api/cart: empty the cart
	apiGroup.DELETE("/cart", func(c echo.Context) error {
		deps.Carts.ForSession(coreAuth.SessionID(c)).Clear()
		return c.NoContent(http.StatusNoContent)
	})
}
