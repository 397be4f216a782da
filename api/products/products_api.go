package products

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	"obracalc.GO/catalog"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

func RegisterProductRoutes(apiGroup *echo.Group, deps *api.Deps) {
	store := deps.Store

	apiGroup.GET("/products", func(c echo.Context) error {
		if cat := c.QueryParam("category"); cat != "" {
			products := store.GetByCategory(cat)
			return c.JSON(http.StatusOK, echo.Map{"products": products, "count": len(products)})
		}
		products := store.GetAll()
		return c.JSON(http.StatusOK, echo.Map{"products": products, "count": len(products)})
	})

	apiGroup.GET("/products/search", func(c echo.Context) error {
		q := c.QueryParam("q")
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "parâmetro q é obrigatório"})
		}
		// Elasticsearch when configured, always-available scan otherwise
		if svc := catalog.GetSearchService(); svc.Enabled() {
			if products, err := svc.Search(c.Request().Context(), q, 20); err == nil {
				return c.JSON(http.StatusOK, echo.Map{"products": products, "count": len(products), "source": "elasticsearch"})
			}
			// fall through to the local scan on ES failure
		}
		products := store.Search(q)
		return c.JSON(http.StatusOK, echo.Map{"products": products, "count": len(products), "source": "catalog"})
	})

	apiGroup.GET("/products/:id", func(c echo.Context) error {
		p, ok := store.GetByID(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "produto não encontrado"})
		}
		return c.JSON(http.StatusOK, p)
	})

	apiGroup.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"categories": store.GetCategories()})
	})

	apiGroup.GET("/consumption", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"rates": store.GetRates()})
	})

	apiGroup.GET("/consumption/:productId", func(c echo.Context) error {
		rate, ok := store.GetConsumptionRate(c.Param("productId"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "consumo não encontrado"})
		}
		return c.JSON(http.StatusOK, rate)
	})
}
