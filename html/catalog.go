package html

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	"obracalc.GO/catalog"
)

func init() {
	api.RegisterHTMLModule(RegisterCatalogHTMLRoutes)
}

// consumptionRow pairs a product with its consumption rate for the table view.
type consumptionRow struct {
	Product catalog.Product
	Rate    catalog.ConsumptionRate
}

// RegisterCatalogHTMLRoutes registers the catalog browsing pages.
func RegisterCatalogHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	e.GET("/", func(c echo.Context) error {
		data := viewData(c, deps, "ObraCalc")
		data["Categories"] = deps.Store.GetCategories()
		data["Products"] = deps.Store.GetAll()
		return c.Render(http.StatusOK, "index.html", data)
	})

	e.GET("/produtos", func(c echo.Context) error {
		var products []catalog.Product
		category := c.QueryParam("categoria")
		query := c.QueryParam("q")
		switch {
		case query != "":
			products = deps.Store.Search(query)
		case category != "":
			products = deps.Store.GetByCategory(category)
		default:
			products = deps.Store.GetAll()
		}
		data := viewData(c, deps, "Produtos")
		data["Products"] = products
		data["Categories"] = deps.Store.GetCategories()
		data["Category"] = category
		data["Query"] = query
		return c.Render(http.StatusOK, "produtos.html", data)
	})

	e.GET("/produto/:id", func(c echo.Context) error {
		p, ok := deps.Store.GetByID(c.Param("id"))
		if !ok {
			return c.Render(http.StatusNotFound, "404.html", viewData(c, deps, "Produto não encontrado"))
		}
		data := viewData(c, deps, p.Name)
		data["Product"] = p
		if rate, ok := deps.Store.GetConsumptionRate(p.ID); ok {
			data["Rate"] = rate
		}
		return c.Render(http.StatusOK, "produto.html", data)
	})

	e.GET("/consumo", func(c echo.Context) error {
		var rows []consumptionRow
		for _, p := range deps.Store.GetAll() {
			if rate, ok := deps.Store.GetConsumptionRate(p.ID); ok {
				rows = append(rows, consumptionRow{Product: p, Rate: rate})
			}
		}
		data := viewData(c, deps, "Tabela de Consumo")
		data["Rows"] = rows
		return c.Render(http.StatusOK, "consumo.html", data)
	})

	e.GET("/fichas", func(c echo.Context) error {
		var products []catalog.Product
		for _, p := range deps.Store.GetAll() {
			if p.TechnicalSheet != "" || p.Description != "" {
				products = append(products, p)
			}
		}
		data := viewData(c, deps, "Fichas Técnicas")
		data["Products"] = products
		return c.Render(http.StatusOK, "fichas.html", data)
	})

	e.GET("/ficha/:id", func(c echo.Context) error {
		p, ok := deps.Store.GetByID(c.Param("id"))
		if !ok {
			return c.Render(http.StatusNotFound, "404.html", viewData(c, deps, "Ficha não encontrada"))
		}
		data := viewData(c, deps, "Ficha Técnica - "+p.Name)
		data["Product"] = p
		if rate, ok := deps.Store.GetConsumptionRate(p.ID); ok {
			data["Rate"] = rate
		}
		return c.Render(http.StatusOK, "ficha.html", data)
	})

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Render(http.StatusNotFound, "404.html", viewData(c, deps, "Página não encontrada"))
	})
}
