package importer

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	importService "obracalc.GO/service/importer"
)

func init() {
	api.RegisterModule(RegisterImportRoutes)
}

func RegisterImportRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// POST /api/catalog/import – CSV catalog upsert (auth required via /api middleware)
	apiGroup.POST("/catalog/import", func(c echo.Context) error {
		start := time.Now()

		if deps.DB == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "backend não configurado"})
		}

		opts := importService.ImportOptions{CategoryType: c.QueryParam("category_type")}
		res, err := importService.ImportCatalog(deps.DB, c.Request().Body, opts)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		// Refreshed so the next read serves the imported rows
		deps.Store.Invalidate()

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"total_rows":          res.TotalRows,
			"created":             res.Created,
			"updated":             res.Updated,
			"skipped":             res.Skipped,
			"rates":               res.Rates,
			"specs":               res.Specs,
			"warnings":            res.Warnings,
			"request_duration_ms": duration,
		})
	})
}
