package media

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	"obracalc.GO/config"
	mediaService "obracalc.GO/service/media"
)

func init() {
	api.RegisterRoute(RegisterMediaRoutes)
}

// RegisterMediaRoutes serves catalog images, with on-demand WebP thumbnails
// under /media/thumb.
func RegisterMediaRoutes(e *echo.Echo, deps *api.Deps) {
	mediaDir := config.AppConfig.MediaDir

	e.Static("/media/img", mediaDir)

	// GET /media/thumb/:width/:file: resized WebP, cached on disk
	e.GET("/media/thumb/:width/:file", func(c echo.Context) error {
		width, err := strconv.Atoi(c.Param("width"))
		if err != nil || width <= 0 || width > 2000 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid width"})
		}
		file := filepath.Base(c.Param("file"))
		if strings.HasPrefix(file, ".") {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid file"})
		}

		src := filepath.Join(mediaDir, file)
		out, err := mediaService.Thumbnail(src, width, filepath.Join(mediaDir, "cache"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.File(out)
	})
}
