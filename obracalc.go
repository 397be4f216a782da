//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"obracalc.GO/api"
	_ "obracalc.GO/api/auth"
	_ "obracalc.GO/api/calculator"
	_ "obracalc.GO/api/carrinho"
	graphqlApi "obracalc.GO/api/graphql"
	_ "obracalc.GO/api/importer"
	_ "obracalc.GO/api/media"
	_ "obracalc.GO/api/orders"
	_ "obracalc.GO/api/products"
	"obracalc.GO/config"
	coreAuth "obracalc.GO/core/auth"
	"obracalc.GO/cron/jobs"
	_ "obracalc.GO/custom"
	"obracalc.GO/html"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, cart persistence falls back to disk."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, cart persistence falls back to disk."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		if err != config.ErrNoDatabase {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		log.Println("No database configured: serving the static catalog, sessions stay anonymous.")
		db = nil
	}
	if db != nil {
		sqldb, err := db.DB()
		if err != nil {
			log.Fatalf("failed to get DB instance: %v", err)
		}
		if err := sqldb.Ping(); err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		log.Println("Database connection successful.")
	}

	deps := api.NewDeps(db)
	defer deps.Mirror.Close()
	jobs.SetCatalogStore(deps.Store)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.Use(coreAuth.Middleware(deps.Auth))

	// Register the template renderer
	t := html.NewRenderer("html/templates/*.html")
	e.Renderer = t
	e.Static("/assets", "assets")

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)
	graphqlApi.RegisterGraphQLRoutes(e, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
