// Package custom is the extension point: drop files here that register
// commands, cron jobs, routes or GraphQL resolvers from init().
package custom

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"obracalc.GO/api"
	"obracalc.GO/calc"
	"obracalc.GO/cmd"
	"obracalc.GO/cron"
	gqlregistry "obracalc.GO/graphql/registry"
)

func init() {
	// GraphQL extension: quick bag lookup without touching the schema.
	// { _extension(name: "sacos", args: "{\"kg\": 73}") }
	gqlregistry.Register("sacos", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		kg, _ := args["kg"].(float64)
		return map[string]interface{}{
			"kg":        kg,
			"sacos":     calc.Packages(kg),
			"embalagem": calc.PackageLabel,
		}, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:sacos [kg]",
		Short: "Convert a mass in kg to 20kg bags",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			var kg float64
			if _, err := fmt.Sscanf(args[0], "%f", &kg); err != nil {
				fmt.Printf("not a number: %s\n", args[0])
				return
			}
			fmt.Printf("%.2f kg = %d × %s\n", kg, calc.Packages(kg), calc.PackageLabel)
		},
	})

	// Cron job
	cron.Register("heartbeat", "@every 10m", func(args ...string) {
		log.Println("custom: heartbeat", args)
	})

	// HTTP route
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}
