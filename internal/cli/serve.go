package cli

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"navmap/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the map over HTTP",
	Long: `Run an HTTP server exposing the map configuration, point validation, and
PNG rendering.

Endpoints:
  GET  /api/health    server status
  GET  /api/map       map configuration as JSON
  POST /api/validate  validate candidate start and goal points
  GET  /api/map.png   rendered map (refused while the configured points are invalid)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			PrintWarning("no .env file found, using defaults")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app, err := server.New(cfg)
		if err != nil {
			return err
		}

		port := servePort
		if port == "" {
			port = server.Port()
		}

		log.Printf("navmap server listening on :%s", port)
		return app.Listen(":" + port)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (default: NAVMAP_PORT or "+server.DefaultPort+")")
}
