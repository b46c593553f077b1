// Package server exposes the navigation map over HTTP: inspect the
// configuration, validate candidate start and goal points, and fetch a
// rendered image. Rendering is refused while either configured point fails
// validation.
package server

import (
	"bytes"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"navmap"
	"navmap/internal/render"
)

// DefaultPort is used when NAVMAP_PORT is not set
const DefaultPort = "8080"

// ValidateRequest carries candidate points and an optional map override.
// When Map is nil the server's configured map is used.
type ValidateRequest struct {
	Start navmap.Point   `json:"start"`
	Goal  navmap.Point   `json:"goal"`
	Map   *navmap.Config `json:"map,omitempty"`
}

// ValidateResponse reports both verdicts. OK is true only when both points
// were accepted.
type ValidateResponse struct {
	OK    bool          `json:"ok"`
	Start navmap.Result `json:"start"`
	Goal  navmap.Result `json:"goal"`
}

// Server holds the configured map for the lifetime of the process. The map
// is built once at startup and only read afterwards, so handlers share it
// without locking.
type Server struct {
	cfg navmap.Config
	m   *navmap.ObstacleMap
}

// New builds the map from the configuration and returns a ready fiber app
func New(cfg navmap.Config) (*fiber.App, error) {
	m, err := cfg.BuildMap()
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, m: m}

	app := fiber.New(fiber.Config{
		AppName:               "navmap",
		DisableStartupMessage: true,
	})
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Get("/map", s.handleMap)
	api.Post("/validate", s.handleValidate)
	api.Get("/map.png", s.handleRender)

	return app, nil
}

// Port resolves the listen port from NAVMAP_PORT, falling back to the default
func Port() string {
	if p := os.Getenv("NAVMAP_PORT"); p != "" {
		return p
	}
	return DefaultPort
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"obstacles": len(s.m.Obstacles()),
	})
}

func (s *Server) handleMap(c *fiber.Ctx) error {
	return c.JSON(s.cfg)
}

func (s *Server) handleValidate(c *fiber.Ctx) error {
	var req ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	m := s.m
	if req.Map != nil {
		override, err := req.Map.BuildMap()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		m = override
	}

	start := navmap.Validate(req.Start, m)
	goal := navmap.Validate(req.Goal, m)

	if !start.OK {
		log.Printf("rejected start (%g,%g): %s", req.Start.X, req.Start.Y, start)
	}
	if !goal.OK {
		log.Printf("rejected goal (%g,%g): %s", req.Goal.X, req.Goal.Y, goal)
	}

	return c.JSON(ValidateResponse{
		OK:    start.OK && goal.OK,
		Start: start,
		Goal:  goal,
	})
}

// handleRender returns the rendered map. Both configured points must pass
// validation, otherwise the handler reports the reasons instead of an image.
func (s *Server) handleRender(c *fiber.Ctx) error {
	start := navmap.Validate(s.cfg.Start, s.m)
	goal := navmap.Validate(s.cfg.Goal, s.m)
	if !start.OK || !goal.OK {
		return c.Status(fiber.StatusConflict).JSON(ValidateResponse{
			Start: start,
			Goal:  goal,
		})
	}

	scale := c.QueryInt("scale", render.DefaultScale)

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, s.m, s.cfg.Start, s.cfg.Goal, scale); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Type("png")
	return c.Send(buf.Bytes())
}
