package cli

import (
	"fmt"
	"strconv"
	"strings"

	"navmap"
)

// parsePoint parses an "x,y" flag value
func parsePoint(s string) (navmap.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return navmap.Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return navmap.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return navmap.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}

	return navmap.Point{X: x, Y: y}, nil
}

// loadConfig resolves the run configuration: the built-in map or --config,
// with --start, --goal, and --tolerance applied on top.
func loadConfig() (navmap.Config, error) {
	cfg := navmap.DefaultConfig()
	if configPath != "" {
		loaded, err := navmap.LoadConfig(configPath)
		if err != nil {
			return navmap.Config{}, err
		}
		cfg = loaded
	}

	if startFlag != "" {
		p, err := parsePoint(startFlag)
		if err != nil {
			return navmap.Config{}, err
		}
		cfg.Start = p
	}
	if goalFlag != "" {
		p, err := parsePoint(goalFlag)
		if err != nil {
			return navmap.Config{}, err
		}
		cfg.Goal = p
	}
	if tolerance >= 0 {
		cfg.Tolerance = tolerance
	}

	return cfg, nil
}

// validatePoints builds the map and checks both points, reporting each
// verdict. It returns the map and whether both points were accepted.
func validatePoints(cfg navmap.Config) (*navmap.ObstacleMap, bool, error) {
	m, err := cfg.BuildMap()
	if err != nil {
		return nil, false, err
	}

	start := navmap.Validate(cfg.Start, m)
	goal := navmap.Validate(cfg.Goal, m)

	printVerdict("start", cfg.Start, start)
	printVerdict("goal", cfg.Goal, goal)

	return m, start.OK && goal.OK, nil
}
