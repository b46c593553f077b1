package navmap

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the explicit per-run description of a navigation map: bounds,
// obstacles, and the candidate start and goal points. It is passed into map
// construction and validation rather than living as editable constants.
type Config struct {
	MinX      float64    `json:"minX"`
	MinY      float64    `json:"minY"`
	MaxX      float64    `json:"maxX"`
	MaxY      float64    `json:"maxY"`
	Tolerance float64    `json:"tolerance,omitempty"`
	Obstacles []Obstacle `json:"obstacles"`
	Start     Point      `json:"start"`
	Goal      Point      `json:"goal"`
}

// DefaultConfig returns the built-in 120x60 navigation map with its nineteen
// rectangular obstacles, start (10,50) and goal (110,10).
func DefaultConfig() Config {
	return Config{
		MinX: 0, MinY: 0, MaxX: 120, MaxY: 60,
		Obstacles: []Obstacle{
			{X: 0, Y: 30, Width: 7, Height: 10},
			{X: 15, Y: 30, Width: 11, Height: 10},
			{X: 20, Y: 40, Width: 1, Height: 20},
			{X: 34, Y: 30, Width: 6, Height: 10},
			{X: 36, Y: 28, Width: 4, Height: 2},
			{X: 40, Y: 28, Width: 2, Height: 5},
			{X: 40, Y: 33, Width: 2, Height: 14},
			{X: 42, Y: 33, Width: 26, Height: 14},
			{X: 62, Y: 30, Width: 6, Height: 3},
			{X: 42, Y: 10, Width: 20, Height: 3},
			{X: 62, Y: 10, Width: 6, Height: 11},
			{X: 36, Y: 10, Width: 6, Height: 10},
			{X: 36, Y: 0, Width: 32, Height: 3},
			{X: 76, Y: 20, Width: 24, Height: 4},
			{X: 88, Y: 0, Width: 12, Height: 20},
			{X: 109, Y: 24, Width: 11, Height: 6},
			{X: 116, Y: 30, Width: 4, Height: 30},
			{X: 68, Y: 56, Width: 48, Height: 4},
			{X: 40, Y: 55, Width: 28, Height: 5},
		},
		Start: Point{X: 10, Y: 50},
		Goal:  Point{X: 110, Y: 10},
	}
}

// LoadConfig reads a map configuration from a JSON file
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	return cfg, nil
}

// BuildMap constructs the obstacle map described by the configuration,
// failing fast on empty bounds or any invalid obstacle.
func (c Config) BuildMap() (*ObstacleMap, error) {
	m, err := NewObstacleMap(c.MinX, c.MinY, c.MaxX, c.MaxY, c.Tolerance)
	if err != nil {
		return nil, err
	}

	for _, o := range c.Obstacles {
		if err := m.AddObstacle(o); err != nil {
			return nil, err
		}
	}

	return m, nil
}
