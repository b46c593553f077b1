// Package cli implements the navmap command line shell. The shell owns the
// policy on validation failure: it reports the rejection reason and aborts
// the rendering step; the core library only produces the verdict.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	startFlag  string
	goalFlag   string
	tolerance  float64
)

// rootCmd is the root command for navmap.
var rootCmd = &cobra.Command{
	Use:     "navmap",
	Version: "dev",
	Short:   "Obstacle map visualization and start/goal validation",
	Long: `navmap renders a 2D navigation map of rectangular obstacles and validates
that the start and goal points stay clear of every obstacle before rendering.

It ships a built-in 120x60 map; pass --config to supply your own, and
--start/--goal to override the candidate points.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON map configuration file (default: built-in map)")
	rootCmd.PersistentFlags().StringVar(&startFlag, "start", "", "start point as x,y (overrides the configuration)")
	rootCmd.PersistentFlags().StringVar(&goalFlag, "goal", "", "goal point as x,y (overrides the configuration)")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", -1, "near-boundary tolerance for obstacle collisions (overrides the configuration)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
