package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"navmap/internal/render"
)

var (
	renderOut   string
	renderScale int
	renderTerm  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Validate the points, then render the map",
	Long: `Render the obstacle map with its start and goal markers.

Both points are validated first; on rejection the reason is reported and the
rendering step is aborted. By default the map is written as a PNG; --term
draws it in the terminal instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		m, ok, err := validatePoints(cfg)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("refusing to render an invalid configuration")
		}

		if renderTerm {
			return render.Terminal(m, cfg.Start, cfg.Goal)
		}

		f, err := os.Create(renderOut)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := render.WritePNG(f, m, cfg.Start, cfg.Goal, renderScale); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("map written to %s", renderOut))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "map.png", "output PNG file")
	renderCmd.Flags().IntVar(&renderScale, "scale", render.DefaultScale, "pixels per map unit")
	renderCmd.Flags().BoolVar(&renderTerm, "term", false, "draw in the terminal instead of writing a PNG")
}
