package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"navmap/internal/render"
	"navmap/internal/view"
)

var viewScale int

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Validate the points, then show the map in a window",
	Args:  cobra.NoArgs,
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

		return view.Show(m, cfg.Start, cfg.Goal, viewScale)
	},
}

func init() {
	viewCmd.Flags().IntVar(&viewScale, "scale", render.DefaultScale, "pixels per map unit")
}
