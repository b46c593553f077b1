package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the start and goal points against the map",
	Long: `Validate the configured start and goal points against the obstacle map.

Each point is checked independently: it must lie within the map bounds and
must not touch any obstacle, boundary included. Exits non-zero when either
point is rejected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		_, ok, err := validatePoints(cfg)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("validation failed")
		}
		return nil
	},
}
