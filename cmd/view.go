package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/goozereport/internal/domain"
	m "gooze.dev/pkg/goozereport/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [results...]",
		Short: "Show the summary of mutation results",
		Long:  viewLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Paths:      parsePaths(args),
				Coverage:   m.Path(viper.GetString(coverageKey)),
				ModulePath: resolvedModulePath(viper.GetString(buildModuleKey)),
				Thresholds: thresholdsFromConfig(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
