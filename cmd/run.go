package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/goozereport/internal/domain"
	m "gooze.dev/pkg/goozereport/internal/model"
)

var runLastFlag bool
var runSpillFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [results...]",
		Short: "Report the results of one build unit",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := sharedDir()
			if err != nil {
				return err
			}

			unit := buildContextFromConfig()

			var publish domain.PublishArgs
			if unit.Last {
				publish, err = publishArgsFromConfig(dir, false)
				if err != nil {
					return err
				}
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Paths:      parsePaths(args),
				Coverage:   m.Path(viper.GetString(coverageKey)),
				Unit:       unit,
				SharedDir:  m.Path(dir),
				Thresholds: thresholdsFromConfig(),
				Spill:      viper.GetBool(runSpillKey),
				Publish:    publish,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&runLastFlag, lastFlagName, viper.GetBool(buildLastKey), "this unit finishes the build: merge fragments and publish the comment")
	bindFlagToConfig(cmd.Flags().Lookup(lastFlagName), buildLastKey)

	cmd.Flags().BoolVar(&runSpillFlag, spillFlagName, viper.GetBool(runSpillKey), "keep class results on disk instead of in memory")
	bindFlagToConfig(cmd.Flags().Lookup(spillFlagName), runSpillKey)

	configureBuildFlags(cmd)
}

// buildContextFromConfig builds the immutable unit context. The module path
// is resolved against build.root_name.
func buildContextFromConfig() m.BuildContext {
	return m.BuildContext{
		Host:          viper.GetString(buildHostKey),
		BuildTypeID:   viper.GetString(buildTypeIDKey),
		BuildID:       viper.GetString(buildIDKey),
		ArtifactsPath: viper.GetString(buildArtifactsPathKey),
		ModulePath:    resolvedModulePath(viper.GetString(buildModuleKey)),
		Last:          viper.GetBool(buildLastKey),
		Remote:        remoteFromConfig(),
	}
}
