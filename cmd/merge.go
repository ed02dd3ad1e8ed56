package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/goozereport/internal/domain"
)

var mergeDryRunFlag bool

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge module fragments and publish the combined comment",
		Long: `Wait for the expected module fragments in the shared directory, merge them
into one report and replace the previous report comment on the pull request.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := sharedDir()
			if err != nil {
				return err
			}

			publish, err := publishArgsFromConfig(dir, mergeDryRunFlag)
			if err != nil {
				return err
			}

			return workflow.Merge(cmd.Context(), domain.MergeArgs{Publish: publish})
		},
	}

	cmd.Flags().BoolVar(&mergeDryRunFlag, dryRunFlagName, false, "print the comment instead of posting it")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
