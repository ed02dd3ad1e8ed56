package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/goozereport/internal/domain"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <module chain>",
		Short: "Print the module path used for a fragment",
		Long: `Resolve a slash separated module chain such as project/service/api against
--root-name and print the module path a unit with that chain reports under.
The root module prints as "root".`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := resolvedModulePath(args[0])
			if path == "" {
				path = "root"
			}

			cmd.Println(path)
		},
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func resolvedModulePath(chain string) string {
	return domain.ResolveModulePath(domain.ParseModuleChain(chain), viper.GetString(buildRootNameKey))
}
