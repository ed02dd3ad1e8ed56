// Package cmd provides the root command and CLI setup for gooze-report.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/goozereport/internal/adapter"
	"gooze.dev/pkg/goozereport/internal/controller"
	"gooze.dev/pkg/goozereport/internal/domain"
	m "gooze.dev/pkg/goozereport/internal/model"
)

var resultSource adapter.ResultSource
var reportStore adapter.ReportStore
var renderer adapter.Renderer
var metricsExporter adapter.MetricsExporter
var reviewClients adapter.ReviewClientFactory
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is the directory shared by every unit of the build.
var outputDirFlag string

// verboseFlag switches logging to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	var err error

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))

	resultSource, err = adapter.NewLocalResultSource()
	cobra.CheckErr(err)

	reportStore = adapter.NewReportStore()

	renderer, err = adapter.NewMarkdownRenderer(adapter.RenderOptions{
		ClassThreshold: viper.GetInt(reportClassThresholdKey),
		LinkTemplate:   viper.GetString(reportLinkTemplateKey),
		ProgressBars:   viper.GetBool(reportProgressBarsKey),
		ProgressBarURL: viper.GetString(reportProgressBarURLKey),
	})
	cobra.CheckErr(err)

	metricsExporter = adapter.NewPrometheusExporter(adapter.MetricsOptions{
		Textfile:    viper.GetString(metricsTextfileKey),
		Pushgateway: viper.GetString(metricsPushgatewayKey),
		Job:         viper.GetString(metricsJobKey),
	})

	reviewClients = adapter.NewGitHubClientFactory(viper.GetDuration(githubTimeoutKey), adapter.DefaultRetryPolicy())

	workflow = domain.NewWorkflow(
		resultSource,
		reportStore,
		renderer,
		metricsExporter,
		ui,
		reviewClients,
	)
}

const resultPathsHelp = `Result paths may be files or directories:
  - results.json   a single engine export
  - ./out          every *.json file in the directory
  - ./out/...      every *.json file below the directory`

const rootLongDescription = `gooze-report turns the per-class results of a mutation testing run into
quality reports: a per-module summary, a quality gate and a single combined
comment on the pull request of a multi-module build.

` + resultPathsHelp

const runLongDescription = `Replay the results of one build unit, write its report fragment and apply
the quality gate. With --last the unit also merges every fragment of the
build and publishes the combined comment.

` + resultPathsHelp

const viewLongDescription = `Aggregate results and show the module summary and gate verdict without
writing anything.

` + resultPathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "gooze-report",
		Short:        "Mutation testing quality reports",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory shared by every build unit for report fragments",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	configureReportFlags(cmd)
	configurePublishFlags(cmd)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
