package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	coverageFlagName = "coverage"
	moduleFlagName   = "module"
	rootNameFlagName = "root-name"
	lastFlagName     = "last"
	spillFlagName    = "spill"
	dryRunFlagName   = "dry-run"

	mutationScoreFlagName = "mutation-score"
	testStrengthFlagName  = "test-strength"
	lineCoverageFlagName  = "line-coverage"
	maxSurvivingFlagName  = "max-surviving"

	buildHostFlagName          = "build-host"
	buildTypeIDFlagName        = "build-type-id"
	buildIDFlagName            = "build-id"
	buildArtifactsPathFlagName = "artifacts-path"

	githubURLFlagName = "github-url"
	githubRepoFlag    = "repo"
	githubPRFlagName  = "pr"

	expectedFlagName     = "expected"
	manifestFlagName     = "manifest"
	mergeTimeoutFlagName = "merge-timeout"
	pollIntervalFlagName = "poll-interval"
	postEmptyFlagName    = "post-empty"
)

// configureReportFlags registers the flags shared by run, view and resolve.
func configureReportFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(coverageFlagName, viper.GetString(coverageKey), "coverage index JSON overriding per-class line counts")
	bindFlagToConfig(flags.Lookup(coverageFlagName), coverageKey)

	flags.StringP(moduleFlagName, "m", viper.GetString(buildModuleKey), "module chain of this unit, e.g. project/service/api")
	bindFlagToConfig(flags.Lookup(moduleFlagName), buildModuleKey)

	flags.String(rootNameFlagName, viper.GetString(buildRootNameKey), "root module the module path is relative to")
	bindFlagToConfig(flags.Lookup(rootNameFlagName), buildRootNameKey)

	flags.Int(mutationScoreFlagName, viper.GetInt(thresholdMutationScoreKey), "minimum mutation score percent (0 disables)")
	bindFlagToConfig(flags.Lookup(mutationScoreFlagName), thresholdMutationScoreKey)

	flags.Int(testStrengthFlagName, viper.GetInt(thresholdTestStrengthKey), "minimum test strength percent (0 disables)")
	bindFlagToConfig(flags.Lookup(testStrengthFlagName), thresholdTestStrengthKey)

	flags.Int(lineCoverageFlagName, viper.GetInt(thresholdLineCoverageKey), "minimum line coverage percent (0 disables)")
	bindFlagToConfig(flags.Lookup(lineCoverageFlagName), thresholdLineCoverageKey)

	flags.Int(maxSurvivingFlagName, viper.GetInt(thresholdMaxSurvivingKey), "maximum surviving mutations (negative disables)")
	bindFlagToConfig(flags.Lookup(maxSurvivingFlagName), thresholdMaxSurvivingKey)
}

// configurePublishFlags registers the flags of the whole-build merge.
func configurePublishFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(githubURLFlagName, viper.GetString(githubURLKey), "GitHub API base URL")
	bindFlagToConfig(flags.Lookup(githubURLFlagName), githubURLKey)

	flags.String(githubRepoFlag, viper.GetString(githubRepoKey), "repository receiving the comment (owner/name)")
	bindFlagToConfig(flags.Lookup(githubRepoFlag), githubRepoKey)

	flags.Int(githubPRFlagName, viper.GetInt(githubPRKey), "pull request number receiving the comment")
	bindFlagToConfig(flags.Lookup(githubPRFlagName), githubPRKey)

	flags.StringSlice(expectedFlagName, viper.GetStringSlice(mergeExpectedKey), "module paths the merge waits for (can be repeated)")
	bindFlagToConfig(flags.Lookup(expectedFlagName), mergeExpectedKey)

	flags.String(manifestFlagName, viper.GetString(mergeManifestKey), "YAML manifest listing the expected modules")
	bindFlagToConfig(flags.Lookup(manifestFlagName), mergeManifestKey)

	flags.Duration(mergeTimeoutFlagName, viper.GetDuration(mergeTimeoutKey), "how long the merge waits for expected fragments")
	bindFlagToConfig(flags.Lookup(mergeTimeoutFlagName), mergeTimeoutKey)

	flags.Duration(pollIntervalFlagName, viper.GetDuration(mergePollIntervalKey), "how often the merge looks for new fragments")
	bindFlagToConfig(flags.Lookup(pollIntervalFlagName), mergePollIntervalKey)

	flags.Bool(postEmptyFlagName, viper.GetBool(mergePostEmptyKey), "publish a comment even when no fragment was found")
	bindFlagToConfig(flags.Lookup(postEmptyFlagName), mergePostEmptyKey)
}

// configureBuildFlags registers the CI coordinates used in report links.
func configureBuildFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.String(buildHostFlagName, viper.GetString(buildHostKey), "CI server host")
	bindFlagToConfig(flags.Lookup(buildHostFlagName), buildHostKey)

	flags.String(buildTypeIDFlagName, viper.GetString(buildTypeIDKey), "CI build configuration id")
	bindFlagToConfig(flags.Lookup(buildTypeIDFlagName), buildTypeIDKey)

	flags.String(buildIDFlagName, viper.GetString(buildIDKey), "CI build id")
	bindFlagToConfig(flags.Lookup(buildIDFlagName), buildIDKey)

	flags.String(buildArtifactsPathFlagName, viper.GetString(buildArtifactsPathKey), "artifact path of the detailed HTML reports")
	bindFlagToConfig(flags.Lookup(buildArtifactsPathFlagName), buildArtifactsPathKey)
}
