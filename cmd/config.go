package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/goozereport/internal/adapter"
	"gooze.dev/pkg/goozereport/internal/domain"
	m "gooze.dev/pkg/goozereport/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "gooze-report"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "GOOZE_REPORT"

	outputFlagName  = "output"
	verboseFlagName = "verbose"

	mergeSharedDirKey    = "merge.shared_dir"
	mergeExpectedKey     = "merge.expected"
	mergeManifestKey     = "merge.manifest"
	mergeTimeoutKey      = "merge.timeout"
	mergePollIntervalKey = "merge.poll_interval"
	mergePostEmptyKey    = "merge.post_empty"

	thresholdMutationScoreKey = "thresholds.mutation_score"
	thresholdTestStrengthKey  = "thresholds.test_strength"
	thresholdLineCoverageKey  = "thresholds.line_coverage"
	thresholdMaxSurvivingKey  = "thresholds.max_surviving"

	buildHostKey          = "build.host"
	buildTypeIDKey        = "build.type_id"
	buildIDKey            = "build.id"
	buildArtifactsPathKey = "build.artifacts_path"
	buildModuleKey        = "build.module"
	buildRootNameKey      = "build.root_name"
	buildLastKey          = "build.last"

	githubURLKey     = "github.url"
	githubTokenKey   = "github.token"
	githubRepoKey    = "github.repo"
	githubPRKey      = "github.pr"
	githubTimeoutKey = "github.timeout"

	commentHeaderKey = "comment.header"
	commentMarkerKey = "comment.marker"

	reportClassThresholdKey = "report.class_threshold"
	reportLinkTemplateKey   = "report.link_template"
	reportProgressBarsKey   = "report.progress_bars"
	reportProgressBarURLKey = "report.progress_bar_url"

	runSpillKey = "run.spill"
	coverageKey = "run.coverage"

	metricsTextfileKey    = "metrics.textfile"
	metricsPushgatewayKey = "metrics.pushgateway"
	metricsJobKey         = "metrics.job"

	defaultSharedDir     = ".gooze-report"
	defaultGitHubTimeout = 30 * time.Second

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".gooze-report.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultSharedDir)

	viper.SetDefault(mergeSharedDirKey, "")
	viper.SetDefault(mergeExpectedKey, []string{})
	viper.SetDefault(mergeManifestKey, "")
	viper.SetDefault(mergeTimeoutKey, domain.DefaultMergeTimeout)
	viper.SetDefault(mergePollIntervalKey, domain.DefaultMergePollInterval)
	viper.SetDefault(mergePostEmptyKey, false)

	viper.SetDefault(thresholdMutationScoreKey, 0)
	viper.SetDefault(thresholdTestStrengthKey, 0)
	viper.SetDefault(thresholdLineCoverageKey, 0)
	viper.SetDefault(thresholdMaxSurvivingKey, -1)

	viper.SetDefault(buildHostKey, "")
	viper.SetDefault(buildTypeIDKey, "")
	viper.SetDefault(buildIDKey, "")
	viper.SetDefault(buildArtifactsPathKey, "")
	viper.SetDefault(buildModuleKey, "")
	viper.SetDefault(buildRootNameKey, "")
	viper.SetDefault(buildLastKey, false)

	viper.SetDefault(githubURLKey, adapter.DefaultGitHubURL)
	viper.SetDefault(githubTokenKey, "")
	viper.SetDefault(githubRepoKey, "")
	viper.SetDefault(githubPRKey, 0)
	viper.SetDefault(githubTimeoutKey, defaultGitHubTimeout)

	viper.SetDefault(commentHeaderKey, domain.DefaultCommentHeader)
	viper.SetDefault(commentMarkerKey, domain.DefaultCommentMarker)

	viper.SetDefault(reportClassThresholdKey, adapter.DefaultClassThreshold)
	viper.SetDefault(reportLinkTemplateKey, adapter.DefaultLinkTemplate)
	viper.SetDefault(reportProgressBarsKey, false)
	viper.SetDefault(reportProgressBarURLKey, adapter.DefaultProgressBarURL)

	viper.SetDefault(runSpillKey, false)
	viper.SetDefault(coverageKey, "")

	viper.SetDefault(metricsTextfileKey, "")
	viper.SetDefault(metricsPushgatewayKey, "")
	viper.SetDefault(metricsJobKey, adapter.DefaultMetricsJob)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// sharedDir returns the absolute artifact directory shared by every unit.
// merge.shared_dir overrides the output flag when set.
func sharedDir() (string, error) {
	dir := strings.TrimSpace(viper.GetString(mergeSharedDirKey))
	if dir == "" {
		dir = viper.GetString(outputFlagName)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve shared dir %q: %w", dir, err)
	}

	return abs, nil
}

func thresholdsFromConfig() m.Thresholds {
	return m.Thresholds{
		MutationScore: viper.GetInt(thresholdMutationScoreKey),
		TestStrength:  viper.GetInt(thresholdTestStrengthKey),
		LineCoverage:  viper.GetInt(thresholdLineCoverageKey),
		MaxSurviving:  viper.GetInt(thresholdMaxSurvivingKey),
	}
}

func remoteFromConfig() m.RemoteTarget {
	return m.RemoteTarget{
		BaseURL:  viper.GetString(githubURLKey),
		Token:    viper.GetString(githubTokenKey),
		Repo:     viper.GetString(githubRepoKey),
		PRNumber: viper.GetInt(githubPRKey),
	}
}

// expectedModules returns merge.expected, or the modules listed by
// merge.manifest when no explicit list is configured.
func expectedModules() ([]string, error) {
	expected := viper.GetStringSlice(mergeExpectedKey)
	if len(expected) > 0 {
		return expected, nil
	}

	manifest := strings.TrimSpace(viper.GetString(mergeManifestKey))
	if manifest == "" {
		return nil, nil
	}

	return adapter.LoadManifest(m.Path(manifest))
}

func publishArgsFromConfig(dir string, dryRun bool) (domain.PublishArgs, error) {
	expected, err := expectedModules()
	if err != nil {
		return domain.PublishArgs{}, err
	}

	return domain.PublishArgs{
		Collect: domain.CollectArgs{
			SharedDir:    m.Path(dir),
			Expected:     expected,
			Timeout:      viper.GetDuration(mergeTimeoutKey),
			PollInterval: viper.GetDuration(mergePollIntervalKey),
		},
		Remote:    remoteFromConfig(),
		Header:    viper.GetString(commentHeaderKey),
		Marker:    viper.GetString(commentMarkerKey),
		PostEmpty: viper.GetBool(mergePostEmptyKey),
		DryRun:    dryRun,
	}, nil
}
