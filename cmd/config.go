package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gooze.dev/pkg/survivors/internal/domain"
	m "gooze.dev/pkg/survivors/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "survivors"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	reportFlagName      = "report"
	outputFlagName      = "output"
	outputRootFlagName  = "output-root"
	stripPrefixFlagName = "strip-prefix"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"
	formatFlagName      = "format"

	reportConfigKey         = "report"
	outputConfigKey         = "output"
	outputRootConfigKey     = "locate.output_root"
	relativeReportConfigKey = "locate.relative_report"
	defaultReportConfigKey  = "locate.default_report"
	fallbackReportConfigKey = "locate.fallback_report"
	stripPrefixConfigKey    = "strip_prefix"
	listFormatConfigKey     = "list.format"

	defaultOutputDir  = "stryker_prompts_by_mutator"
	defaultListFormat = "table"

	envPrefix = "SURVIVORS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".survivors.log"
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

	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", configFileName, err)
	}
}

func setConfigDefaults() {
	locate := domain.DefaultLocatorConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(reportConfigKey, "")
	viper.SetDefault(outputConfigKey, defaultOutputDir)
	viper.SetDefault(outputRootConfigKey, string(locate.OutputRoot))
	viper.SetDefault(relativeReportConfigKey, string(locate.RelativeReport))
	viper.SetDefault(defaultReportConfigKey, string(locate.DefaultReport))
	viper.SetDefault(fallbackReportConfigKey, string(locate.FallbackReport))
	// Empty means the current working directory.
	viper.SetDefault(stripPrefixConfigKey, "")
	viper.SetDefault(listFormatConfigKey, defaultListFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// locatorConfig reads the report search locations from configuration.
func locatorConfig() domain.LocatorConfig {
	return domain.LocatorConfig{
		OutputRoot:     m.Path(viper.GetString(outputRootConfigKey)),
		RelativeReport: m.Path(viper.GetString(relativeReportConfigKey)),
		DefaultReport:  m.Path(viper.GetString(defaultReportConfigKey)),
		FallbackReport: m.Path(viper.GetString(fallbackReportConfigKey)),
	}
}

// stripPrefix returns the configured prefix, defaulting to the working
// directory followed by a path separator.
func stripPrefix() (string, error) {
	if prefix := viper.GetString(stripPrefixConfigKey); prefix != "" {
		return prefix, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	return domain.StripPrefixForDir(wd, string(filepath.Separator)), nil
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
