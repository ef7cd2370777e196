package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"ammo.dev/pkg/ammo/internal/adapter"
	"ammo.dev/pkg/ammo/internal/domain"
	m "ammo.dev/pkg/ammo/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "ammo"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	projectFlagName = "project"
	nameFlagName    = "name"
	targetFlagName  = "target"
	verboseFlagName = "verbose"
	installFlagName = "install"

	projectRootKey     = "project.root"
	projectNameKey     = "project.name"
	projectManifestKey = "project.manifest"
	buildCommandKey    = "build.command"
	artifactLayoutKey  = "build.artifact_layout"
	installDirKey      = "install.dir"
	installElevateKey  = "install.elevate"
	installElevatorKey = "install.elevator"
	watchIntervalKey   = "watch.interval"
	watchIgnoreKey     = "watch.ignore"
	watchInstallKey    = "watch.install"

	envPrefix = "AMMO"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".ammo.log"
	defaultLogLevel      = "info"
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

	setDefaults()

	// Unreadable or absent ammo.yaml: keep the defaults.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(projectRootKey, "")
	viper.SetDefault(projectNameKey, "")
	viper.SetDefault(projectManifestKey, adapter.DefaultManifest)
	viper.SetDefault(buildCommandKey, adapter.DefaultBuildCommand)
	viper.SetDefault(artifactLayoutKey, domain.DefaultArtifactLayout)
	viper.SetDefault(installDirKey, m.DefaultInstallDir)
	viper.SetDefault(installElevateKey, string(adapter.ElevateAuto))
	viper.SetDefault(installElevatorKey, adapter.DefaultElevator)
	viper.SetDefault(watchIntervalKey, domain.DefaultWatchInterval.String())
	viper.SetDefault(watchIgnoreKey, adapter.DefaultWatchIgnore)
	viper.SetDefault(watchInstallKey, false)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// settings is the effective configuration of one invocation.
type settings struct {
	Project        domain.ProjectSettings
	BuildCommand   []string
	ArtifactLayout string
	Target         m.InstallTarget
	Elevation      adapter.ElevationMode
	Elevator       []string
	Watch          domain.WatchSettings
	WatchInstall   bool
}

// loadSettings reads and validates the settings from flags, environment and
// ammo.yaml, in that order of precedence.
func loadSettings() (settings, error) {
	elevation, err := adapter.ParseElevationMode(viper.GetString(installElevateKey))
	if err != nil {
		return settings{}, err
	}

	interval, err := parseInterval(viper.GetString(watchIntervalKey))
	if err != nil {
		return settings{}, err
	}

	target := m.InstallTarget{Directory: m.Path(strings.TrimSpace(viper.GetString(installDirKey)))}
	if err := domain.ValidateInstallTarget(target); err != nil {
		return settings{}, err
	}

	command := viper.GetStringSlice(buildCommandKey)
	if len(command) == 0 {
		return settings{}, &m.ConfigError{Kind: m.InvalidSetting, Detail: buildCommandKey + " is empty"}
	}

	return settings{
		Project: domain.ProjectSettings{
			Root:     m.Path(viper.GetString(projectRootKey)),
			Name:     strings.TrimSpace(viper.GetString(projectNameKey)),
			Manifest: viper.GetString(projectManifestKey),
		},
		BuildCommand:   command,
		ArtifactLayout: viper.GetString(artifactLayoutKey),
		Target:         target,
		Elevation:      elevation,
		Elevator:       viper.GetStringSlice(installElevatorKey),
		Watch: domain.WatchSettings{
			Interval: interval,
			Ignore:   viper.GetStringSlice(watchIgnoreKey),
		},
		WatchInstall: viper.GetBool(watchInstallKey),
	}, nil
}

// parseInterval accepts a Go duration or a plain number of seconds.
func parseInterval(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.DefaultWatchInterval, nil
	}

	interval, err := time.ParseDuration(value)
	if err != nil {
		seconds, convErr := strconv.ParseFloat(value, 64)
		if convErr != nil {
			return 0, &m.ConfigError{Kind: m.InvalidSetting, Detail: fmt.Sprintf("%s: %q is not a duration", watchIntervalKey, value)}
		}

		interval = time.Duration(seconds * float64(time.Second))
	}

	if interval <= 0 {
		return 0, &m.ConfigError{Kind: m.InvalidSetting, Detail: fmt.Sprintf("%s must be positive, got %q", watchIntervalKey, value)}
	}

	return interval, nil
}

// logIgnorePatterns returns the watch ignore entries covering the log file
// and the backups lumberjack rotates it into.
func logIgnorePatterns(logPath string) []string {
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	abs, err := filepath.Abs(logPath)
	if err != nil {
		return nil
	}

	ext := filepath.Ext(abs)
	backups := strings.TrimSuffix(abs, ext) + "-*" + ext

	return []string{abs, backups, backups + ".gz"}
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

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at the rotating log file.
// It logs at the configured level, or Debug when verbose is set.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
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

// discardLogger silences slog, for processes that must not create log files.
func discardLogger() {
	globalLogger = slog.New(slog.DiscardHandler)
	slog.SetDefault(globalLogger)
}
