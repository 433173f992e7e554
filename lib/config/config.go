package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/rogue-tools/overrides/lib/util"
	"github.com/rogue-tools/overrides/lib/util/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetLogger()
)

const (
	BaseDirName = ".rogue-overrides"
	EnvPrefix   = "ROGUE_OVERRIDES"

	KeyOverlayPath = "overlay.path"
	KeyLogLevel    = "log.level"
)

// Settings are the tool settings of the rogue-overrides CLI. They say where
// the overlay lives; the overlay itself is never read through viper, which
// folds key case.
type Settings struct {
	// OverlayPath is the overlay file to load, empty for none
	OverlayPath string

	// LogLevel overrides DEBUG_OVERRIDES when set
	LogLevel string
}

// InitConfig reads the settings file and environment into viper. Without
// CfgFile, config.yaml is searched in $HOME/.rogue-overrides and the working
// directory, and a missing file is not an error.
func InitConfig() error {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildDirPath())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	return handleConfigFile()
}

func setDefaults() {
	viper.SetDefault(KeyOverlayPath, "")
	viper.SetDefault(KeyLogLevel, "")
}

func handleConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && CfgFile == "" {
		log.Debug("No config file found, using defaults and environment")
		return nil
	}
	return oops.
		In("config").
		With("file", CfgFile).
		Wrapf(err, "read config file")
}

// CurrentSettings returns the settings currently held by viper.
func CurrentSettings() Settings {
	return Settings{
		OverlayPath: viper.GetString(KeyOverlayPath),
		LogLevel:    viper.GetString(KeyLogLevel),
	}
}

// Apply sets the log level when the settings name one.
func (s Settings) Apply() {
	if s.LogLevel != "" {
		logger.SetLevel(s.LogLevel)
		log.WithField("level", s.LogLevel).Debug("log level set from settings")
	}
}

func BuildDirPath() string {
	return filepath.Join(util.UserHome(), BaseDirName)
}
