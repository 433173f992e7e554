package util

import (
	"os"

	"github.com/rogue-tools/overrides/lib/util/logger"
)

var log = logger.GetLogger()

// UserHome returns the current user's home directory.
// Falls back to $HOME, then USERPROFILE, then the working directory when
// os.UserHomeDir fails, so settings lookup still works inside containers
// where $HOME is unset.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir
	}
	if home := os.Getenv("HOME"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
		return home
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
		return home
	}
	if wd, wdErr := os.Getwd(); wdErr == nil {
		log.WithError(err).Warn("os.UserHomeDir and $HOME unavailable; falling back to working directory")
		return wd
	}
	return "."
}
