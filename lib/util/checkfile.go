package util

import (
	"os"
)

// Check if a file exists and is readable etc
// returns false if not
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}

// IsRegularFile reports whether fpath exists and is not a directory.
func IsRegularFile(fpath string) bool {
	info, err := os.Stat(fpath)
	return err == nil && info.Mode().IsRegular()
}
