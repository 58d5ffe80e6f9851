package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}

// SelectOutputFile returns the appropriate file handle for output, based
// on the provided file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath shortens a path to maxWidth runes, keeping the tail,
// which carries the filename and is the part users recognize.
func TruncatePath(path string, maxWidth int) string {
	if maxWidth <= 3 || len(path) <= maxWidth {
		return path
	}
	return "..." + path[len(path)-maxWidth+3:]
}

// GetCacheDBFilePath returns the path to the SQLite DB file for the
// durable aggregate cache.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tempograph_cache.db"
	}
	return filepath.Join(homeDir, ".tempograph_cache.db")
}

// BaseNameWithoutExt strips the directory and extension from a path.
func BaseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
