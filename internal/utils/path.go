package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// dataFilePatterns identify a vocabulary directory.
var dataFilePatterns = []string{"*_data.json", "*_data.msgpack", "*_data.mpk"}

// IsDataDir reports whether path is a directory holding at least one word-synset source.
func IsDataDir(path string) bool {
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return false
	}
	for _, pattern := range dataFilePatterns {
		if matches, err := filepath.Glob(filepath.Join(path, pattern)); err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}

// DataDirCandidates lists where a vocabulary directory named userPath may live, in order:
// the path itself, next to the executable, under the working directory, and
// <configDir>/data.
func DataDirCandidates(userPath, configDir string) []string {
	var candidates []string
	if filepath.IsAbs(userPath) {
		return append(candidates, userPath)
	}
	if execDir, err := GetExecutableDir(); err == nil {
		candidates = append(candidates, filepath.Join(execDir, userPath))
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	if configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, "data"))
	}
	return candidates
}

// ResolveDataDir returns the first candidate that is a data directory. When none
// qualifies userPath is returned unchanged so load errors name what was asked for.
func ResolveDataDir(userPath, configDir string) string {
	for _, path := range DataDirCandidates(userPath, configDir) {
		if IsDataDir(path) {
			log.Debugf("Found data directory: %s", path)
			return path
		}
		log.Debugf("Data directory candidate not valid: %s", path)
	}
	return userPath
}
