package utils

import "path/filepath"

// BackupSuffix is appended to a file path to get its rolling backup path.
const BackupSuffix = ".bak"

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Clean(filepath.Join(baseDir, path))
}

// BackupPath returns the sibling backup path for path (<path>.bak).
func BackupPath(path string) string {
	return path + BackupSuffix
}
