// Package fileutils provides file system helpers for locating transaction files.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExists checks if a regular file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists at the given path
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListFilesWithExtensions returns the files under dirPath, recursively and in lexical
// order, whose extension matches one of extensions ignoring case.
func ListFilesWithExtensions(dirPath string, extensions ...string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	var files []string
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && hasExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return files, nil
}

// ExpandPaths replaces every directory in paths with the matching files it contains.
// Other paths are kept as given, in place, whether or not they exist.
func ExpandPaths(paths []string, extensions ...string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, p := range paths {
		if !DirectoryExists(p) {
			expanded = append(expanded, p)
			continue
		}
		files, err := ListFilesWithExtensions(p, extensions...)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, files...)
	}
	return expanded, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
