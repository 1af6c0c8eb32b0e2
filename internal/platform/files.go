package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Saved file naming
const (
	DefaultTextExtension = ".txt"
	DefaultFileName      = "summary"
	MaxDuplicateSuffix   = 1000
)

// Characters that are not allowed in file names on at least one supported OS
var invalidNameChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_", "\x00", "_",
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	// Fyne Android apps run as libdist.so
	isAndroid := runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"

	if isAndroid {
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeFileName turns an arbitrary identifier into a safe base file name
// with an extension.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, "\\", "/")))
	name = invalidNameChars.Replace(name)
	name = strings.Trim(name, ". ")
	if name == "" {
		name = DefaultFileName
	}
	if filepath.Ext(name) == "" {
		name += DefaultTextExtension
	}
	return name
}

// SaveTextFile writes text into dir under a sanitized version of name. An
// existing file is never overwritten: "name (1).txt", "name (2).txt" and so on
// are tried instead. The final path is returned.
func SaveTextFile(dir, name, text string) (string, error) {
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", errors.Wrapf(err, "create directory %s", dir)
	}

	base := SanitizeFileName(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 0; i < MaxDuplicateSuffix; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", errors.Wrapf(err, "create %s", path)
		}

		if _, err := f.WriteString(text); err != nil {
			f.Close()
			return "", errors.Wrapf(err, "write %s", path)
		}
		if err := f.Close(); err != nil {
			return "", errors.Wrapf(err, "close %s", path)
		}
		return path, nil
	}

	return "", errors.Errorf("too many files named %s in %s", base, dir)
}
