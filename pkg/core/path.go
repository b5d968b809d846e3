package core

import (
	"path/filepath"
	"strings"
)

// ToPosixPath converts backslash separators to slashes
func ToPosixPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// ToWin32Path converts slash separators to backslashes
func ToWin32Path(p string) string {
	return strings.ReplaceAll(p, "/", `\`)
}

// ToPlatformPath converts either separator to the host's separator
func ToPlatformPath(p string) string {
	sep := string(filepath.Separator)
	return strings.NewReplacer("/", sep, `\`, sep).Replace(p)
}
