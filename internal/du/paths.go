package du

import (
	"os"
	"strings"
)

// NormalizePath rewrites path separators to the host platform's convention,
// so an argument written with either slash style traverses correctly.
func NormalizePath(path string) string {
	if os.PathSeparator == '\\' {
		return strings.ReplaceAll(path, "/", `\`)
	}

	return strings.ReplaceAll(path, `\`, "/")
}
