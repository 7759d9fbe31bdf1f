package buildsys

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinPath appends elem to dir without cleaning dir, so values such as
// `${prefix}/..` or `./build` read from an artifact survive unchanged.
func JoinPath(dir, elem string) string {
	if dir == "" {
		return elem
	}
	if strings.HasSuffix(dir, "/") || os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + elem
	}
	return dir + string(filepath.Separator) + elem
}
