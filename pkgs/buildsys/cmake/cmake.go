// Package cmake reads MapCache build directories configured with CMake.
package cmake

import (
	"regexp"

	"github.com/geo-data/mapcache-config/pkgs/buildsys"
)

var (
	prefixLine     = regexp.MustCompile(`^CMAKE_INSTALL_PREFIX:PATH\s*=\s*(.+)$`)
	includeDirLine = regexp.MustCompile(`^\w+_INCLUDE_DIR:PATH\s*=\s*(.+)$`)
)

// CMake reads the CMakeCache.txt of a MapCache >= 1.0 build.
type CMake struct {
	buildDir   string
	cmakeCache string
	opts       buildsys.Options
}

var _ buildsys.Config = (*CMake)(nil)

// New binds buildDir. It fails with a *buildsys.ConfigError if the directory
// has no CMakeCache.txt.
func New(buildDir string, opts buildsys.Options) (*CMake, error) {
	path, err := buildsys.CheckArtifact(buildsys.CacheFile, buildDir)
	if err != nil {
		return nil, err
	}
	return &CMake{
		buildDir:   buildDir,
		cmakeCache: path,
		opts:       opts,
	}, nil
}

func (c *CMake) Dialect() buildsys.Dialect { return buildsys.CacheFile }

func (c *CMake) BuildDir() string { return c.buildDir }

func (c *CMake) Artifact() string { return c.cmakeCache }

// LibDir returns <CMAKE_INSTALL_PREFIX>/lib.
func (c *CMake) LibDir() (string, error) {
	return buildsys.DefaultLibDir(c.opts, c.cmakeCache, prefixLine)
}

// IncludeDirs returns <buildDir>/include followed by every *_INCLUDE_DIR
// cache entry in file order.
func (c *CMake) IncludeDirs() ([]string, error) {
	dirs, err := buildsys.Scan(c.cmakeCache, includeDirLine, false)
	if err != nil {
		return nil, err
	}
	return append([]string{buildsys.JoinPath(c.buildDir, "include")}, dirs...), nil
}

// Cflags does not consult the cache; only the debug bundle is returned.
func (c *CMake) Cflags() (string, error) {
	return buildsys.DebugFlags(c.opts), nil
}
