package autotools

import (
	"regexp"

	"github.com/geo-data/mapcache-config/pkgs/buildsys"
)

var (
	prefixLine = regexp.MustCompile(`^prefix\s*=\s*(.+)$`)
	// One line per dependency include variable, e.g. GDAL_INC.
	includeVarLine = regexp.MustCompile(`^[A-Z]+_INC\s*=\s*(.+)$`)
)

// AutoTools reads the Makefile.inc left by MapCache builds before 1.0.
type AutoTools struct {
	buildDir    string
	makefileInc string
	opts        buildsys.Options
}

var _ buildsys.Config = (*AutoTools)(nil)

// New binds buildDir. It fails with a *buildsys.ConfigError if the directory
// has no Makefile.inc.
func New(buildDir string, opts buildsys.Options) (*AutoTools, error) {
	path, err := buildsys.CheckArtifact(buildsys.LegacyMakefile, buildDir)
	if err != nil {
		return nil, err
	}
	return &AutoTools{
		buildDir:    buildDir,
		makefileInc: path,
		opts:        opts,
	}, nil
}

func (a *AutoTools) Dialect() buildsys.Dialect {
	return buildsys.LegacyMakefile
}

func (a *AutoTools) BuildDir() string {
	return a.buildDir
}

func (a *AutoTools) Artifact() string {
	return a.makefileInc
}

// LibDir returns <prefix>/lib for the first `prefix = ...` line.
func (a *AutoTools) LibDir() (string, error) {
	return buildsys.DefaultLibDir(a.opts, a.makefileInc, prefixLine)
}

// IncludeDirs ignores Makefile.inc entirely.
func (a *AutoTools) IncludeDirs() ([]string, error) {
	return []string{buildsys.JoinPath(a.buildDir, "include")}, nil
}

// Cflags collects every *_INC value in file order, followed by the debug
// bundle when requested.
func (a *AutoTools) Cflags() (string, error) {
	incs, err := buildsys.Scan(a.makefileInc, includeVarLine, false)
	if err != nil {
		return "", err
	}
	return buildsys.JoinFlags(append(incs, buildsys.DebugFlags(a.opts))...), nil
}
