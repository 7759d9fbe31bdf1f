package buildsys

import "fmt"

// Dialect identifies the MapCache build system that produced a build directory.
type Dialect int

// Unknown is returned alongside an error when no dialect could be bound.
const Unknown Dialect = -1

const (
	// LegacyMakefile is the autotools build used before MapCache 1.0.
	LegacyMakefile Dialect = iota
	// CacheFile is the CMake build used from MapCache 1.0 on.
	CacheFile
)

// Dialects returns every supported dialect in detection order.
func Dialects() []Dialect {
	return []Dialect{LegacyMakefile, CacheFile}
}

// Artifact returns the name of the file the dialect leaves in the build directory.
func (d Dialect) Artifact() string {
	switch d {
	case LegacyMakefile:
		return "Makefile.inc"
	case CacheFile:
		return "CMakeCache.txt"
	}
	return ""
}

func (d Dialect) String() string {
	switch d {
	case LegacyMakefile:
		return "autotools"
	case CacheFile:
		return "cmake"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// Options carries the caller supplied inputs shared by every dialect.
type Options struct {
	// LibDir, when set, is returned by LibDir verbatim and no file is parsed.
	LibDir string
	// Debug appends the debug flag bundle to Cflags.
	Debug bool
}

// Config captures what a dependent build needs from a MapCache build directory.
// Every accessor re-reads the artifact file.
type Config interface {
	Dialect() Dialect
	BuildDir() string

	// Path of the artifact file inside BuildDir.
	Artifact() string

	// LibDir returns the directory to link against, or "" if none is recorded.
	LibDir() (string, error)

	// IncludeDirs always starts with <BuildDir>/include.
	IncludeDirs() ([]string, error)

	// Cflags returns extra compiler flags joined by single spaces.
	Cflags() (string, error)
}
