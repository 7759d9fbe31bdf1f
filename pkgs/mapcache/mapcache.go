// Package mapcache detects how a MapCache build directory was configured and
// derives the compiler and linker options needed to build against it.
package mapcache

import (
	"errors"
	"fmt"

	"github.com/geo-data/mapcache-config/pkgs/buildsys"
	"github.com/geo-data/mapcache-config/pkgs/buildsys/autotools"
	"github.com/geo-data/mapcache-config/pkgs/buildsys/cmake"
	"github.com/qiniu/x/log"
)

var (
	// ErrMissingBuildDir is returned by Resolve when no build directory was supplied.
	ErrMissingBuildDir = errors.New("mapcache build directory is not set (npm config set mapcache:build_dir)")

	// ErrNotDetected matches every *DetectionError.
	ErrNotDetected = errors.New("mapcache build system not detected")
)

// DetectionError reports a build directory that no dialect recognises.
type DetectionError struct {
	Dir   string
	Tried []error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("expected `%s` or `%s` in %s",
		buildsys.LegacyMakefile.Artifact(), buildsys.CacheFile.Artifact(), e.Dir)
}

func (e *DetectionError) Unwrap() []error {
	return append([]error{ErrNotDetected}, e.Tried...)
}

// Inputs is everything the resolution needs from the outside world.
type Inputs struct {
	BuildDir string
	LibDir   string
	Debug    bool
}

func (in Inputs) options() buildsys.Options {
	return buildsys.Options{LibDir: in.LibDir, Debug: in.Debug}
}

// Resolve binds in.BuildDir to the dialect that produced it.
func Resolve(in Inputs) (*Resolved, error) {
	if in.BuildDir == "" {
		return nil, ErrMissingBuildDir
	}
	return Detect(in.BuildDir, in.options())
}

type newFunc func(buildDir string, opts buildsys.Options) (buildsys.Config, error)

// constructors are tried in detection order.
var constructors = []newFunc{
	func(dir string, opts buildsys.Options) (buildsys.Config, error) {
		return autotools.New(dir, opts)
	},
	func(dir string, opts buildsys.Options) (buildsys.Config, error) {
		return cmake.New(dir, opts)
	},
}

// Detect tries the legacy autotools dialect first and falls back to CMake.
// Only a *buildsys.ConfigError moves detection on to the next dialect.
func Detect(buildDir string, opts buildsys.Options) (*Resolved, error) {
	var tried []error
	for _, newConfig := range constructors {
		conf, err := newConfig(buildDir, opts)
		if err == nil {
			log.Debugf("mapcache: %s build detected in %s", conf.Dialect(), buildDir)
			return &Resolved{conf: conf}, nil
		}
		var cerr *buildsys.ConfigError
		if !errors.As(err, &cerr) {
			return nil, err
		}
		log.Debugf("mapcache: %v", err)
		tried = append(tried, err)
	}
	return nil, &DetectionError{Dir: buildDir, Tried: tried}
}

// Probe reports which dialect Detect would bind, using existence checks only.
// On error the dialect is buildsys.Unknown.
func Probe(buildDir string) (buildsys.Dialect, error) {
	var tried []error
	for _, d := range buildsys.Dialects() {
		_, err := buildsys.CheckArtifact(d, buildDir)
		if err == nil {
			return d, nil
		}
		var cerr *buildsys.ConfigError
		if !errors.As(err, &cerr) {
			return buildsys.Unknown, err
		}
		tried = append(tried, err)
	}
	return buildsys.Unknown, &DetectionError{Dir: buildDir, Tried: tried}
}
