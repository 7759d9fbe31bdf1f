package buildsys

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrNoArtifact indicates the dialect's artifact file is not in the build directory.
var ErrNoArtifact = errors.New("artifact not found")

// ConfigError reports that a dialect cannot be bound to a build directory.
type ConfigError struct {
	Dialect Dialect
	Dir     string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("expected `%s` in %s", e.Dialect.Artifact(), e.Dir)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CheckArtifact returns the artifact path of d inside dir, or a *ConfigError
// if it does not exist or dir is not a directory. Other stat failures are
// returned unwrapped.
func CheckArtifact(d Dialect, dir string) (string, error) {
	path := JoinPath(dir, d.Artifact())
	if _, err := os.Stat(path); err != nil {
		// ENOTDIR: dir is a regular file, so it holds no artifact either.
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", &ConfigError{Dialect: d, Dir: dir, Err: ErrNoArtifact}
		}
		return "", err
	}
	return path, nil
}
