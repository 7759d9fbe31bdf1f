package buildsys

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// CMakeCache.txt may hold very long list values.
const maxLineSize = 1 << 20

// Scan reads the file at path top to bottom and returns the trimmed first
// capture group of every trimmed line matching pattern. Empty captures are
// skipped. If first is set, scanning stops at the first capture.
func Scan(path string, pattern *regexp.Regexp, first bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		m := pattern.FindStringSubmatch(strings.TrimSpace(s.Text()))
		if len(m) < 2 {
			continue
		}
		v := strings.TrimSpace(m[1])
		if v == "" {
			continue
		}
		values = append(values, v)
		if first {
			return values, nil
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

// DefaultLibDir implements the lib dir policy shared by the dialects: the
// override wins, otherwise <prefix>/lib from the first prefix line, otherwise "".
func DefaultLibDir(opts Options, path string, prefix *regexp.Regexp) (string, error) {
	if opts.LibDir != "" {
		return opts.LibDir, nil
	}
	values, err := Scan(path, prefix, true)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}
	return JoinPath(values[0], "lib"), nil
}
