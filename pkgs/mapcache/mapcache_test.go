package mapcache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/geo-data/mapcache-config/pkgs/buildsys"
	"github.com/google/go-cmp/cmp"
)

func writeArtifacts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestDetectPrefersLegacy(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		"Makefile.inc":   "prefix = /usr/local\n",
		"CMakeCache.txt": "CMAKE_INSTALL_PREFIX:PATH=/opt/mapcache\n",
	})
	r, err := Detect(dir, buildsys.Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if r.Dialect() != buildsys.LegacyMakefile {
		t.Errorf("Dialect() = %v, want %v", r.Dialect(), buildsys.LegacyMakefile)
	}
	if got, _ := r.Libraries(); got != "-L/usr/local/lib" {
		t.Errorf("Libraries() = %q", got)
	}
}

func TestDetectCMake(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		"CMakeCache.txt": "CMAKE_INSTALL_PREFIX:PATH=/opt/mapcache\nGDAL_INCLUDE_DIR:PATH=/opt/gdal/include\n",
	})
	r, err := Detect(dir, buildsys.Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if r.Dialect() != buildsys.CacheFile {
		t.Fatalf("Dialect() = %v, want %v", r.Dialect(), buildsys.CacheFile)
	}
	if r.BuildDir() != dir {
		t.Errorf("BuildDir() = %q, want %q", r.BuildDir(), dir)
	}

	tests := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"IncludePath", r.IncludePath, filepath.Join(dir, "include") + " /opt/gdal/include"},
		{"Libraries", r.Libraries, "-L/opt/mapcache/lib"},
		{"Ldflags", r.Ldflags, "-Wl,-rpath=/opt/mapcache/lib"},
		{"Cflags", r.Cflags, ""},
	}
	for _, tt := range tests {
		got, err := tt.get()
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDetectNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := Detect(dir, buildsys.Options{})
	var derr *DetectionError
	if !errors.As(err, &derr) {
		t.Fatalf("Detect: err = %v, want *DetectionError", err)
	}
	if !errors.Is(err, ErrNotDetected) {
		t.Errorf("err does not match ErrNotDetected")
	}
	if !errors.Is(err, buildsys.ErrNoArtifact) {
		t.Errorf("err does not unwrap to buildsys.ErrNoArtifact")
	}
	if len(derr.Tried) != 2 {
		t.Errorf("Tried = %v, want one error per dialect", derr.Tried)
	}
	want := "expected `Makefile.inc` or `CMakeCache.txt` in " + dir
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDetectBuildDirIsFile(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{"notadir": ""})
	_, err := Detect(filepath.Join(dir, "notadir"), buildsys.Options{})
	var derr *DetectionError
	if !errors.As(err, &derr) {
		t.Fatalf("Detect on a regular file: err = %v, want *DetectionError", err)
	}
	if !errors.Is(err, ErrNotDetected) {
		t.Errorf("err does not match ErrNotDetected: %v", err)
	}
}

func TestDetectMissingDir(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "does-not-exist"), buildsys.Options{})
	if !errors.Is(err, ErrNotDetected) {
		t.Fatalf("Detect on missing dir: err = %v, want ErrNotDetected", err)
	}
}

func TestProbeAgreesWithDetect(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		sub   string
	}{
		{"none", nil, ""},
		{"legacy", map[string]string{"Makefile.inc": ""}, ""},
		{"cmake", map[string]string{"CMakeCache.txt": ""}, ""},
		{"both", map[string]string{"Makefile.inc": "", "CMakeCache.txt": ""}, ""},
		{"unrelated", map[string]string{"Makefile": "", "CMakeLists.txt": ""}, ""},
		{"regular file", map[string]string{"notadir": ""}, "notadir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(writeArtifacts(t, tt.files), tt.sub)
			d, perr := Probe(dir)
			r, derr := Detect(dir, buildsys.Options{})
			if (perr == nil) != (derr == nil) {
				t.Fatalf("Probe err = %v, Detect err = %v", perr, derr)
			}
			if perr != nil {
				if !errors.Is(perr, ErrNotDetected) || !errors.Is(derr, ErrNotDetected) {
					t.Errorf("Probe err = %v, Detect err = %v; want ErrNotDetected", perr, derr)
				}
				if d != buildsys.Unknown {
					t.Errorf("Probe on error = %v, want %v", d, buildsys.Unknown)
				}
				if perr.Error() != derr.Error() {
					t.Errorf("Probe err %q != Detect err %q", perr, derr)
				}
				return
			}
			if d != r.Dialect() {
				t.Errorf("Probe = %v, Detect = %v", d, r.Dialect())
			}
		})
	}
}

func TestResolve(t *testing.T) {
	if _, err := Resolve(Inputs{}); !errors.Is(err, ErrMissingBuildDir) {
		t.Fatalf("Resolve without build dir: err = %v, want ErrMissingBuildDir", err)
	}

	dir := writeArtifacts(t, map[string]string{
		"Makefile.inc": "prefix = /usr/local\nGDAL_INC = /usr/include/gdal\n",
	})
	r, err := Resolve(Inputs{BuildDir: dir, LibDir: "/override/lib", Debug: true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := r.Ldflags(); got != "-Wl,-rpath=/override/lib" {
		t.Errorf("Ldflags() = %q", got)
	}
	if got, _ := r.Cflags(); got != "/usr/include/gdal -DDEBUG -g -ggdb" {
		t.Errorf("Cflags() = %q", got)
	}
}

func TestNoLibDir(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{"Makefile.inc": "CC = gcc\n"})
	r, err := Resolve(Inputs{BuildDir: dir})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, err := r.Libraries(); err != nil || got != "" {
		t.Errorf("Libraries() = %q, %v; want empty", got, err)
	}
	if got, err := r.Ldflags(); err != nil || got != "" {
		t.Errorf("Ldflags() = %q, %v; want empty", got, err)
	}
}

func TestSnapshot(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{
		"CMakeCache.txt": "CMAKE_INSTALL_PREFIX:PATH=/opt/mapcache\nGDAL_INCLUDE_DIR:PATH=/opt/gdal/include\n",
	})
	r, err := Resolve(Inputs{BuildDir: dir, Debug: true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := r.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	want := &Snapshot{
		Dialect:     "cmake",
		BuildDir:    dir,
		Artifact:    filepath.Join(dir, "CMakeCache.txt"),
		LibDir:      "/opt/mapcache/lib",
		IncludeDirs: []string{filepath.Join(dir, "include"), "/opt/gdal/include"},
		Libraries:   "-L/opt/mapcache/lib",
		Ldflags:     "-Wl,-rpath=/opt/mapcache/lib",
		Cflags:      "-DDEBUG -g -ggdb",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesAreNotCached(t *testing.T) {
	dir := writeArtifacts(t, map[string]string{"Makefile.inc": "prefix = /a\n"})
	r, err := Resolve(Inputs{BuildDir: dir})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got, _ := r.Libraries(); got != "-L/a/lib" {
		t.Fatalf("Libraries() = %q", got)
	}
	if err := os.WriteFile(r.Artifact(), []byte("prefix = /b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Libraries(); got != "-L/b/lib" {
		t.Errorf("Libraries() after rewrite = %q, want %q", got, "-L/b/lib")
	}
}
