package mapcache

import "github.com/geo-data/mapcache-config/pkgs/buildsys"

// Resolved is a build directory bound to its dialect. Values are derived on
// demand and never cached.
type Resolved struct {
	conf buildsys.Config
}

func (r *Resolved) Dialect() buildsys.Dialect { return r.conf.Dialect() }

func (r *Resolved) BuildDir() string { return r.conf.BuildDir() }

func (r *Resolved) Artifact() string { return r.conf.Artifact() }

// Config returns the underlying dialect parser.
func (r *Resolved) Config() buildsys.Config { return r.conf }

// IncludePath returns the include directories joined by spaces.
func (r *Resolved) IncludePath() (string, error) {
	dirs, err := r.conf.IncludeDirs()
	if err != nil {
		return "", err
	}
	return buildsys.IncludePath(dirs), nil
}

// Libraries returns the -L option, or "" when no lib dir is known.
func (r *Resolved) Libraries() (string, error) {
	dir, err := r.conf.LibDir()
	if err != nil {
		return "", err
	}
	return buildsys.LinkFlag(dir), nil
}

// Ldflags returns the rpath option, or "" when no lib dir is known.
func (r *Resolved) Ldflags() (string, error) {
	dir, err := r.conf.LibDir()
	if err != nil {
		return "", err
	}
	return buildsys.RpathFlag(dir), nil
}

func (r *Resolved) Cflags() (string, error) {
	return r.conf.Cflags()
}

// Snapshot holds every value derived from a build directory.
type Snapshot struct {
	Dialect     string   `yaml:"dialect" toml:"dialect"`
	BuildDir    string   `yaml:"build_dir" toml:"build_dir"`
	Artifact    string   `yaml:"artifact" toml:"artifact"`
	LibDir      string   `yaml:"lib_dir,omitempty" toml:"lib_dir,omitempty"`
	IncludeDirs []string `yaml:"include_dirs" toml:"include_dirs"`
	Libraries   string   `yaml:"libraries,omitempty" toml:"libraries,omitempty"`
	Ldflags     string   `yaml:"ldflags,omitempty" toml:"ldflags,omitempty"`
	Cflags      string   `yaml:"cflags" toml:"cflags"`
}

// Snapshot derives all values at once.
func (r *Resolved) Snapshot() (*Snapshot, error) {
	libDir, err := r.conf.LibDir()
	if err != nil {
		return nil, err
	}
	dirs, err := r.conf.IncludeDirs()
	if err != nil {
		return nil, err
	}
	cflags, err := r.conf.Cflags()
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Dialect:     r.conf.Dialect().String(),
		BuildDir:    r.conf.BuildDir(),
		Artifact:    r.conf.Artifact(),
		LibDir:      libDir,
		IncludeDirs: dirs,
		Libraries:   buildsys.LinkFlag(libDir),
		Ldflags:     buildsys.RpathFlag(libDir),
		Cflags:      cflags,
	}, nil
}
