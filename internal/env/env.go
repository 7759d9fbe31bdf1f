package env

import (
	"os"

	"github.com/geo-data/mapcache-config/pkgs/mapcache"
	"github.com/joho/godotenv"
)

// Names set by `npm config set mapcache:<key> <value>`.
const (
	BuildDirKey = "npm_config_mapcache_build_dir"
	LibDirKey   = "npm_config_mapcache_lib_dir"
	DebugKey    = "npm_config_mapcache_debug"
)

// Load reads the resolution inputs from the process environment. Keys missing
// from the environment are looked up in envFiles; a later file overrides an
// earlier one. The process environment is never modified.
func Load(envFiles ...string) (mapcache.Inputs, error) {
	fileEnv := map[string]string{}
	if len(envFiles) > 0 {
		m, err := godotenv.Read(envFiles...)
		if err != nil {
			return mapcache.Inputs{}, err
		}
		fileEnv = m
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	var in mapcache.Inputs
	in.BuildDir, _ = lookup(BuildDirKey)
	in.LibDir, _ = lookup(LibDirKey)
	_, in.Debug = lookup(DebugKey)
	return in, nil
}
