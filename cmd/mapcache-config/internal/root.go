package internal

import (
	"fmt"

	"github.com/geo-data/mapcache-config/internal/env"
	"github.com/geo-data/mapcache-config/pkgs/mapcache"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	printInclude   bool
	printLibraries bool
	printLdflags   bool
	printCflags    bool

	buildDirFlag string
	libDirFlag   string
	debugFlag    bool
	envFile      string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "mapcache-config",
	Short: "Output mapcache configuration information to node-gyp",
	Long: `mapcache-config reads a MapCache build directory, configured with either
autotools (Makefile.inc) or CMake (CMakeCache.txt), and prints the options
needed to compile and link against it.

Inputs are taken from the npm configuration environment
(npm config set mapcache:build_dir <dir>) unless given as flags.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
	},
	RunE: runRoot,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&printInclude, "include", false, "output the mapcache include path")
	flags.BoolVar(&printLibraries, "libraries", false, "output the mapcache library link option")
	flags.BoolVar(&printLdflags, "ldflags", false, "output the mapcache library rpath option")
	flags.BoolVar(&printCflags, "cflags", false, "output the mapcache cflag options")

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&buildDirFlag, "build-dir", "", "MapCache build directory (default $"+env.BuildDirKey+")")
	pflags.StringVar(&libDirFlag, "lib-dir", "", "MapCache library directory (default $"+env.LibDirKey+")")
	pflags.BoolVar(&debugFlag, "debug", false, "add debugging compiler flags")
	pflags.StringVar(&envFile, "env-file", "", "read missing npm_config_mapcache_* values from this dotenv file")
	pflags.BoolVarP(&verbose, "verbose", "v", false, "log detection steps to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

// resolve merges flags over the environment and binds the build directory.
func resolve() (*mapcache.Resolved, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	in, err := env.Load(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	if buildDirFlag != "" {
		in.BuildDir = buildDirFlag
	}
	if libDirFlag != "" {
		in.LibDir = libDirFlag
	}
	in.Debug = in.Debug || debugFlag
	log.Debugf("mapcache-config: build_dir=%q lib_dir=%q debug=%v", in.BuildDir, in.LibDir, in.Debug)
	return mapcache.Resolve(in)
}

func runRoot(cmd *cobra.Command, args []string) error {
	r, err := resolve()
	if err != nil {
		return err
	}
	lines, err := outputLines(r)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// outputLines computes every requested line before anything is printed so a
// failure never leaves partial output.
func outputLines(r *mapcache.Resolved) ([]string, error) {
	var lines []string
	if printInclude {
		inc, err := r.IncludePath()
		if err != nil {
			return nil, err
		}
		lines = append(lines, inc)
	}
	if printLibraries {
		libs, err := r.Libraries()
		if err != nil {
			return nil, err
		}
		if libs != "" {
			lines = append(lines, libs)
		}
	}
	if printLdflags {
		// write the library path into the resulting binary
		rpath, err := r.Ldflags()
		if err != nil {
			return nil, err
		}
		if rpath != "" {
			lines = append(lines, rpath)
		}
	}
	if printCflags {
		cflags, err := r.Cflags()
		if err != nil {
			return nil, err
		}
		lines = append(lines, cflags)
	}
	return lines, nil
}
