package buildsys

import "strings"

// DebugBundle is added to the compiler flags when debugging is requested.
const DebugBundle = "-DDEBUG -g -ggdb"

// DebugFlags returns DebugBundle if opts.Debug is set.
func DebugFlags(opts Options) string {
	if opts.Debug {
		return DebugBundle
	}
	return ""
}

// JoinFlags joins the non-empty tokens with single spaces.
func JoinFlags(tokens ...string) string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}

// IncludePath renders include directories the way node-gyp expects them.
func IncludePath(dirs []string) string {
	return JoinFlags(dirs...)
}

// LinkFlag returns the -L option for dir, or "" if dir is empty.
func LinkFlag(dir string) string {
	if dir == "" {
		return ""
	}
	return "-L" + dir
}

// RpathFlag returns the linker option that records dir as a runtime search path.
func RpathFlag(dir string) string {
	if dir == "" {
		return ""
	}
	return "-Wl,-rpath=" + dir
}
