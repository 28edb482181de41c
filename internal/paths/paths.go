package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	appName = "relstep"

	// Name of the user configuration file.
	configName = "config.yaml"
)

// Toolchain release output directory, relative to the source root.
var ReleaseDir = filepath.Join("target", "release")

// Path where the toolchain leaves the binary for the requested artifact.
//
// Only the file name of artifact is used:
//
//	Produced("/proj", "sub/mytool") == "/proj/target/release/mytool"
func Produced(sourceRoot, artifact string) string {
	return filepath.Join(sourceRoot, ReleaseDir, filepath.Base(artifact))
}

// Path where the requested artifact is placed.
//
// A relative artifact is resolved against the build root. An absolute
// artifact already names its location and is used as-is:
//
//	Destination("/out", "mytool")      == "/out/mytool"
//	Destination("/out", "/out/mytool") == "/out/mytool"
func Destination(buildRoot, artifact string) string {
	if filepath.IsAbs(artifact) {
		return filepath.Clean(artifact)
	}
	return filepath.Join(buildRoot, artifact)
}

// Path to the user configuration file, if one exists.
//
//	Linux:   $XDG_CONFIG_HOME/relstep/config.yaml, then $XDG_CONFIG_DIRS
//	macOS:   ~/Library/Application Support/relstep/config.yaml
//
// Returns false when no configuration file is found.
func ConfigFile() (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(appName, configName))
	if err != nil {
		return "", false
	}
	return path, true
}
