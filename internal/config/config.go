package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/cruciblehq/relstep/internal/paths"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Toolchain executable used when none is configured.
const DefaultToolchain = "cargo"

// Fully resolved configuration for one run of the build step.
type Config struct {
	SourceRoot string            // Project root the toolchain builds in.
	BuildRoot  string            // Meta-build output area the artifact is placed under.
	Toolchain  string            // Toolchain executable.
	Args       []string          // Extra arguments appended after "build --release".
	Env        map[string]string // Variables added to the toolchain environment.
}

// Contents of a configuration file.
type File struct {
	Toolchain string            `yaml:"toolchain"`
	Args      []string          `yaml:"args"`
	Env       map[string]string `yaml:"env"`
}

// Inputs to [Load], as gathered by the command line.
type Sources struct {
	SourceRoot string // Value of the source root environment variable.
	BuildRoot  string // Value of the build root environment variable.
	Toolchain  string // Toolchain flag. Overrides the configuration file.
	ConfigFile string // Explicit configuration file. Empty searches the XDG config dirs.
	EnvFile    string // Optional dotenv file.
}

// Builds a [Config] from the given sources.
//
// An explicit configuration file must exist. When none is given, the XDG
// config directories are searched and a missing file is not an error.
// Entries from the dotenv file override entries from the configuration
// file. All failures wrap [ErrConfig].
func Load(src Sources) (*Config, error) {
	cfg := &Config{
		SourceRoot: src.SourceRoot,
		BuildRoot:  src.BuildRoot,
		Env:        make(map[string]string),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	file, err := loadFile(src.ConfigFile)
	if err != nil {
		return nil, err
	}
	cfg.apply(file)

	if src.EnvFile != "" {
		vars, err := godotenv.Read(src.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("%w: env file %s: %w", ErrConfig, src.EnvFile, err)
		}
		maps.Copy(cfg.Env, vars)
	}

	if src.Toolchain != "" {
		cfg.Toolchain = src.Toolchain
	}
	if cfg.Toolchain == "" {
		cfg.Toolchain = DefaultToolchain
	}

	return cfg, nil
}

// Formats the extra environment as sorted "key=value" strings.
func (c *Config) Environ() []string {
	env := make([]string, 0, len(c.Env))
	for _, k := range slices.Sorted(maps.Keys(c.Env)) {
		env = append(env, k+"="+c.Env[k])
	}
	return env
}

// Checks that both roots are present and absolute.
func (c *Config) validate() error {
	if c.SourceRoot == "" {
		return fmt.Errorf("%w: source root is not set", ErrConfig)
	}
	if c.BuildRoot == "" {
		return fmt.Errorf("%w: build root is not set", ErrConfig)
	}
	if !filepath.IsAbs(c.SourceRoot) {
		return fmt.Errorf("%w: source root %q is not absolute", ErrConfig, c.SourceRoot)
	}
	if !filepath.IsAbs(c.BuildRoot) {
		return fmt.Errorf("%w: build root %q is not absolute", ErrConfig, c.BuildRoot)
	}
	return nil
}

// Copies settings from a configuration file.
func (c *Config) apply(f *File) {
	if f == nil {
		return
	}
	c.Toolchain = f.Toolchain
	c.Args = slices.Clone(f.Args)
	maps.Copy(c.Env, f.Env)
}

// Reads the configuration file at path, or the one found under the XDG
// config directories when path is empty. Returns nil when no file applies.
func loadFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		found, ok := paths.ConfigFile()
		if !ok {
			return nil, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	slog.Debug("loaded configuration", "path", path)

	return &f, nil
}
