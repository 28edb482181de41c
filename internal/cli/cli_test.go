package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/cruciblehq/relstep/internal/build"
	"github.com/cruciblehq/relstep/internal/config"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload) // Runs after the environment is restored.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
}

func parse(t *testing.T, args ...string) (*CLI, func() error) {
	t.Helper()
	var c CLI
	parser, err := newParser(context.Background(), &c)
	require.NoError(t, err)

	kongCtx, err := parser.Parse(args)
	require.NoError(t, err)
	return &c, func() error { return kongCtx.Run() }
}

func TestParseReadsRootsFromEnvironment(t *testing.T) {
	t.Setenv("MESON_PROJECT_SOURCE_ROOT", "/proj")
	t.Setenv("MESON_PROJECT_BUILD_ROOT", "/out")

	c, _ := parse(t, "/out/mytool")

	assert.Equal(t, "/out/mytool", c.Artifact)
	assert.Equal(t, "/proj", c.SourceRoot)
	assert.Equal(t, "/out", c.BuildRoot)
}

func TestParseFlags(t *testing.T) {
	c, _ := parse(t, "-d", "--toolchain", "/usr/bin/cargo", "--env-file", ".env", "mytool")

	assert.True(t, c.Debug)
	assert.Equal(t, "mytool", c.Artifact)
	assert.Equal(t, "/usr/bin/cargo", c.Toolchain)
	assert.Equal(t, ".env", c.EnvFile)
}

func TestParseAcceptsAnyArtifactName(t *testing.T) {
	for _, name := range []string{"build", "version", "help"} {
		c, _ := parse(t, name)
		assert.Equal(t, name, c.Artifact)
	}
}

func TestBuildCommandArtifactNamedLikeKeyword(t *testing.T) {
	s := newScenario(t)
	toolchain := writeToolchain(t, "version", 0)

	_, run := parse(t, "--toolchain", toolchain, "version")
	require.NoError(t, run())

	got, err := os.ReadFile(filepath.Join(s.build, "version"))
	require.NoError(t, err)
	assert.Equal(t, "release", string(got))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&CLI{Debug: true, Quiet: true}).level())
	assert.Equal(t, slog.LevelWarn, (&CLI{Quiet: true}).level())
	assert.Equal(t, slog.LevelInfo, (&CLI{}).level())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitSuccess},
		{name: "build failed", err: fmt.Errorf("%w: exit code 101", build.ErrBuild), want: ExitFailure},
		{name: "placement failed", err: fmt.Errorf("%w: missing", build.ErrPlacement), want: ExitFailure},
		{name: "configuration", err: fmt.Errorf("%w: source root is not set", config.ErrConfig), want: ExitConfigError},
		{name: "artifact", err: fmt.Errorf("%w: %q", build.ErrArtifact, "."), want: ExitConfigError},
		{name: "other", err: os.ErrPermission, want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestNewLoggerPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn, false)

	logger.Info("hidden")
	logger.Warn("shown", "artifact", "mytool")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "artifact=mytool")
}

func TestPtermLevel(t *testing.T) {
	assert.Equal(t, pterm.LogLevelDebug, ptermLevel(slog.LevelDebug))
	assert.Equal(t, pterm.LogLevelInfo, ptermLevel(slog.LevelInfo))
	assert.Equal(t, pterm.LogLevelWarn, ptermLevel(slog.LevelWarn))
	assert.Equal(t, pterm.LogLevelError, ptermLevel(slog.LevelError))
}

// Writes a toolchain stand-in that leaves target/release/<name> behind, or
// fails with the given exit code when it is non-zero.
func writeToolchain(t *testing.T, name string, exitCode int) string {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
[ "$1" = build ] && [ "$2" = --release ] || exit 2
[ %d = 0 ] || exit %d
mkdir -p target/release
printf '%%s' "${RELEASE_MARK:-release}" > target/release/%s
chmod 755 target/release/%s
`, exitCode, exitCode, name, name)
	path := filepath.Join(t.TempDir(), "cargo")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

type scenario struct {
	source string
	build  string
}

func newScenario(t *testing.T) scenario {
	t.Helper()
	isolateXDG(t)
	s := scenario{source: t.TempDir(), build: t.TempDir()}
	t.Setenv("MESON_PROJECT_SOURCE_ROOT", s.source)
	t.Setenv("MESON_PROJECT_BUILD_ROOT", s.build)
	return s
}

func TestBuildCommandPlacesArtifact(t *testing.T) {
	s := newScenario(t)
	toolchain := writeToolchain(t, "mytool", 0)
	dest := filepath.Join(s.build, "mytool")

	_, run := parse(t, "--toolchain", toolchain, dest)
	require.NoError(t, run())

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "release", string(got))
}

func TestBuildCommandEnvFile(t *testing.T) {
	s := newScenario(t)
	toolchain := writeToolchain(t, "mytool", 0)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RELEASE_MARK=from-dotenv\n"), 0o644))

	_, run := parse(t, "--toolchain", toolchain, "--env-file", envFile, "mytool")
	require.NoError(t, run())

	got, err := os.ReadFile(filepath.Join(s.build, "mytool"))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", string(got))
}

func TestBuildCommandBuildFailure(t *testing.T) {
	s := newScenario(t)
	toolchain := writeToolchain(t, "mytool", 101)

	_, run := parse(t, "--toolchain", toolchain, "mytool")
	err := run()
	require.ErrorIs(t, err, build.ErrBuild)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.NoFileExists(t, filepath.Join(s.build, "mytool"))
}

func TestBuildCommandArtifactNameMismatch(t *testing.T) {
	s := newScenario(t)
	toolchain := writeToolchain(t, "othertool", 0)

	_, run := parse(t, "--toolchain", toolchain, "mytool")
	err := run()
	require.ErrorIs(t, err, build.ErrPlacement)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.NoFileExists(t, filepath.Join(s.build, "mytool"))
}

func TestBuildCommandMissingEnvironment(t *testing.T) {
	isolateXDG(t)
	t.Setenv("MESON_PROJECT_SOURCE_ROOT", "")
	t.Setenv("MESON_PROJECT_BUILD_ROOT", "")

	_, run := parse(t, "mytool")
	err := run()
	require.ErrorIs(t, err, config.ErrConfig)
	assert.Equal(t, ExitConfigError, ExitCode(err))
	assert.True(t, strings.Contains(err.Error(), "source root"))
}
