// Parses the environment, flags and arguments for relstep and runs the step.
//
// The command accepts the following flags:
//
//	-q, --quiet       Only report warnings and errors.
//	-v, --verbose     Include caller information in log output.
//	-d, --debug       Enable debug output.
//	    --version     Show version information and exit.
//
// The requested artifact is the only positional argument. There are no
// subcommands, so every name is a valid artifact. The source and build roots are read from
// MESON_PROJECT_SOURCE_ROOT and MESON_PROJECT_BUILD_ROOT. After parsing, the
// global logger is reconfigured to reflect the final level before the step
// runs. [ExitCode] maps the returned error to the process exit status.
package cli
