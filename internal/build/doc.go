// Package build produces a release artifact and places it for the meta-build.
//
// A build runs as one linear step with two stages. The invoke stage runs the
// toolchain's release build ("cargo build --release") with its working
// directory set to the source root. The place stage copies the binary the
// toolchain left under target/release to its destination under the build
// root, keeping the file name and permission bits and overwriting whatever
// was there. The place stage never starts unless the invoke stage succeeded,
// and neither stage is retried.
//
// Failures are reported as [ErrBuild] or [ErrPlacement], each wrapping the
// underlying cause. The toolchain's own output is streamed by the runtime
// and is not repeated in the error.
//
// Example usage:
//
//	result, err := build.Run(ctx, rt, build.Options{
//	    SourceRoot: "/proj",
//	    BuildRoot:  "/out",
//	    Artifact:   "mytool",
//	    Toolchain:  "cargo",
//	})
//	if err != nil {
//	    return err
//	}
package build
