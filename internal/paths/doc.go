// Provides the paths the build step reads from and writes to.
//
// Artifact paths are derived from the source root, the build root and the
// requested artifact. The toolchain's release output directory is fixed at
// target/release under the source root, and the produced binary is expected
// there under the requested artifact's file name. The optional user
// configuration file follows XDG conventions on Linux and platform-native
// conventions on macOS and Windows, under the "relstep" subdirectory.
package paths
