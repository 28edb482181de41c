// Package config assembles the build step's configuration.
//
// The source and build roots come from the meta-build environment. Toolchain
// settings can additionally come from a YAML file, found either at an
// explicit path or under the XDG config directories, and from a dotenv file
// whose entries are added to the toolchain's environment. The resulting
// [Config] is built once at startup and passed explicitly to the build step.
//
// A configuration file looks like:
//
//	toolchain: /opt/rust/bin/cargo
//	args: [--locked]
//	env:
//	  RUSTFLAGS: -C target-cpu=native
package config
