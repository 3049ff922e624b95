// Package version exposes the build version of the tabview binary.
package version

// version is set at build time via
// -ldflags "-X github.com/rshade/tabview/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Build-time injection target

// GetVersion returns the version string baked into the binary.
func GetVersion() string {
	return version
}
