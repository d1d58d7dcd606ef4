// Package version carries build-time version metadata.
package version

// Version contains the application version information.
// Set via build-time ldflags in release builds:
// go build -ldflags "-X github.com/starlink/prologue/internal/version.Version=v1.0.0".
var Version = "unknown"
