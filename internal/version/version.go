package version

import (
	"fmt"
	"runtime"
)

// Build metadata that can be set at build time via ldflags:
// go build -ldflags "-X .../internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ) -X .../internal/version.BuildCommit=$(git rev-parse --short HEAD)"
var (
	BuildTime   = "unknown"
	BuildCommit = "unknown"
)

// GetBuildInfo returns build metadata for debugging and identification.
// The application version itself comes from configuration (APP_VERSION),
// not from the build.
func GetBuildInfo() string {
	return fmt.Sprintf("built: %s, commit: %s, go: %s",
		BuildTime, BuildCommit, runtime.Version())
}
