package version

import (
	"fmt"
	"runtime"
)

// Build information, injected via ldflags:
//
//	go build -ldflags "-X github.com/pscheid92/tweetpulse/internal/platform/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info holds complete build information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

// String renders the build info as a single line for the -version flag.
func (i Info) String() string {
	return fmt.Sprintf("tweetpulse %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildTime, i.GoVersion)
}

// LogAttrs returns the build info as slog key/value pairs.
func (i Info) LogAttrs() []any {
	return []any{"version", i.Version, "commit", i.Commit, "go_version", i.GoVersion}
}
