// Package version provides information about the build version of the service.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Set via -ldflags "-X 'c4ctexts/internal/core/version.version=v0.1.0'
// -X 'c4ctexts/internal/core/version.commit=abcd' -X 'c4ctexts/internal/core/version.date=2026-01-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Get returns the build information, falling back to the vcs stamp from the go toolchain
// when ldflags were not supplied
func Get() BuildInfo {
	bi := BuildInfo{Service: "c4ctexts", Version: version, Commit: commit, Date: date}
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
}

// UserAgent is sent on upstream requests
func UserAgent() string { return "c4ctexts/" + version }
