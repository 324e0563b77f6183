package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo describes the running binary
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Backend   string `json:"backend,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/BabyBank_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion reports build details and the active listing backend
// @Summary Version information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(backendMode string) http.HandlerFunc {
	info := VersionInfo{
		Version:   resolveVersion(),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		Backend:   backendMode,
	}
	fillFromBuildInfo(&info)

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// resolveVersion prefers the linker value, then $VERSION
func resolveVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// fillFromBuildInfo uses the VCS stamp go build embeds when ldflags were not set
func fillFromBuildInfo(info *VersionInfo) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		}
	}
}
