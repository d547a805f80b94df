// Copyright (C) 2026 NetAutomate
// SPDX-License-Identifier: Apache-2.0


// Package version reports what binary is running. Release builds inject
// the values via -ldflags; anything left blank is filled in from the
// module build info the toolchain embeds, so `go install` builds still
// identify themselves.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags "-X .../pkg/version.version=..." and friends.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuiltAt   string
	GoVersion string
	Platform  string
}

// Current resolves the build identity of the running binary.
func Current() Info {
	info := Info{
		Version:   version,
		Commit:    commit,
		BuiltAt:   date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = setting.Value
				}
			case "vcs.time":
				if info.BuiltAt == "" {
					info.BuiltAt = setting.Value
				}
			}
		}
	}

	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuiltAt == "" {
		info.BuiltAt = "unknown"
	}

	return info
}

func (i Info) String() string {
	return fmt.Sprintf("netorca %s (commit %s, built %s, %s, %s)",
		i.Version, i.Commit, i.BuiltAt, i.GoVersion, i.Platform)
}
