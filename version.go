package main

import (
	"strconv"
	"strings"
)

// set with -ldflags "-X main.gitSHA1=... -X main.gitDirty=1"
var (
	version  = "0.1.0"
	gitSHA1  = "unknown"
	gitDirty = "unknown"
)

// Version returns the release with the git commit appended when known.
func Version() string {
	v := version
	if gitSHA1 != "unknown" && strings.Trim(gitSHA1, "0") != "" {
		v += " (git:" + gitSHA1
		if dirty, err := strconv.Atoi(gitDirty); err == nil && dirty != 0 {
			v += "-dirty"
		}
		v += ")"
	}
	return v
}
