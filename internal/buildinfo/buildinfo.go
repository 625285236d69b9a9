// Package buildinfo exposes version metadata injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/tasklists/internal/buildinfo.buildVersion=v1.2.0 \
//	  -X github.com/dmitrijs2005/tasklists/internal/buildinfo.buildDate=2026-01-02 \
//	  -X github.com/dmitrijs2005/tasklists/internal/buildinfo.buildCommit=abc123"
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	buildVersion = notAvailable
	buildDate    = notAvailable
	buildCommit  = notAvailable
)

// Version returns the build version.
func Version() string {
	return buildVersion
}

// String returns all build data on one line.
func String() string {
	return fmt.Sprintf("%s (date: %s, commit: %s)", buildVersion, buildDate, buildCommit)
}

// PrintBuildData writes build data to w, one value per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
