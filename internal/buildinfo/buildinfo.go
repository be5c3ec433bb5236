// Package buildinfo exposes version metadata injected at link time, e.g.:
//
//	go build -ldflags "-X github.com/dmitrijs2005/ipfsuploader/internal/buildinfo.Version=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// String returns a single-line build description.
func String() string {
	return fmt.Sprintf("ipfsuploader %s (commit=%s, date=%s)", Version, Commit, Date)
}

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
