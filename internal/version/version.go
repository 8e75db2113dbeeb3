// Package version exposes build metadata stamped in via -ldflags.
package version

// Release builds set these with -ldflags "-X ...". The zero values
// identify a local, unstamped build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
