package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/docstow/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/docstow/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/docstow/internal/version.Date={{.Date}}
)

// Full returns the version with commit and build date
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
