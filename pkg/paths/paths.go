// Package paths resolves the well-known per-user directories docstow
// operates on. Resolution follows the XDG user-dirs specification via
// adrg/xdg, with environment variable overrides taking precedence.
//
// Nothing is cached: every call re-reads the environment, so a caller
// that changes DOCSTOW_DOCUMENTS_DIR between operations sees the new
// location immediately.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/docstow/pkg/errors"
)

// Environment variable names
const (
	// EnvDocumentsDir overrides the per-user Documents directory
	EnvDocumentsDir = "DOCSTOW_DOCUMENTS_DIR"

	// EnvCacheDir overrides the per-user caches directory
	EnvCacheDir = "DOCSTOW_CACHE_DIR"

	// EnvCloudDir points at a cloud-synced container directory
	EnvCloudDir = "DOCSTOW_CLOUD_DIR"
)

// AppDirName is the subdirectory name used under shared XDG locations
const AppDirName = "docstow"

// Resolver resolves a single directory. The docstore takes one of
// these so tests can substitute a fixed or failing root.
type Resolver func() (string, error)

// Paths resolves the per-user directories used by docstow
type Paths interface {
	// DocumentsDir returns the per-user Documents directory, or an
	// error with code ErrDocumentsFolderNotFound when the host cannot
	// supply one.
	DocumentsDir() (string, error)

	// CachesDir returns the per-user caches directory for docstow, or
	// an error with code ErrCachesFolderNotFound.
	CachesDir() (string, error)

	// CloudDir returns the cloud-synced container directory, or an
	// error with code ErrCloudContainerNotFound. There is no
	// cross-platform default; only the environment override can
	// supply it.
	CloudDir() (string, error)
}

type paths struct{}

// New creates a Paths instance backed by the host environment
func New() Paths {
	return &paths{}
}

func (p *paths) DocumentsDir() (string, error) {
	if dir := os.Getenv(EnvDocumentsDir); dir != "" {
		return expandHome(dir), nil
	}

	// Re-evaluate the XDG environment on every call so overrides set
	// after process start are honored.
	xdg.Reload()
	if xdg.UserDirs.Documents == "" {
		return "", errors.New(errors.ErrDocumentsFolderNotFound,
			"host did not provide a per-user Documents directory")
	}
	return xdg.UserDirs.Documents, nil
}

func (p *paths) CachesDir() (string, error) {
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		return expandHome(dir), nil
	}

	xdg.Reload()
	if xdg.CacheHome == "" {
		return "", errors.New(errors.ErrCachesFolderNotFound,
			"host did not provide a per-user caches directory")
	}
	return filepath.Join(xdg.CacheHome, AppDirName), nil
}

func (p *paths) CloudDir() (string, error) {
	if dir := os.Getenv(EnvCloudDir); dir != "" {
		return expandHome(dir), nil
	}
	return "", errors.New(errors.ErrCloudContainerNotFound,
		"no cloud container configured; set "+EnvCloudDir)
}

// expandHome expands a leading ~/ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
