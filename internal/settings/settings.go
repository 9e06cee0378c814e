// Package settings stores user preferences in
// ~/.disk-mosaic/settings.json: the ignore list consulted by the
// scanner, the cloud-mount heuristics toggle and the big-file display
// threshold.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultBigFileThreshold is the size above which a file gets the
// accented block style.
const DefaultBigFileThreshold int64 = 10_000_000

// Settings is the persisted configuration. Mutations go through the
// setter methods so dirty tracking stays accurate.
type Settings struct {
	IgnoredPaths      []string `json:"ignored_path"`
	IgnoreCloudMounts bool     `json:"ignore_cloud_mounts"`
	BigFileThreshold  int64    `json:"big_file_threshold"`

	path  string
	dirty bool
}

// DefaultPath returns the settings file location under the home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".disk-mosaic", "settings.json"), nil
}

// Load reads settings from path. A missing or unreadable file yields
// the defaults; the user gets a working application either way.
func Load(path string) *Settings {
	s := &Settings{
		IgnoreCloudMounts: true,
		BigFileThreshold:  DefaultBigFileThreshold,
		path:              path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, s); err != nil {
		return &Settings{
			IgnoreCloudMounts: true,
			BigFileThreshold:  DefaultBigFileThreshold,
			path:              path,
		}
	}
	if s.BigFileThreshold <= 0 {
		s.BigFileThreshold = DefaultBigFileThreshold
	}
	return s
}

// AddIgnoredPath appends a path to the ignore list and marks the
// settings dirty. Duplicates are ignored.
func (s *Settings) AddIgnoredPath(path string) {
	for _, p := range s.IgnoredPaths {
		if p == path {
			return
		}
	}
	s.IgnoredPaths = append(s.IgnoredPaths, path)
	s.dirty = true
}

// Save writes the settings file if anything changed since Load.
func (s *Settings) Save() error {
	if !s.dirty || s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings folder: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}

	s.dirty = false
	return nil
}

// Filter captures an immutable snapshot of the ignore configuration.
// A running scan keeps this snapshot for its full duration; later
// mutations of the Settings never reach it.
func (s *Settings) Filter() PathFilter {
	ignored := make([]string, len(s.IgnoredPaths))
	copy(ignored, s.IgnoredPaths)

	home, _ := os.UserHomeDir()
	return PathFilter{
		ignored:     ignored,
		cloudMounts: s.IgnoreCloudMounts,
		home:        home,
		goos:        runtime.GOOS,
	}
}

// PathFilter is a frozen exclusion predicate, safe to hand to a
// background scan.
type PathFilter struct {
	ignored     []string
	cloudMounts bool
	home        string
	goos        string
}

// IsPathIgnored reports whether the absolute path is excluded, either
// explicitly or by the cloud-mount heuristics.
func (f PathFilter) IsPathIgnored(path string) bool {
	for _, p := range f.ignored {
		if p == path {
			return true
		}
	}
	return f.cloudMounts && f.isCommonCloudPath(path)
}

// cloudFolders are well-known provider directories directly under HOME.
var cloudFolders = []string{
	"Dropbox",
	"OneDrive",
	"OneDrive - Personal",
	"Google Drive",
	"Google Drive (Shared)",
	"Box",
	"Nextcloud",
	"SynologyDrive",
	"pCloud Drive",
	"MEGA",
}

// linuxCloudPrefixes are mount areas that frequently hold cloud or
// special filesystems.
var linuxCloudPrefixes = []string{"/run/user", "/media", "/mnt", "/snap"}

func (f PathFilter) isCommonCloudPath(path string) bool {
	if f.goos == "linux" {
		for _, prefix := range linuxCloudPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
		}
	}

	if f.home == "" {
		return false
	}
	rel, err := filepath.Rel(f.home, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")

	// iCloud lives under ~/Library/Mobile Documents/com~apple~CloudDocs.
	if f.goos == "darwin" && len(parts) >= 3 &&
		parts[0] == "Library" && parts[1] == "Mobile Documents" && parts[2] == "com~apple~CloudDocs" {
		return true
	}

	for _, name := range cloudFolders {
		if parts[0] == name {
			return true
		}
	}
	return false
}
