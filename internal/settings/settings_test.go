package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "settings.json"))

	assert.True(t, s.IgnoreCloudMounts)
	assert.Equal(t, DefaultBigFileThreshold, s.BigFileThreshold)
	assert.Empty(t, s.IgnoredPaths)
}

func TestLoadCorruptFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Load(path)
	assert.True(t, s.IgnoreCloudMounts)
	assert.Equal(t, DefaultBigFileThreshold, s.BigFileThreshold)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	s := Load(path)
	s.AddIgnoredPath("/tmp/ignored")
	s.AddIgnoredPath("/tmp/other")
	require.NoError(t, s.Save())

	loaded := Load(path)
	assert.Equal(t, []string{"/tmp/ignored", "/tmp/other"}, loaded.IgnoredPaths)
	assert.True(t, loaded.IgnoreCloudMounts)
}

func TestSaveOnlyWhenDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := Load(path)
	require.NoError(t, s.Save())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "clean settings must not be written")

	s.AddIgnoredPath("/x")
	require.NoError(t, s.Save())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestAddIgnoredPathDeduplicates(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "settings.json"))
	s.AddIgnoredPath("/a")
	s.AddIgnoredPath("/a")

	assert.Equal(t, []string{"/a"}, s.IgnoredPaths)
}

func TestFilterIsASnapshot(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "settings.json"))
	s.AddIgnoredPath("/frozen")

	filter := s.Filter()
	s.AddIgnoredPath("/added-later")

	assert.True(t, filter.IsPathIgnored("/frozen"))
	assert.False(t, filter.IsPathIgnored("/added-later"))
}

func TestFilterExplicitPaths(t *testing.T) {
	f := PathFilter{ignored: []string{"/data/skip"}}

	assert.True(t, f.IsPathIgnored("/data/skip"))
	assert.False(t, f.IsPathIgnored("/data/skip/child"), "only the exact path is listed")
	assert.False(t, f.IsPathIgnored("/data/keep"))
}

func TestFilterLinuxMountPrefixes(t *testing.T) {
	f := PathFilter{cloudMounts: true, goos: "linux"}

	assert.True(t, f.IsPathIgnored("/mnt"))
	assert.True(t, f.IsPathIgnored("/mnt/backup"))
	assert.True(t, f.IsPathIgnored("/snap/firefox"))
	assert.False(t, f.IsPathIgnored("/mntx"))
	assert.False(t, f.IsPathIgnored("/home/user"))
}

func TestFilterCloudFoldersUnderHome(t *testing.T) {
	home := filepath.Join("/", "home", "user")
	f := PathFilter{cloudMounts: true, home: home, goos: "linux"}

	assert.True(t, f.IsPathIgnored(filepath.Join(home, "Dropbox")))
	assert.True(t, f.IsPathIgnored(filepath.Join(home, "OneDrive")))
	assert.False(t, f.IsPathIgnored(filepath.Join(home, "Documents")))
	assert.False(t, f.IsPathIgnored(home))
}

func TestFilterICloudOnDarwin(t *testing.T) {
	home := filepath.Join("/", "Users", "user")
	icloud := filepath.Join(home, "Library", "Mobile Documents", "com~apple~CloudDocs")

	darwin := PathFilter{cloudMounts: true, home: home, goos: "darwin"}
	linux := PathFilter{cloudMounts: true, home: home, goos: "linux"}

	assert.True(t, darwin.IsPathIgnored(icloud))
	assert.False(t, linux.IsPathIgnored(icloud))
}

func TestFilterDisabledHeuristics(t *testing.T) {
	home := filepath.Join("/", "home", "user")
	f := PathFilter{cloudMounts: false, home: home, goos: "linux"}

	assert.False(t, f.IsPathIgnored("/mnt/backup"))
	assert.False(t, f.IsPathIgnored(filepath.Join(home, "Dropbox")))
}
