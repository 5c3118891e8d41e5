package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the directory name used below the user config and state directories.
	AppName = "prj"

	// ConfigFileName is the name of the settings file.
	ConfigFileName = "config.yaml"

	// ConfigEnvVar overrides the settings file location.
	ConfigEnvVar = "PRJ_CONFIG"

	// StateEnvVar overrides the state directory.
	StateEnvVar = "PRJ_STATE_DIR"

	// HomePlaceholder is replaced by the user's home directory in configured locations.
	HomePlaceholder = "$home"

	// ProjectsKey is the store key of the persisted project set.
	ProjectsKey = "projects"

	// PreviousProjectsKey is the store key of the carry-forward snapshot taken on invalidation.
	PreviousProjectsKey = "projects.previous"

	// RootsKey is the store key of the fingerprint of the last resolved roots.
	RootsKey = "roots"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// ProjectDirPerm is the permission for newly created project directories (rwxr-xr-x).
	ProjectDirPerm = 0o755

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigPath returns the settings file location.
// PRJ_CONFIG wins, then $XDG_CONFIG_HOME/prj/config.yaml (or the platform equivalent).
func DefaultConfigPath() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+AppName, ConfigFileName)
	}
	return filepath.Join(dir, AppName, ConfigFileName)
}

// DefaultStatePath returns the directory holding persisted state.
// PRJ_STATE_DIR wins, then $XDG_STATE_HOME/prj, then ~/.local/state/prj.
func DefaultStatePath() string {
	if p := os.Getenv(StateEnvVar); p != "" {
		return p
	}
	if p := os.Getenv("XDG_STATE_HOME"); p != "" {
		return filepath.Join(p, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("."+AppName, "state")
	}
	return filepath.Join(home, ".local", "state", AppName)
}
