package domain

import "go.trai.ch/zerr"

var (
	// ErrNoConfiguredRoots is returned when projectsLocation is empty or absent.
	ErrNoConfiguredRoots = zerr.New("no project location configured")

	// ErrInvalidRoots is returned when none of the configured locations is an existing directory.
	ErrInvalidRoots = zerr.New("no configured project location is an existing directory")

	// ErrEmptyProjectName is returned when a project name is empty after trimming.
	ErrEmptyProjectName = zerr.New("project name is empty")

	// ErrDuplicateName is returned when a project with the same name is already known.
	ErrDuplicateName = zerr.New("project already exists")

	// ErrInvalidProjectName is returned when a project name cannot be used as a directory name.
	ErrInvalidProjectName = zerr.New("project name must not contain path separators")

	// ErrUnknownRoot is returned when a project is created under a directory that is not a configured root.
	ErrUnknownRoot = zerr.New("directory is not a configured project location")

	// ErrProjectCreateFailed is returned when the project directory cannot be created.
	ErrProjectCreateFailed = zerr.New("failed to create project directory")

	// ErrRootReadFailed is returned when a project location cannot be listed.
	ErrRootReadFailed = zerr.New("failed to read project location")

	// ErrOpenFailed is returned when the workspace refuses to open a folder.
	ErrOpenFailed = zerr.New("failed to open project")

	// ErrActionFailed marks an error that has already been shown to the user.
	ErrActionFailed = zerr.New("action failed")

	// ErrStoreCreateFailed is returned when the state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")

	// ErrStoreReadFailed is returned when a stored value cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stored value")

	// ErrStoreWriteFailed is returned when a value cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write stored value")

	// ErrStoreClearFailed is returned when a stored value cannot be removed.
	ErrStoreClearFailed = zerr.New("failed to clear stored value")

	// ErrInvalidStoreKey is returned when a store key cannot be mapped to a file name.
	ErrInvalidStoreKey = zerr.New("invalid store key")

	// ErrCatalogUnmarshalFailed is returned when the persisted project set is corrupt.
	ErrCatalogUnmarshalFailed = zerr.New("failed to unmarshal project set")

	// ErrCatalogMarshalFailed is returned when the project set cannot be serialized.
	ErrCatalogMarshalFailed = zerr.New("failed to marshal project set")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidOutputMode is returned for an unknown --output-mode value.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrWatchFailed is returned when the config file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch config file")
)
