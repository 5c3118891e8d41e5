package domain

// DefaultOpenCommand is the editor invocation used when openCommand is not configured.
var DefaultOpenCommand = []string{"code"}

// Settings is a snapshot of the user configuration.
// A snapshot is handed to the controller and only replaced on an explicit change notification.
type Settings struct {
	// ProjectsLocation lists the raw root locations, possibly using the home placeholder.
	ProjectsLocation []string
	// IgnoredFolders names entries that are never discovered as projects.
	IgnoredFolders []string
	// ShowProjectNameInStatusBar toggles the status indicator.
	ShowProjectNameInStatusBar bool
	// OpenInNewWindow asks the workspace to open projects in a new window.
	OpenInNewWindow bool
	// OpenCommand is the program and leading arguments used to open a folder.
	OpenCommand []string
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		ShowProjectNameInStatusBar: true,
		OpenCommand:                append([]string(nil), DefaultOpenCommand...),
	}
}

// OpenRequest describes one request to open a folder.
type OpenRequest struct {
	Path      string
	NewWindow bool
	Command   []string
}
