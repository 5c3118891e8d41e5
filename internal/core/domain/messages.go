package domain

// User-facing messages shown through the prompter.
const (
	MsgListPlaceholder    = "Enter the project name to open the project"
	MsgReloadDescription  = "Reload the list of items"
	MsgCreatePrompt       = "Please enter the project name"
	MsgSelectRoot         = "Please select a project folder"
	MsgEmptyName          = "Project name cannot be empty"
	MsgDuplicateName      = "The project already exists"
	MsgInvalidName        = "Project name must not contain path separators"
	MsgNoConfiguredRoots  = "projects.projectsLocation: please configure the project directory"
	MsgInvalidRoots       = "projects.projectsLocation: project directory must be an existing folder"
	MsgCreateFailedPrefix = "Failed to create project: "
	MsgOpenFailedPrefix   = "Project directory open failed: "
	MsgStatusIcon         = "▸"
)

const (
	// ReloadLabel is the label of the synthetic entry appended to the project list.
	ReloadLabel = "$reload"

	// StatusCommand is the command run when the status indicator is activated.
	StatusCommand = "list"
)
