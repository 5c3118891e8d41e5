package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the name of the project you are working in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.Workspace = workspaceFlag(cmd)
			opts.Detailed, _ = cmd.Flags().GetBool("detailed")
			return c.app.Status(cmd.Context(), opts)
		},
	}
	addWorkspaceFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the settings file and keep the project label up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.Workspace = workspaceFlag(cmd)
			opts.Detailed, _ = cmd.Flags().GetBool("detailed")
			return c.app.Watch(cmd.Context(), opts)
		},
	}
	addWorkspaceFlags(cmd)
	return cmd
}

func addWorkspaceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("workspace", "w", "", "Folder to report on (default: current directory)")
	cmd.Flags().BoolP("detailed", "d", false, "Also print the project path and the command that switches projects")
}

// workspaceFlag returns --workspace as an absolute path, falling back to the working directory.
func workspaceFlag(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("workspace")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		return wd
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
