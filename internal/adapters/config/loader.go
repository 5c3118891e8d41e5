// Package config provides the settings loader for prj.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at path.
// A missing file yields the default settings.
func (l *Loader) Load(path string) (domain.Settings, error) {
	var file File
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	if !found {
		l.Logger.Debug(fmt.Sprintf("no config file at %s, using defaults", path))
		return domain.DefaultSettings(), nil
	}
	return l.toSettings(file.Projects), nil
}

func (l *Loader) toSettings(dto ProjectsDTO) domain.Settings {
	settings := domain.DefaultSettings()
	settings.ProjectsLocation = slices.Clone(dto.ProjectsLocation)

	for _, name := range dto.IgnoredFolders {
		if strings.ContainsAny(name, `/\`) {
			l.Logger.Warn(fmt.Sprintf("ignored folder %q contains a path separator and never matches", name))
			continue
		}
		settings.IgnoredFolders = append(settings.IgnoredFolders, name)
	}

	if dto.ShowProjectNameInStatusBar != nil {
		settings.ShowProjectNameInStatusBar = *dto.ShowProjectNameInStatusBar
	}
	if dto.OpenInNewWindow != nil {
		settings.OpenInNewWindow = *dto.OpenInNewWindow
	}
	if len(dto.OpenCommand) > 0 {
		settings.OpenCommand = slices.Clone(dto.OpenCommand)
	}
	return settings
}

func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return false, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}
