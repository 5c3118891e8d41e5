package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File represents the structure of the prj config.yaml file.
type File struct {
	Projects ProjectsDTO `yaml:"projects"`
}

// ProjectsDTO holds the settings under the projects key.
// Booleans are pointers so an absent key keeps its default.
type ProjectsDTO struct {
	ProjectsLocation           StringList `yaml:"projectsLocation"`
	IgnoredFolders             StringList `yaml:"ignoredFolders"`
	ShowProjectNameInStatusBar *bool      `yaml:"showProjectNameInStatusBar"`
	OpenInNewWindow            *bool      `yaml:"openInNewWindow"`
	OpenCommand                StringList `yaml:"openCommand"`
}

// StringList accepts either a single string or a sequence of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = nil
			return nil
		}
		*s = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return zerr.With(zerr.New("expected a string or a list of strings"), "line", node.Line)
	}
}
