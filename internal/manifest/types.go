package manifest

import "github.com/ihb-labs/ihb/internal/project"

// ConfigFile is the project-relative path of the generated config.
const ConfigFile = "configs/config.yaml"

// ProjectConfig mirrors configs/config.yaml. Field order is the order the
// keys are written in.
type ProjectConfig struct {
	ProjectType  string `yaml:"project_type"`
	Framework    string `yaml:"framework"`
	Model        string `yaml:"model"`
	Augmentation bool   `yaml:"augmentation"`
	Wandb        bool   `yaml:"wandb"`
}

// FromSpec extracts the recorded fields of a project specification.
func FromSpec(s project.Spec) ProjectConfig {
	return ProjectConfig{
		ProjectType:  s.Type,
		Framework:    s.Framework,
		Model:        s.Model,
		Augmentation: s.Augment,
		Wandb:        s.Wandb,
	}
}
