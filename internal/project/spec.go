// Package project holds the resolved inputs of a single "ihb create" run.
package project

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Built-in defaults applied by the create command when a flag is unset and
// no user default is configured.
const (
	DefaultType      = "cv"
	DefaultFramework = "pytorch"
	DefaultModel     = "resnet50"
)

// Framework identifiers that select a training-script template.
const (
	FrameworkPyTorch    = "pytorch"
	FrameworkTensorFlow = "tensorflow"
)

// Values advertised in help text and by "ihb list". None of them are
// enforced; any string is accepted and echoed into the config.
var (
	KnownTypes      = []string{"cv", "nlp", "tabular"}
	KnownFrameworks = []string{FrameworkPyTorch, FrameworkTensorFlow}
	KnownModels     = []string{"resnet50", "vit", "bert", "custom"}
)

// Spec is the project specification for one create invocation.
type Spec struct {
	Name      string
	Type      string
	Framework string
	Model     string

	Augment bool
	Wandb   bool
	Git     bool
	Docker  bool
	License bool
	Venv    bool
}

// Default returns a Spec for name with the built-in defaults applied.
func Default(name string) Spec {
	return Spec{
		Name:      name,
		Type:      DefaultType,
		Framework: DefaultFramework,
		Model:     DefaultModel,
	}
}

// Validate rejects a blank name and recorded values that would not fit on a
// single config line. The name may be "." or a nested path; the generator
// creates whatever directories it names.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	for _, f := range []struct{ flag, value string }{
		{"type", s.Type},
		{"framework", s.Framework},
		{"model", s.Model},
	} {
		if strings.IndexFunc(f.value, unicode.IsControl) >= 0 {
			return fmt.Errorf("invalid --%s %q: control characters are not allowed", f.flag, f.value)
		}
	}
	return nil
}

// IsPyTorch reports whether the pytorch training template applies. Every
// other framework value falls through to the tensorflow template.
func (s Spec) IsPyTorch() bool {
	return s.Framework == FrameworkPyTorch
}

// Advisories returns informational messages about questionable option
// combinations. They never block generation.
func (s Spec) Advisories() []string {
	var out []string
	if s.Framework == FrameworkTensorFlow && s.Model == "resnet50" {
		out = append(out, "using resnet50 with tensorflow is not recommended.")
	}
	return out
}

// Field is one labelled row of the configuration summary.
type Field struct {
	Label string
	Value string
}

// Summary returns the rows printed under "Project configuration:".
func (s Spec) Summary() []Field {
	return []Field{
		{"Name", s.Name},
		{"Type", s.Type},
		{"Framework", s.Framework},
		{"Model", s.Model},
		{"Augment", strconv.FormatBool(s.Augment)},
		{"W&B", strconv.FormatBool(s.Wandb)},
		{"Git", strconv.FormatBool(s.Git)},
		{"Docker", strconv.FormatBool(s.Docker)},
		{"License", strconv.FormatBool(s.License)},
		{"Venv", strconv.FormatBool(s.Venv)},
	}
}
