// Package manifest encodes, parses, and validates the configs/config.yaml file
// written into every generated project. Validation runs the decoded YAML
// through an embedded JSON Schema so that a hand-edited or malformed config is
// reported with the offending key rather than failing later in training code.
package manifest
