// Package config manages user-level settings stored at ~/.ihb/config.yaml.
// The settings supply defaults for "ihb create" flags (project type,
// framework, model) so a user who always starts NLP projects in tensorflow
// does not have to repeat themselves. Every key can also be set through an
// IHB_-prefixed environment variable.
package config
