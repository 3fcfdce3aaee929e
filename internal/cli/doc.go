// Package cli defines the Cobra command tree for the ihb CLI. Each file in
// this package builds one top-level command (create, config, doctor, etc.).
// Commands delegate to internal packages for the actual work and only handle
// flag parsing, output formatting, and exit status.
package cli
