// Package runtime runs the external tools a generated project needs (git and
// the Python venv module) and inspects their versions for "ihb doctor".
// The Runner interface lets the generator be exercised without spawning
// processes.
package runtime
