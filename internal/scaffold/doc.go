// Package scaffold generates a minimal machine-learning project from embedded
// templates. It powers the "ihb create" command: it lays out the data, models,
// src, and configs directories, writes the README, .gitignore, training stub,
// and config, adds the optional stubs selected by flags, and shells out to git
// and the Python venv module when asked.
//
// Generation is a single forward pass. Existing directories are reused and
// existing files are overwritten without prompting.
package scaffold
