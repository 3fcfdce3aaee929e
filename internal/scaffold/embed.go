package scaffold

import "embed"

//go:embed scaffolds/*.tmpl
var scaffoldFS embed.FS
