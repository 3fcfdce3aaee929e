package runtime

import (
	"fmt"
	"os/exec"
)

// pythonCandidates are tried in order when resolving the interpreter.
var pythonCandidates = []string{"python3", "python"}

// LookupPython returns the name of the first Python interpreter found on
// PATH.
func LookupPython() (string, error) {
	for _, name := range pythonCandidates {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no Python interpreter found on PATH (tried %v)", pythonCandidates)
}
