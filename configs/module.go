package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Paths lists the config files to load, in priority order. Binaries provide
// it from their flags.
type Paths []string

// Schema constrains the interpreter config files.
const Schema = `
prompt?: string
history_file?: string
dump_window?: int & >0
`

func (Module) Loader(
	paths Paths,
) Loader {
	return NewLoader(paths, Schema)
}

// DefaultPaths returns the user config file, if there is one.
func DefaultPaths() Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, ".config", "bf", "config.cue")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return Paths{path}
}
