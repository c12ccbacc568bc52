package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/effective-patterns/internal/messages"
)

// FileName is the config file looked up in the working directory.
const FileName = ".effective-patterns.toml"

var homeDir = homedir.Dir

// Paths holds the candidate config locations in lookup order.
type Paths struct {
	Local string
	User  string
}

// DefaultPaths returns the config locations for the working directory cwd.
func DefaultPaths(cwd string) (Paths, error) {
	home, err := homeDir()
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigResolveHomeErrFmt, err)
	}
	return Paths{
		Local: filepath.Join(cwd, FileName),
		User:  filepath.Join(home, ".config", "effective-patterns", "config.toml"),
	}, nil
}
