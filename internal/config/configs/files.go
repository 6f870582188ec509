package configs

import "strings"

// File store backends.
const (
	FilesBackendLocal = "local"
	FilesBackendDrive = "drive"
)

// Files selects where creative assets are read from. With the local backend
// file IDs are paths relative to Dir and folder IDs are sub-directories.
type Files struct {
	Backend string `env:"BACKEND" envDefault:"local"`
	Dir     string `env:"DIR" envDefault:"."`
}

func (c Files) BackendName() string {
	return strings.ToLower(strings.TrimSpace(c.Backend))
}
