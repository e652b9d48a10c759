package schemefile

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/milk9111/controls/scheme"
)

const defaultsName = "defaults.yaml"

//go:embed defaults.yaml
var DefaultsFS embed.FS

// ReadDefaults returns the default scheme file, preferring a copy on disk
// under schemefile/ so it can be edited while the game runs.
func ReadDefaults() ([]byte, error) {
	if data, err := os.ReadFile(diskDefaultsPath()); err == nil {
		return data, nil
	}
	return DefaultsFS.ReadFile(defaultsName)
}

// Defaults decodes the default schemes. Each call returns fresh records.
func Defaults() ([]*scheme.Scheme, error) {
	data, err := ReadDefaults()
	if err != nil {
		return nil, err
	}
	return Decode(FormatYAML, data)
}

func diskDefaultsPath() string {
	return filepath.Join("schemefile", defaultsName)
}
