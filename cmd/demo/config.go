package main

import (
	"os"
	"path/filepath"
	"strings"
)

// CLI is the demo's command line. Values can also come from controls.yaml or
// controls.toml in the working directory or the user config directory.
type CLI struct {
	Config  string  `help:"Path to a YAML or TOML config file." type:"path"`
	Schemes string  `help:"Scheme file (yaml, toml or json) loaded at startup." type:"path"`
	Save    string  `help:"Write the schemes to this file on exit." type:"path"`
	Watch   bool    `help:"Reload the scheme file when it changes on disk."`
	Debug   bool    `help:"Show the scheme debug panel." default:"true" negatable:""`
	Scene   string  `help:"Scene to start in." enum:"basic,combo" default:"basic"`
	Speed   float64 `help:"Player speed in pixels per second." default:"240"`
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if after, ok := strings.CutPrefix(a, "--config="); ok {
			return after
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("CONTROLS_CONFIG")
}

// configCandidatePaths lists config files in priority order for each loader.
func configCandidatePaths(userPath string) (yamlPaths, tomlPaths []string) {
	switch filepath.Ext(userPath) {
	case ".yaml", ".yml":
		yamlPaths = append(yamlPaths, userPath)
	case ".toml":
		tomlPaths = append(tomlPaths, userPath)
	}

	dirs := []string{}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "controls"))
	}

	for _, dir := range dirs {
		yamlPaths = append(yamlPaths, filepath.Join(dir, "controls.yaml"), filepath.Join(dir, "controls.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "controls.toml"))
	}
	return yamlPaths, tomlPaths
}
