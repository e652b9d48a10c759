package main

import (
	"path/filepath"
	"testing"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("CONTROLS_CONFIG", "")

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--config=a.yaml"}, "a.yaml"},
		{[]string{"--debug", "--config", "b.toml"}, "b.toml"},
		{[]string{"--config"}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := findUserConfig(c.args); got != c.want {
			t.Fatalf("findUserConfig(%v) = %q, want %q", c.args, got, c.want)
		}
	}

	t.Setenv("CONTROLS_CONFIG", "env.yaml")
	if got := findUserConfig(nil); got != "env.yaml" {
		t.Fatalf("expected env config, got %q", got)
	}
}

func TestConfigCandidatePaths(t *testing.T) {
	yamlPaths, tomlPaths := configCandidatePaths("custom.toml")
	if len(tomlPaths) == 0 || tomlPaths[0] != "custom.toml" {
		t.Fatalf("user toml path should come first, got %v", tomlPaths)
	}
	for _, p := range yamlPaths {
		if ext := filepath.Ext(p); ext != ".yaml" && ext != ".yml" {
			t.Fatalf("unexpected yaml candidate %q", p)
		}
	}

	yamlPaths, _ = configCandidatePaths("custom.yml")
	if yamlPaths[0] != "custom.yml" {
		t.Fatalf("user yaml path should come first, got %v", yamlPaths)
	}
}
