package ui

import (
	"strings"

	"github.com/milk9111/controls/scheme"
	"gopkg.in/yaml.v3"
)

const debugHeader = "Click text to change the control scheme."

// FormatScheme renders s as YAML for display.
func FormatScheme(s *scheme.Scheme) string {
	if s == nil {
		return "no active scheme"
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return s.Name
	}
	return strings.TrimRight(string(data), "\n")
}

func debugLabel(s *scheme.Scheme) string {
	return debugHeader + "\n\n" + FormatScheme(s)
}
