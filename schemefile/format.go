package schemefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/controls/scheme"
	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Document is the on-disk layout of a scheme file.
type Document struct {
	Schemes []scheme.Scheme `yaml:"schemes" toml:"schemes" json:"schemes"`
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("schemefile: unsupported format %q", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func Decode(format Format, data []byte) ([]*scheme.Scheme, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("schemefile: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("schemefile: decode %s: %w", format, err)
	}

	out := make([]*scheme.Scheme, 0, len(doc.Schemes))
	for i := range doc.Schemes {
		s := doc.Schemes[i]
		if s.Name == "" {
			return nil, fmt.Errorf("schemefile: scheme %d has no name", i)
		}
		if s.Controls == nil {
			s.Controls = scheme.Controls{}
		}
		out = append(out, &s)
	}
	return out, nil
}

func Marshal(format Format, schemes []*scheme.Scheme) ([]byte, error) {
	doc := Document{Schemes: make([]scheme.Scheme, 0, len(schemes))}
	for _, s := range schemes {
		if s == nil {
			continue
		}
		doc.Schemes = append(doc.Schemes, *s)
	}

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("schemefile: unsupported format %q", format)
	}
}

func Load(path string) ([]*scheme.Scheme, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemefile: read %s: %w", path, err)
	}
	return Decode(format, data)
}

// Save writes schemes to path in the format its extension names.
func Save(path string, schemes []*scheme.Scheme) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return SaveFormat(path, format, schemes)
}

// SaveFormat writes schemes to path in format, whatever the extension.
func SaveFormat(path string, format Format, schemes []*scheme.Scheme) error {
	data, err := Marshal(format, schemes)
	if err != nil {
		return fmt.Errorf("schemefile: marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("schemefile: mkdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("schemefile: write %s: %w", path, err)
	}
	return nil
}

// Apply merges schemes into r: names already in the store are edited in
// place, new names are added.
func Apply(r *scheme.Registry, schemes []*scheme.Scheme) error {
	var errs []error
	for _, s := range schemes {
		if s == nil {
			continue
		}
		if _, err := r.Get(s.Name, false); err == nil {
			if err := r.Edit(scheme.ByName(s.Name), s); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := r.Add(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
