package scheme

import (
	"errors"
	"sort"
)

var (
	ErrDuplicatePreset = errors.New("scheme: preset already created")
	ErrSchemeNotFound  = errors.New("scheme: scheme not found")
	ErrNoActiveScheme  = errors.New("scheme: no active scheme")
	ErrNilScheme       = errors.New("scheme: scheme is nil")
)

// Controls maps a logical action name to a key code understood by the KeyBinder.
type Controls map[string]string

// Actions returns the action names in sorted order.
func (c Controls) Actions() []string {
	actions := make([]string, 0, len(c))
	for action := range c {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// Clone returns an independent copy of c.
func (c Controls) Clone() Controls {
	if c == nil {
		return nil
	}
	out := make(Controls, len(c))
	for action, code := range c {
		out[action] = code
	}
	return out
}

// Scheme is a named set of controls. Once added to a Store it is referenced, not copied.
type Scheme struct {
	Name     string   `yaml:"name" toml:"name" json:"name"`
	Controls Controls `yaml:"controls" toml:"controls" json:"controls"`
	Active   bool     `yaml:"active" toml:"active" json:"active"`
	// OnActive names an activation hook. The registry only stores it.
	OnActive string `yaml:"on_active,omitempty" toml:"on_active,omitempty" json:"on_active,omitempty"`
}

// Target identifies a scheme either by name or by reference.
type Target struct {
	name string
	ref  *Scheme
}

func ByName(name string) Target {
	return Target{name: name}
}

func ByRef(s *Scheme) Target {
	return Target{ref: s}
}

func (t Target) String() string {
	if t.ref != nil {
		return t.ref.Name
	}
	return t.name
}

func (t Target) matches(s *Scheme) bool {
	if s == nil {
		return false
	}
	if t.ref != nil {
		return t.ref == s
	}
	return t.name == s.Name
}
