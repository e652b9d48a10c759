package script

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/controls/scheme"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadSource reads a hook script, preferring script/scripts on disk over the
// embedded copy.
func LoadSource(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("script", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// Hook is a compiled activation script. The script sees scheme_name and
// controls, and may assign message.
type Hook struct {
	name     string
	compiled *tengo.Compiled
}

func Compile(name string, src []byte) (*Hook, error) {
	script := tengo.NewScript(src)
	_ = script.Add("scheme_name", "")
	_ = script.Add("controls", map[string]interface{}{})
	_ = script.Add("message", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Hook{name: name, compiled: compiled}, nil
}

func Load(name string) (*Hook, error) {
	src, err := LoadSource(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func (h *Hook) Name() string {
	return h.name
}

// Run executes the hook for s and returns the message it set.
func (h *Hook) Run(s *scheme.Scheme) (string, error) {
	if h == nil || h.compiled == nil || s == nil {
		return "", nil
	}

	controls := make(map[string]interface{}, len(s.Controls))
	for action, code := range s.Controls {
		controls[action] = code
	}

	if err := h.compiled.Set("scheme_name", s.Name); err != nil {
		return "", err
	}
	if err := h.compiled.Set("controls", controls); err != nil {
		return "", err
	}
	if err := h.compiled.Set("message", ""); err != nil {
		return "", err
	}

	if err := h.compiled.Run(); err != nil {
		return "", fmt.Errorf("script: run %s: %w", h.name, err)
	}
	return h.compiled.Get("message").String(), nil
}

// Register loads the hook named by s.OnActive and installs it in handlers.
// Schemes without a hook are skipped.
func Register(handlers scheme.HandlerSet, s *scheme.Scheme) error {
	if s == nil || strings.TrimSpace(s.OnActive) == "" {
		return nil
	}

	hook, err := Load(s.OnActive)
	if err != nil {
		return err
	}

	handlers.Register(s.Name, func(active *scheme.Scheme) error {
		msg, err := hook.Run(active)
		if err != nil {
			return err
		}
		if msg != "" {
			log.Printf("script: %s", msg)
		}
		return nil
	})
	return nil
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(strings.TrimSpace(path))
	if after, ok := strings.CutPrefix(s, "script/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + s
}
