package ui

import (
	"strings"
	"testing"

	"github.com/milk9111/controls/scheme"
)

func TestFormatScheme(t *testing.T) {
	if got := FormatScheme(nil); got != "no active scheme" {
		t.Fatalf("unexpected nil format %q", got)
	}

	s := &scheme.Scheme{Name: "wasd", Controls: scheme.Controls{"up": "W"}, Active: true}
	got := FormatScheme(s)
	for _, want := range []string{"name: wasd", "up: W", "active: true"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "on_active") {
		t.Fatalf("empty hook should be omitted:\n%s", got)
	}

	label := debugLabel(s)
	if !strings.HasPrefix(label, debugHeader) {
		t.Fatalf("label should start with the header, got %q", label)
	}
}
