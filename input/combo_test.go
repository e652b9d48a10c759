package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func feed(c *Combo, start int, keys ...ebiten.Key) int {
	matches := 0
	for i, k := range keys {
		if c.Feed(start+i, k) {
			matches++
		}
	}
	return matches
}

var konami = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowUp,
	ebiten.KeyArrowDown, ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyB, ebiten.KeyA,
}

func TestKonamiCode(t *testing.T) {
	fired := 0
	c := KonamiCode(func() { fired++ })

	if got := feed(c, 1, konami...); got != 1 || fired != 1 {
		t.Fatalf("expected one match, got %d (fired %d)", got, fired)
	}
	if c.Progress() != 0 || c.Matched() {
		t.Fatalf("konami code rearms after a match")
	}
	feed(c, 20, konami...)
	if fired != 2 {
		t.Fatalf("expected second match, fired %d", fired)
	}
}

func TestComboWrongKey(t *testing.T) {
	tests := []struct {
		name         string
		cfg          ComboConfig
		keys         []ebiten.Key
		wantProgress int
	}{
		{
			name:         "reset_on_wrong_key",
			cfg:          ComboConfig{ResetOnWrongKey: true},
			keys:         []ebiten.Key{ebiten.KeyA, ebiten.KeyB, ebiten.KeyX},
			wantProgress: 0,
		},
		{
			name:         "wrong_key_restarts_sequence",
			cfg:          ComboConfig{ResetOnWrongKey: true},
			keys:         []ebiten.Key{ebiten.KeyA, ebiten.KeyB, ebiten.KeyA},
			wantProgress: 1,
		},
		{
			name:         "ignore_wrong_key",
			cfg:          ComboConfig{},
			keys:         []ebiten.Key{ebiten.KeyA, ebiten.KeyX, ebiten.KeyB},
			wantProgress: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCombo([]string{"A", "B", "C"}, tc.cfg, nil)
			if err != nil {
				t.Fatalf("new combo: %v", err)
			}
			feed(c, 1, tc.keys...)
			if c.Progress() != tc.wantProgress {
				t.Fatalf("expected progress %d, got %d", tc.wantProgress, c.Progress())
			}
		})
	}
}

func TestComboMaxKeyDelay(t *testing.T) {
	c, _ := NewCombo([]string{"A", "B"}, ComboConfig{ResetOnWrongKey: true, MaxKeyDelay: 10}, nil)
	c.Feed(1, ebiten.KeyA)
	if c.Feed(30, ebiten.KeyB) {
		t.Fatalf("slow press should not complete the combo")
	}
	c.Feed(40, ebiten.KeyA)
	if !c.Feed(45, ebiten.KeyB) {
		t.Fatalf("expected match inside the delay")
	}
	if !c.Matched() {
		t.Fatalf("combo without ResetOnMatch stays matched")
	}
	if c.Feed(46, ebiten.KeyA) {
		t.Fatalf("matched combo ignores input until reset")
	}
}

func TestNewComboErrors(t *testing.T) {
	if _, err := NewCombo(nil, DefaultComboConfig(), nil); err == nil {
		t.Fatalf("expected error for empty combo")
	}
	if _, err := NewCombo([]string{"A", "NOPE"}, DefaultComboConfig(), nil); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestKeyboardCombos(t *testing.T) {
	kb, dev := newTestKeyboard()
	fired := 0
	c, _ := NewCombo([]string{"A", "B"}, ComboConfig{ResetOnWrongKey: true, DeleteOnMatch: true}, func() { fired++ })
	kb.AddCombo(c)

	dev.fresh = []ebiten.Key{ebiten.KeyA}
	kb.Update()
	dev.fresh = []ebiten.Key{ebiten.KeyB}
	kb.Update()

	if fired != 1 {
		t.Fatalf("expected combo to fire once, got %d", fired)
	}
	if kb.Combos() != 0 {
		t.Fatalf("DeleteOnMatch combo should be removed")
	}
}
