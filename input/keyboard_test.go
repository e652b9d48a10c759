package input

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/controls/scheme"
)

type fakeDevice struct {
	held  map[ebiten.Key]bool
	fresh []ebiten.Key
}

func newTestKeyboard() (*Keyboard, *fakeDevice) {
	dev := &fakeDevice{held: map[ebiten.Key]bool{}}
	kb := NewKeyboard()
	kb.pressed = func(k ebiten.Key) bool { return dev.held[k] }
	kb.justPressed = func(dst []ebiten.Key) []ebiten.Key {
		out := append(dst, dev.fresh...)
		dev.fresh = nil
		return out
	}
	return kb, dev
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		code string
		want ebiten.Key
	}{
		{"W", ebiten.KeyW},
		{"w", ebiten.KeyW},
		{" up ", ebiten.KeyArrowUp},
		{"SHIFT", ebiten.KeyShift},
		{"SPACE", ebiten.KeySpace},
		{"F11", ebiten.KeyF11},
		{"7", ebiten.KeyDigit7},
		{"ArrowLeft", ebiten.KeyArrowLeft},
	}

	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			got, err := ParseKey(c.code)
			if err != nil {
				t.Fatalf("parse %q: %v", c.code, err)
			}
			if got != c.want {
				t.Fatalf("parse %q: expected %v, got %v", c.code, c.want, got)
			}
		})
	}

	for _, bad := range []string{"", "NOTAKEY"} {
		if _, err := ParseKey(bad); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("parse %q: expected ErrUnknownKey, got %v", bad, err)
		}
	}
}

func TestKeyboardBindAndUpdate(t *testing.T) {
	kb, dev := newTestKeyboard()

	handles, err := kb.BindKeys(scheme.Controls{"up": "W", "jump": "SPACE"})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	up := handles["up"].(*Key)
	if up.KeyCode() != "W" {
		t.Fatalf("expected code W, got %q", up.KeyCode())
	}

	dev.held[ebiten.KeyW] = true
	kb.Update()
	if !up.IsDown() || !up.JustPressed() || up.Duration() != 1 {
		t.Fatalf("expected fresh press, got down=%v just=%v dur=%d", up.IsDown(), up.JustPressed(), up.Duration())
	}

	kb.Update()
	if up.JustPressed() || up.Duration() != 2 {
		t.Fatalf("expected held key, got just=%v dur=%d", up.JustPressed(), up.Duration())
	}

	dev.held[ebiten.KeyW] = false
	kb.Update()
	if up.IsDown() || !up.JustReleased() || up.Duration() != 0 {
		t.Fatalf("expected release")
	}
	if handles["jump"].IsDown() {
		t.Fatalf("jump was never pressed")
	}
}

func TestKeyboardSharesHandles(t *testing.T) {
	kb, _ := newTestKeyboard()

	a, _ := kb.BindKeys(scheme.Controls{"jump": "SPACE", "up": "W"})
	b, _ := kb.BindKeys(scheme.Controls{"fire": "space", "up": "UP"})
	if a["jump"] != b["fire"] {
		t.Fatalf("expected one handle per key")
	}
	if kb.Bound() != 3 {
		t.Fatalf("expected 3 bound keys, got %d", kb.Bound())
	}
}

func TestKeyboardUnknownCodeBindsNothing(t *testing.T) {
	kb, _ := newTestKeyboard()
	_, err := kb.BindKeys(scheme.Controls{"up": "W", "warp": "HYPERSPACE"})
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if kb.Bound() != 0 || kb.Captured("W") {
		t.Fatalf("failed bind should not register keys")
	}
}

func TestKeyboardRelease(t *testing.T) {
	kb, dev := newTestKeyboard()
	handles, _ := kb.BindKeys(scheme.Controls{"up": "W", "down": "S"})
	if !kb.Captured("w") || !kb.Captured("S") {
		t.Fatalf("bound keys should be captured")
	}

	kb.ReleaseKey(handles["up"])
	kb.ReleaseCapture("W")
	if kb.Bound() != 1 || kb.Captured("W") {
		t.Fatalf("expected W released")
	}

	dev.held[ebiten.KeyW] = true
	kb.Update()
	up := handles["up"].(*Key)
	if up.IsDown() || !up.Released() {
		t.Fatalf("released key should not update")
	}

	again, _ := kb.BindKeys(scheme.Controls{"up": "W"})
	if again["up"] == handles["up"] {
		t.Fatalf("rebinding after release should create a new handle")
	}

	kb.ReleaseKey(nil)
	kb.ReleaseCapture("NOTAKEY")
}

func TestKeyboardRegistryIntegration(t *testing.T) {
	kb, dev := newTestKeyboard()
	r := scheme.New(scheme.NewStore(), kb)
	if _, err := r.CreateCursorKeys(true); err != nil {
		t.Fatalf("cursor keys: %v", err)
	}
	if _, err := r.CreateWASDKeys(false); err != nil {
		t.Fatalf("wasd keys: %v", err)
	}

	dev.held[ebiten.KeyArrowUp] = true
	kb.Update()
	if !r.Keys().IsDown("up") {
		t.Fatalf("expected cursor up held")
	}

	if err := r.SetActive(scheme.ByName(scheme.WASDKeysName)); err != nil {
		t.Fatalf("set active: %v", err)
	}
	kb.Update()
	if r.Keys().IsDown("up") {
		t.Fatalf("wasd up should not follow the arrow key")
	}
	dev.held[ebiten.KeyW] = true
	kb.Update()
	if !r.Keys().IsDown("up") {
		t.Fatalf("expected wasd up held")
	}

	if err := r.Delete(scheme.ByName(scheme.WASDKeysName), true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.ActiveName() != scheme.CursorKeysName {
		t.Fatalf("expected cursor keys to take over, got %q", r.ActiveName())
	}
	if kb.Captured("W") {
		t.Fatalf("destroyed scheme should drop its captures")
	}
	if !kb.Captured("SPACE") {
		t.Fatalf("cursor keys rebind SPACE")
	}
}
