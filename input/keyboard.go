package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/controls/scheme"
)

// Key is a live key state. It is refreshed by Keyboard.Update once per frame.
type Key struct {
	code     string
	key      ebiten.Key
	down     bool
	justDown bool
	justUp   bool
	duration int
	released bool
}

func (k *Key) IsDown() bool       { return k.down }
func (k *Key) IsUp() bool         { return !k.down }
func (k *Key) JustPressed() bool  { return k.justDown }
func (k *Key) JustReleased() bool { return k.justUp }
func (k *Key) KeyCode() string    { return k.code }
func (k *Key) Key() ebiten.Key    { return k.key }

// Duration is the number of frames the key has been held.
func (k *Key) Duration() int { return k.duration }

// Released reports whether the key was released from its Keyboard and no
// longer updates.
func (k *Key) Released() bool { return k.released }

func (k *Key) update(pressed bool) {
	k.justDown = pressed && !k.down
	k.justUp = !pressed && k.down
	k.down = pressed
	if pressed {
		k.duration++
	} else {
		k.duration = 0
	}
}

// Keyboard binds scheme controls to Ebiten keys. One Key exists per bound
// ebiten.Key, so schemes sharing a code share its handle.
type Keyboard struct {
	keys     map[ebiten.Key]*Key
	captures map[ebiten.Key]struct{}
	combos   []*Combo
	frame    int

	pressed     func(ebiten.Key) bool
	justPressed func([]ebiten.Key) []ebiten.Key
}

var _ scheme.KeyBinder = (*Keyboard)(nil)

func NewKeyboard() *Keyboard {
	return &Keyboard{
		keys:        make(map[ebiten.Key]*Key),
		captures:    make(map[ebiten.Key]struct{}),
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.AppendJustPressedKeys,
	}
}

// BindKeys returns a handle per action. Every code is parsed before any key
// is bound, so an unknown code binds nothing.
func (kb *Keyboard) BindKeys(controls scheme.Controls) (map[string]scheme.KeyHandle, error) {
	parsed := make(map[string]ebiten.Key, len(controls))
	var errs []error
	for _, action := range controls.Actions() {
		k, err := ParseKey(controls[action])
		if err != nil {
			errs = append(errs, fmt.Errorf("action %q: %w", action, err))
			continue
		}
		parsed[action] = k
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	out := make(map[string]scheme.KeyHandle, len(parsed))
	for action, k := range parsed {
		out[action] = kb.addKey(k, controls[action])
	}
	return out, nil
}

func (kb *Keyboard) addKey(k ebiten.Key, code string) *Key {
	kb.captures[k] = struct{}{}
	if existing, ok := kb.keys[k]; ok {
		return existing
	}
	key := &Key{code: strings.ToUpper(strings.TrimSpace(code)), key: k}
	kb.keys[k] = key
	return key
}

// ReleaseKey stops updating h. Handles from another binder are ignored.
func (kb *Keyboard) ReleaseKey(h scheme.KeyHandle) {
	k, ok := h.(*Key)
	if !ok || k == nil {
		return
	}
	if kb.keys[k.key] == k {
		delete(kb.keys, k.key)
	}
	k.released = true
	k.down = false
	k.justDown = false
	k.justUp = false
	k.duration = 0
}

func (kb *Keyboard) ReleaseCapture(code string) {
	k, err := ParseKey(code)
	if err != nil {
		return
	}
	delete(kb.captures, k)
}

// Captured reports whether code is claimed by a bound scheme. Game code
// uses it to keep its own hotkeys off scheme keys.
func (kb *Keyboard) Captured(code string) bool {
	k, err := ParseKey(code)
	if err != nil {
		return false
	}
	_, ok := kb.captures[k]
	return ok
}

// Bound returns the number of live key handles.
func (kb *Keyboard) Bound() int {
	return len(kb.keys)
}

func (kb *Keyboard) Frame() int {
	return kb.frame
}

func (kb *Keyboard) AddCombo(c *Combo) {
	if c == nil {
		return
	}
	kb.combos = append(kb.combos, c)
}

func (kb *Keyboard) RemoveCombo(c *Combo) {
	for i, existing := range kb.combos {
		if existing == c {
			kb.combos = append(kb.combos[:i], kb.combos[i+1:]...)
			return
		}
	}
}

func (kb *Keyboard) Combos() int {
	return len(kb.combos)
}

// Update polls every bound key and feeds this frame's presses to combos.
func (kb *Keyboard) Update() {
	kb.frame++

	for k, key := range kb.keys {
		key.update(kb.pressed(k))
	}

	if len(kb.combos) == 0 {
		return
	}

	pressed := kb.justPressed(nil)
	kept := kb.combos[:0]
	for _, c := range kb.combos {
		matched := false
		for _, k := range pressed {
			if c.Feed(kb.frame, k) {
				matched = true
			}
		}
		if matched && c.cfg.DeleteOnMatch {
			continue
		}
		kept = append(kept, c)
	}
	kb.combos = kept
}
