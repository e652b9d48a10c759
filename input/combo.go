package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type ComboConfig struct {
	// ResetOnWrongKey restarts the sequence when a key out of order is pressed.
	ResetOnWrongKey bool
	// MaxKeyDelay is the most frames allowed between two presses. 0 disables it.
	MaxKeyDelay int
	// ResetOnMatch rearms the combo after it fires.
	ResetOnMatch bool
	// DeleteOnMatch drops the combo from its Keyboard after it fires.
	DeleteOnMatch bool
}

func DefaultComboConfig() ComboConfig {
	return ComboConfig{ResetOnWrongKey: true}
}

// Combo detects an ordered sequence of key presses.
type Combo struct {
	keys      []ebiten.Key
	cfg       ComboConfig
	index     int
	lastFrame int
	matched   bool
	onMatch   func()
}

func NewCombo(codes []string, cfg ComboConfig, onMatch func()) (*Combo, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("input: combo needs at least one key")
	}
	keys := make([]ebiten.Key, 0, len(codes))
	for _, code := range codes {
		k, err := ParseKey(code)
		if err != nil {
			return nil, fmt.Errorf("input: combo: %w", err)
		}
		keys = append(keys, k)
	}
	return &Combo{keys: keys, cfg: cfg, onMatch: onMatch}, nil
}

// KonamiCode returns the up up down down left right left right B A combo.
func KonamiCode(onMatch func()) *Combo {
	return &Combo{
		keys: []ebiten.Key{
			ebiten.KeyArrowUp, ebiten.KeyArrowUp,
			ebiten.KeyArrowDown, ebiten.KeyArrowDown,
			ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
			ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
			ebiten.KeyB, ebiten.KeyA,
		},
		cfg:     ComboConfig{ResetOnWrongKey: true, ResetOnMatch: true},
		onMatch: onMatch,
	}
}

// Feed advances the combo with a key pressed on frame. It returns true when
// this press completes the sequence.
func (c *Combo) Feed(frame int, k ebiten.Key) bool {
	if c.matched {
		return false
	}

	if c.index > 0 && c.cfg.MaxKeyDelay > 0 && frame-c.lastFrame > c.cfg.MaxKeyDelay {
		c.index = 0
	}

	switch {
	case k == c.keys[c.index]:
		c.index++
	case c.cfg.ResetOnWrongKey:
		c.index = 0
		if k == c.keys[0] {
			c.index = 1
		}
	default:
		return false
	}
	c.lastFrame = frame

	if c.index < len(c.keys) {
		return false
	}

	c.matched = true
	if c.onMatch != nil {
		c.onMatch()
	}
	if c.cfg.ResetOnMatch {
		c.Reset()
	}
	return true
}

// Progress returns how many keys of the sequence have been matched.
func (c *Combo) Progress() int { return c.index }

func (c *Combo) Len() int { return len(c.keys) }

func (c *Combo) Matched() bool { return c.matched }

func (c *Combo) Reset() {
	c.index = 0
	c.matched = false
}
