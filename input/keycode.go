package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownKey = errors.New("input: unknown key code")

var namedKeys = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"F1": ebiten.KeyF1, "F2": ebiten.KeyF2, "F3": ebiten.KeyF3, "F4": ebiten.KeyF4,
	"F5": ebiten.KeyF5, "F6": ebiten.KeyF6, "F7": ebiten.KeyF7, "F8": ebiten.KeyF8,
	"F9": ebiten.KeyF9, "F10": ebiten.KeyF10, "F11": ebiten.KeyF11, "F12": ebiten.KeyF12,

	"UP":        ebiten.KeyArrowUp,
	"DOWN":      ebiten.KeyArrowDown,
	"LEFT":      ebiten.KeyArrowLeft,
	"RIGHT":     ebiten.KeyArrowRight,
	"SHIFT":     ebiten.KeyShift,
	"CTRL":      ebiten.KeyControl,
	"CONTROL":   ebiten.KeyControl,
	"ALT":       ebiten.KeyAlt,
	"SPACE":     ebiten.KeySpace,
	"ENTER":     ebiten.KeyEnter,
	"ESC":       ebiten.KeyEscape,
	"ESCAPE":    ebiten.KeyEscape,
	"TAB":       ebiten.KeyTab,
	"BACKSPACE": ebiten.KeyBackspace,
	"DELETE":    ebiten.KeyDelete,
	"INSERT":    ebiten.KeyInsert,
	"HOME":      ebiten.KeyHome,
	"END":       ebiten.KeyEnd,
	"PAGEUP":    ebiten.KeyPageUp,
	"PAGEDOWN":  ebiten.KeyPageDown,
	"COMMA":     ebiten.KeyComma,
	"PERIOD":    ebiten.KeyPeriod,
	"MINUS":     ebiten.KeyMinus,
	"SLASH":     ebiten.KeySlash,
}

// ParseKey converts a key code such as "W", "UP" or "SHIFT" to an
// ebiten.Key. Codes are case-insensitive; Ebiten's own key names
// ("ArrowUp", "ShiftLeft") are accepted too.
func ParseKey(code string) (ebiten.Key, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	if canonical == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownKey)
	}
	if k, ok := namedKeys[canonical]; ok {
		return k, nil
	}

	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.TrimSpace(code))); err == nil {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, code)
}
