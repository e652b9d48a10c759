package scheme

type PresetKind int

const (
	PresetCursor PresetKind = iota
	PresetWASD
)

const (
	CursorKeysName = "cursorKeysDefault"
	WASDKeysName   = "wasdKeysDefault"
)

func (k PresetKind) String() string {
	switch k {
	case PresetCursor:
		return "cursor"
	case PresetWASD:
		return "wasd"
	default:
		return "unknown"
	}
}

// NewPreset builds a fresh scheme for kind. It is not registered anywhere.
func NewPreset(kind PresetKind, active bool) (*Scheme, bool) {
	switch kind {
	case PresetCursor:
		return &Scheme{
			Name: CursorKeysName,
			Controls: Controls{
				"up":    "UP",
				"down":  "DOWN",
				"left":  "LEFT",
				"right": "RIGHT",
				"shift": "SHIFT",
				"space": "SPACE",
			},
			Active: active,
		}, true
	case PresetWASD:
		return &Scheme{
			Name: WASDKeysName,
			Controls: Controls{
				"up":    "W",
				"down":  "S",
				"left":  "A",
				"right": "D",
				"shift": "SHIFT",
				"space": "SPACE",
			},
			Active: active,
		}, true
	default:
		return nil, false
	}
}
