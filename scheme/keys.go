package scheme

// KeyHandle is a live key state owned by a KeyBinder and polled by game code.
type KeyHandle interface {
	IsDown() bool
	KeyCode() string
}

// KeyBinder materializes key handles for a scheme's controls.
type KeyBinder interface {
	BindKeys(controls Controls) (map[string]KeyHandle, error)
	ReleaseKey(h KeyHandle)
	ReleaseCapture(code string)
}

// KeySet holds the handles bound for the active scheme, keyed by action.
type KeySet struct {
	Name    string
	handles map[string]KeyHandle
}

func newKeySet(name string, handles map[string]KeyHandle) *KeySet {
	if handles == nil {
		handles = map[string]KeyHandle{}
	}
	return &KeySet{Name: name, handles: handles}
}

// Get returns the handle bound to action, or nil.
func (k *KeySet) Get(action string) KeyHandle {
	if k == nil {
		return nil
	}
	return k.handles[action]
}

// IsDown reports whether the key bound to action is held. Unknown actions
// and a nil set report false.
func (k *KeySet) IsDown(action string) bool {
	h := k.Get(action)
	return h != nil && h.IsDown()
}

// Len returns the number of bound actions.
func (k *KeySet) Len() int {
	if k == nil {
		return 0
	}
	return len(k.handles)
}

// Handles returns a copy of the action to handle map.
func (k *KeySet) Handles() map[string]KeyHandle {
	if k == nil {
		return nil
	}
	out := make(map[string]KeyHandle, len(k.handles))
	for action, h := range k.handles {
		out[action] = h
	}
	return out
}
