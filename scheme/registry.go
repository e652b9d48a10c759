package scheme

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// Registry manages the schemes of a shared Store and the key handles of the
// active one. Build one per scene; registries on the same Store see the same
// schemes but each holds its own KeySet.
type Registry struct {
	store   *Store
	binder  KeyBinder
	keys    *KeySet
	presets map[PresetKind]*Scheme
	events  activationQueue
}

// New returns a registry over store. A nil store means DefaultStore().
func New(store *Store, binder KeyBinder) *Registry {
	if store == nil {
		store = DefaultStore()
	}
	return &Registry{
		store:   store,
		binder:  binder,
		presets: make(map[PresetKind]*Scheme),
	}
}

func (r *Registry) Store() *Store {
	return r.store
}

// Schemes returns the store's schemes in insertion order.
func (r *Registry) Schemes() []*Scheme {
	return r.store.Schemes()
}

// Keys returns the handles bound by this registry's last activation, or nil.
func (r *Registry) Keys() *KeySet {
	return r.keys
}

// DrainActivations returns the activations since the last call.
func (r *Registry) DrainActivations() []Activation {
	return r.events.drain()
}

// CreatePreset builds the preset scheme for kind. Each kind can be created
// once per registry.
func (r *Registry) CreatePreset(kind PresetKind, active, register bool) (*Scheme, error) {
	if _, ok := r.presets[kind]; ok {
		log.Printf("scheme: %s keys already created", kind)
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePreset, kind)
	}

	s, ok := NewPreset(kind, active)
	if !ok {
		return nil, fmt.Errorf("scheme: unknown preset kind %d", int(kind))
	}
	r.presets[kind] = s

	if register {
		if err := r.Add(s); err != nil {
			return s, err
		}
	}

	return s, nil
}

func (r *Registry) CreateCursorKeys(active bool) (*Scheme, error) {
	return r.CreatePreset(PresetCursor, active, true)
}

func (r *Registry) CreateWASDKeys(active bool) (*Scheme, error) {
	return r.CreatePreset(PresetWASD, active, true)
}

// Add appends s and activates it when s.Active is set. If activation fails
// s stays in the store, inactive.
func (r *Registry) Add(s *Scheme) error {
	if s == nil {
		return ErrNilScheme
	}

	wantActive := s.Active
	s.Active = false
	r.store.append(s)

	if !wantActive {
		return nil
	}
	return r.activate(r.store.Len() - 1)
}

// AddMultiple adds each scheme in order. Failures do not stop the batch.
func (r *Registry) AddMultiple(schemes []*Scheme) error {
	var errs []error
	for _, s := range schemes {
		if err := r.Add(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Get returns the scheme called name, or the active scheme when name is
// empty. With activate set a named match also becomes active.
func (r *Registry) Get(name string, activate bool) (*Scheme, error) {
	if name == "" {
		s, ok := r.GetActive()
		if !ok {
			return nil, ErrNoActiveScheme
		}
		return s, nil
	}

	i := r.store.index(ByName(name))
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSchemeNotFound, name)
	}

	s := r.store.at(i)
	if activate {
		if err := r.activate(i); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (r *Registry) GetActive() (*Scheme, bool) {
	_, s := r.store.active()
	return s, s != nil
}

// ActiveName returns the active scheme's name or "".
func (r *Registry) ActiveName() string {
	if s, ok := r.GetActive(); ok {
		return s.Name
	}
	return ""
}

// SetActive makes t the only active scheme and binds its keys. Nothing
// changes when t is not in the store or its keys cannot be bound.
func (r *Registry) SetActive(t Target) error {
	i := r.store.index(t)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrSchemeNotFound, t.String())
	}
	return r.activate(i)
}

// Edit replaces the record matching t with cfg at the same position.
// cfg.Active activates the new record, as Add does. Replacing the active
// record keeps that position active and rebinds to the new controls.
func (r *Registry) Edit(t Target, cfg *Scheme) error {
	if cfg == nil {
		return ErrNilScheme
	}
	i := r.store.index(t)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrSchemeNotFound, t.String())
	}

	old := r.store.at(i)
	wasActive := old.Active
	wantActive := cfg.Active

	if !wasActive && !wantActive {
		r.store.replace(i, cfg)
		return nil
	}

	handles, err := r.bind(cfg.Controls)
	if err != nil {
		return fmt.Errorf("scheme: bind %q: %w", cfg.Name, err)
	}

	_, previous := r.store.active()
	cfg.Active = false
	r.store.replace(i, cfg)
	if old != cfg {
		old.Active = false
	}
	r.commit(i, handles, previous)
	return nil
}

// Delete removes the record matching t. If it was active, the first
// remaining scheme takes over; an empty store leaves nothing active. With
// destroy set the deleted scheme's handles and captures are released.
func (r *Registry) Delete(t Target, destroy bool) error {
	i := r.store.index(t)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrSchemeNotFound, t.String())
	}

	removed := r.store.remove(i)
	if destroy {
		r.release(removed)
	}

	if !removed.Active {
		return nil
	}
	removed.Active = false

	if r.store.Len() == 0 {
		r.keys = nil
		return nil
	}
	return r.activate(0)
}

// Resume rebinds the store's active scheme, or activates the first scheme
// when none is active. Scenes call it on entry since a new registry starts
// without keys.
func (r *Registry) Resume() error {
	if i, _ := r.store.active(); i >= 0 {
		return r.activate(i)
	}
	if r.store.Len() == 0 {
		return nil
	}
	return r.activate(0)
}

// Next activates the scheme after the active one, wrapping around.
func (r *Registry) Next() (*Scheme, error) {
	n := r.store.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: store is empty", ErrSchemeNotFound)
	}

	i, _ := r.store.active()
	next := (i + 1) % n
	if err := r.activate(next); err != nil {
		return nil, err
	}
	return r.store.at(next), nil
}

func (r *Registry) activate(i int) error {
	target := r.store.at(i)
	if target == nil {
		return fmt.Errorf("%w: index %d", ErrSchemeNotFound, i)
	}

	handles, err := r.bind(target.Controls)
	if err != nil {
		return fmt.Errorf("scheme: bind %q: %w", target.Name, err)
	}

	_, previous := r.store.active()
	r.commit(i, handles, previous)
	return nil
}

// commit makes the record at i the only active scheme with handles as its
// keys. previous is the scheme that was active before, if any.
func (r *Registry) commit(i int, handles map[string]KeyHandle, previous *Scheme) {
	for _, s := range r.store.schemes {
		s.Active = false
	}
	target := r.store.at(i)
	target.Active = true

	prevName := ""
	if previous != nil {
		prevName = previous.Name
	}
	r.keys = newKeySet(target.Name, handles)
	r.events.push(Activation{Scheme: target, Previous: prevName})
}

func (r *Registry) bind(controls Controls) (map[string]KeyHandle, error) {
	if r.binder == nil {
		return map[string]KeyHandle{}, nil
	}
	return r.binder.BindKeys(controls)
}

// release frees what removed holds in the binder, skipping key codes the
// still-active scheme relies on.
func (r *Registry) release(removed *Scheme) {
	if r.binder == nil {
		return
	}

	keep := map[string]bool{}
	if !removed.Active {
		if _, active := r.store.active(); active != nil {
			for _, code := range active.Controls {
				keep[canonicalCode(code)] = true
			}
		}
	}

	if r.keys != nil && r.keys.Name == removed.Name {
		for _, h := range r.keys.handles {
			if h == nil || keep[canonicalCode(h.KeyCode())] {
				continue
			}
			r.binder.ReleaseKey(h)
		}
		r.keys = nil
	}

	for _, code := range removed.Controls {
		if keep[canonicalCode(code)] {
			continue
		}
		r.binder.ReleaseCapture(code)
	}
}

// canonicalCode folds the spellings binders treat as one key.
func canonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
