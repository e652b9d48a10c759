package scheme

// Store is the ordered list of schemes shared by every Registry built on it.
// Scenes that should see the same schemes must be handed the same Store.
type Store struct {
	schemes []*Scheme
}

func NewStore() *Store {
	return &Store{}
}

var defaultStore = NewStore()

// DefaultStore returns the process-wide store.
func DefaultStore() *Store {
	return defaultStore
}

// Reset drops every scheme from the store.
func (s *Store) Reset() {
	if s == nil {
		return
	}
	s.schemes = nil
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.schemes)
}

// Schemes returns the schemes in insertion order. The slice is a copy; the
// schemes are not.
func (s *Store) Schemes() []*Scheme {
	if s == nil {
		return nil
	}
	out := make([]*Scheme, len(s.schemes))
	copy(out, s.schemes)
	return out
}

func (s *Store) at(i int) *Scheme {
	if i < 0 || i >= len(s.schemes) {
		return nil
	}
	return s.schemes[i]
}

func (s *Store) index(t Target) int {
	for i, sc := range s.schemes {
		if t.matches(sc) {
			return i
		}
	}
	return -1
}

func (s *Store) active() (int, *Scheme) {
	for i, sc := range s.schemes {
		if sc.Active {
			return i, sc
		}
	}
	return -1, nil
}

func (s *Store) append(sc *Scheme) {
	s.schemes = append(s.schemes, sc)
}

func (s *Store) replace(i int, sc *Scheme) {
	s.schemes[i] = sc
}

func (s *Store) remove(i int) *Scheme {
	removed := s.schemes[i]
	s.schemes = append(s.schemes[:i], s.schemes[i+1:]...)
	return removed
}
