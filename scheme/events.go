package scheme

import "fmt"

// Activation records a successful switch of the active scheme.
type Activation struct {
	Scheme   *Scheme
	Previous string
}

// activationQueue is a simple FIFO queue.
type activationQueue struct {
	items []Activation
}

func (q *activationQueue) push(a Activation) {
	q.items = append(q.items, a)
}

// drain returns all activations and clears the queue.
func (q *activationQueue) drain() []Activation {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Handler reacts to a scheme becoming active.
type Handler func(s *Scheme) error

// HandlerSet maps scheme names to activation handlers. It is owned and
// dispatched by the caller's loop, never by the Registry.
type HandlerSet map[string]Handler

func (h HandlerSet) Register(name string, fn Handler) {
	if fn == nil {
		delete(h, name)
		return
	}
	h[name] = fn
}

// Dispatch calls the handler of each activated scheme in order. Every
// handler runs even if an earlier one fails; the first error is returned.
func (h HandlerSet) Dispatch(activations []Activation) error {
	var first error
	for _, a := range activations {
		if a.Scheme == nil {
			continue
		}
		fn, ok := h[a.Scheme.Name]
		if !ok {
			continue
		}
		if err := fn(a.Scheme); err != nil && first == nil {
			first = fmt.Errorf("scheme: on active %q: %w", a.Scheme.Name, err)
		}
	}
	return first
}
