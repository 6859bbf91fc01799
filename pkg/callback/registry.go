package callback

import (
	"reflect"
	"sync"
)

// Resolution is a callback requesting a value assignable to a target type.
// Handlers that own values answer it via Offer. A non-greedy dispatch stops
// at the first fulfilled resolution; a greedy one (Many) keeps collecting.
type Resolution struct {
	target reflect.Type
	many   bool

	mu     sync.Mutex
	values []any
}

// NewResolution creates a resolution for the given target type. With many
// true the resolution collects every offered value instead of the first.
func NewResolution(target reflect.Type, many bool) *Resolution {
	return &Resolution{target: target, many: many}
}

// Target returns the requested type.
func (r *Resolution) Target() reflect.Type {
	return r.target
}

// Many reports whether the resolution collects multiple values.
func (r *Resolution) Many() bool {
	return r.many
}

// Offer proposes a value. It is accepted when it is assignable to the target
// type and the resolution still wants values; Offer reports acceptance.
func (r *Resolution) Offer(value any) bool {
	if value == nil {
		return false
	}
	if !reflect.TypeOf(value).AssignableTo(r.target) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.many && len(r.values) > 0 {
		return false
	}
	r.values = append(r.values, value)
	return true
}

// Resolved reports whether at least one value was accepted.
func (r *Resolution) Resolved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values) > 0
}

// Value returns the first accepted value, or nil.
func (r *Resolution) Value() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return nil
	}
	return r.values[0]
}

// Values returns all accepted values in acceptance order.
func (r *Resolution) Values() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// Resolve asks a handler chain for a single value of type T.
func Resolve[T any](h Handler) (T, bool) {
	var zero T
	if h == nil {
		return zero, false
	}
	res := NewResolution(reflect.TypeOf(&zero).Elem(), false)
	h.Handle(res, false, nil)
	if v, ok := res.Value().(T); ok {
		return v, true
	}
	return zero, false
}

// ResolveAll asks a handler chain for every reachable value of type T.
func ResolveAll[T any](h Handler) []T {
	if h == nil {
		return nil
	}
	var zero T
	res := NewResolution(reflect.TypeOf(&zero).Elem(), true)
	h.Handle(res, true, nil)
	values := res.Values()
	out := make([]T, 0, len(values))
	for _, v := range values {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Registry is a thread-safe store of values that answers Resolutions by
// assignability. Registration order is preserved and determines offer
// order.
type Registry struct {
	mu     sync.RWMutex
	values []any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds values to the registry, skipping nils.
func (r *Registry) Register(values ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range values {
		if v != nil {
			r.values = append(r.values, v)
		}
	}
}

// Len returns the number of registered values.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}

// Handle answers Resolution callbacks from the registered values. Any other
// callback is reported unhandled.
func (r *Registry) Handle(callback any, greedy bool, composer Handler) bool {
	res, ok := callback.(*Resolution)
	if !ok {
		return false
	}

	r.mu.RLock()
	snapshot := make([]any, len(r.values))
	copy(snapshot, r.values)
	r.mu.RUnlock()

	handled := false
	for _, v := range snapshot {
		if res.Offer(v) {
			if !greedy {
				return true
			}
			handled = true
		}
	}
	return handled
}
