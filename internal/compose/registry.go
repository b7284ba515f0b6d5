package compose

// Registry holds the registered fields in visual order. Units are unique:
// registering a unit that already exists replaces its port in place and keeps
// its position. The embedding layer owns the order; it registers fields in
// the order the user sees them and may re-sort later via Reorder.
type Registry struct {
	fields []*Field
}

// Add registers a field for unit backed by port and returns it. Re-adding an
// existing unit rebinds the port but preserves entry state and position.
func (r *Registry) Add(unit Unit, port Port) *Field {
	if f := r.Lookup(unit); f != nil {
		f.port = port
		return f
	}
	f := &Field{unit: unit, port: port, unset: true}
	r.fields = append(r.fields, f)
	return f
}

// Remove deregisters the field for unit. Removing an absent unit is a no-op.
func (r *Registry) Remove(unit Unit) {
	for i, f := range r.fields {
		if f.unit == unit {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return
		}
	}
}

// Lookup returns the field for unit, or nil when none is registered.
func (r *Registry) Lookup(unit Unit) *Field {
	for _, f := range r.fields {
		if f.unit == unit {
			return f
		}
	}
	return nil
}

// Index returns the position of unit in visual order, or -1.
func (r *Registry) Index(unit Unit) int {
	for i, f := range r.fields {
		if f.unit == unit {
			return i
		}
	}
	return -1
}

// At returns the field at position i, or nil when out of bounds.
func (r *Registry) At(i int) *Field {
	if i < 0 || i >= len(r.fields) {
		return nil
	}
	return r.fields[i]
}

func (r *Registry) Len() int { return len(r.fields) }

// Fields returns the fields in visual order. The slice is shared; callers
// must not mutate it.
func (r *Registry) Fields() []*Field { return r.fields }

// Reorder re-sorts the registry to match the given visual order. Units absent
// from order keep their relative position after the ordered ones; units in
// order that are not registered are skipped.
func (r *Registry) Reorder(order []Unit) {
	sorted := make([]*Field, 0, len(r.fields))
	seen := make(map[Unit]bool, len(order))
	for _, u := range order {
		if f := r.Lookup(u); f != nil && !seen[u] {
			sorted = append(sorted, f)
			seen[u] = true
		}
	}
	for _, f := range r.fields {
		if !seen[f.unit] {
			sorted = append(sorted, f)
		}
	}
	r.fields = sorted
}
