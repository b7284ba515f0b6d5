package compose

import "testing"

func regWith(units ...Unit) (*Registry, map[Unit]*fakePort) {
	r := &Registry{}
	ports := map[Unit]*fakePort{}
	for _, u := range units {
		p := &fakePort{}
		ports[u] = p
		r.Add(u, p)
	}
	return r, ports
}

func TestFocusNextWrapSemantics(t *testing.T) {
	r, ports := regWith(Days, Months, Years)
	nav := Navigator{reg: r}

	// Unwrapped move past the last field: not moved, caller falls back to
	// default navigation.
	if nav.Next(Years, 1, false) {
		t.Fatalf("offset past the end without wrap must report not moved")
	}
	if ports[Days].focused != 0 {
		t.Fatalf("no port may be focused on a failed move")
	}

	// Same move with wrap lands on the first field.
	if !nav.Next(Years, 1, true) {
		t.Fatalf("wrapped move must succeed")
	}
	if ports[Days].focused != 1 {
		t.Fatalf("wrap from last+1 focuses the first field")
	}

	// Backwards off the front wraps to the end.
	if !nav.Next(Days, -1, true) {
		t.Fatalf("wrapped backwards move must succeed")
	}
	if ports[Years].focused != 1 {
		t.Fatalf("wrap from first-1 focuses the last field")
	}
}

func TestFocusNextUnknownUnitIsNoop(t *testing.T) {
	r, _ := regWith(Days, Months)
	nav := Navigator{reg: r}
	if nav.Next(Seconds, 1, true) {
		t.Fatalf("navigation from an unregistered unit reports not moved")
	}
}

func TestRegistryUniqueUnits(t *testing.T) {
	r := &Registry{}
	p1 := &fakePort{}
	p2 := &fakePort{}
	f1 := r.Add(Days, p1)
	f2 := r.Add(Days, p2)

	if f1 != f2 {
		t.Fatalf("re-adding a unit must rebind, not duplicate")
	}
	if r.Len() != 1 {
		t.Fatalf("registry holds one field per unit, got %d", r.Len())
	}
	if f1.Port() != Port(p2) {
		t.Fatalf("re-add rebinds the port")
	}
}

func TestRegistryRemoveAndLookup(t *testing.T) {
	r, _ := regWith(Days, Months, Years)
	r.Remove(Months)
	if r.Lookup(Months) != nil {
		t.Fatalf("removed unit must not resolve")
	}
	if r.Index(Years) != 1 {
		t.Fatalf("removal compacts order, years at %d", r.Index(Years))
	}
	r.Remove(Seconds) // absent: no-op
	if r.Len() != 2 {
		t.Fatalf("removing an absent unit must not change the registry")
	}
}

func TestRegistryReorder(t *testing.T) {
	r, _ := regWith(Days, Months, Years, Hours)

	// External visual order drives navigation order; unlisted units keep
	// their relative position after the ordered ones.
	r.Reorder([]Unit{Years, Months})

	want := []Unit{Years, Months, Days, Hours}
	for i, u := range want {
		if r.At(i).Unit() != u {
			t.Fatalf("order[%d] = %s, want %s", i, r.At(i).Unit(), u)
		}
	}
}
