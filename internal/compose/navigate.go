package compose

// Navigator moves focus across the registry's visual order.
type Navigator struct {
	reg *Registry
}

// Next moves focus from the field holding unit by offset positions and
// reports whether it moved. With wrap the target index wraps modulo the
// registry size (intra-widget Left/Right/Enter stay inside the widget);
// without wrap an out-of-bounds target reports false so the caller can let
// default navigation (e.g. tabbing out of the widget) take over. An
// unregistered unit also reports false.
func (n *Navigator) Next(unit Unit, offset int, wrap bool) bool {
	f := n.target(unit, offset, wrap)
	if f == nil {
		return false
	}
	f.port.Focus()
	return true
}

func (n *Navigator) target(unit Unit, offset int, wrap bool) *Field {
	i := n.reg.Index(unit)
	if i < 0 || n.reg.Len() == 0 {
		return nil
	}
	j := i + offset
	if wrap {
		size := n.reg.Len()
		j = ((j % size) + size) % size
	}
	return n.reg.At(j)
}
