package compose

// Port is the surface the core uses to talk to one rendered field. The core
// never touches pixels, ARIA, or styling; it only reads/writes display text
// and asks for focus. Implementations live in the embedding layer.
type Port interface {
	Read() string
	Write(value string)
	Focus()
}

// Field is one editable unit plus its intermediate-entry state. The buffer
// holds digits that have been typed but not yet committed into the composite;
// cursor counts them. At most one field in a composer has a non-zero cursor.
type Field struct {
	unit Unit
	port Port

	buf    string
	cursor int
	unset  bool
}

func (f *Field) Unit() Unit { return f.unit }
func (f *Field) Port() Port { return f.port }

// Unset reports whether the field has no committed value. This is distinct
// from holding the value zero; an unset field makes the composite incomplete.
func (f *Field) Unset() bool { return f.unset }

// Pending reports whether the field is mid-entry.
func (f *Field) Pending() bool { return f.cursor > 0 }

// resetEntry drops any pending buffer without committing it. Used when focus
// moves on and the buffer has already been flushed (or must be discarded).
func (f *Field) resetEntry() {
	f.buf = ""
	f.cursor = 0
}
