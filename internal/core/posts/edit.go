package posts

// FlagEdit is a requested change to a boolean post flag
type FlagEdit int

const (
	// Unchanged leaves the stored value as it is
	Unchanged FlagEdit = iota
	SetFalse
	SetTrue
)

// FlagEditFrom maps an optional wire value to a flag edit
func FlagEditFrom(v *bool) FlagEdit {
	switch {
	case v == nil:
		return Unchanged
	case *v:
		return SetTrue
	default:
		return SetFalse
	}
}

// IsSet reports whether the edit names a value
func (f FlagEdit) IsSet() bool {
	return f != Unchanged
}

// Value is the requested value; only meaningful when IsSet
func (f FlagEdit) Value() bool {
	return f == SetTrue
}

// Apply returns the flag's value after the edit
func (f FlagEdit) Apply(current bool) bool {
	if !f.IsSet() {
		return current
	}
	return f.Value()
}

// PostEdit groups the flag edits of an EditPost request
type PostEdit struct {
	Removed FlagEdit
	Deleted FlagEdit
	Locked  FlagEdit
}

// Flags extracts the flag edits from the request
func (r EditPostRequest) Flags() PostEdit {
	return PostEdit{
		Removed: FlagEditFrom(r.Removed),
		Deleted: FlagEditFrom(r.Deleted),
		Locked:  FlagEditFrom(r.Locked),
	}
}
