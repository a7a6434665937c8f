package argv

// IDPair stores the short and long identifier of an option or flag.
// At least one side must be non-empty for the pair to be matchable.
type IDPair struct {
	Short byte
	Long  string
}

// EmptyShort reports whether the short identifier is unset.
func (id IDPair) EmptyShort() bool {
	return id.Short == 0
}

// EmptyLong reports whether the long identifier is unset.
func (id IDPair) EmptyLong() bool {
	return id.Long == ""
}

// Empty reports whether both identifiers are unset.
func (id IDPair) Empty() bool {
	return id.EmptyShort() && id.EmptyLong()
}

// shortDash returns "-c" for short id c, or "" if unset.
func (id IDPair) shortDash() string {
	if id.EmptyShort() {
		return ""
	}
	return "-" + string(id.Short)
}

// longDash returns "--name" for long id name, or "" if unset.
func (id IDPair) longDash() string {
	if id.EmptyLong() {
		return ""
	}
	return "--" + id.Long
}

// Display renders the pair for user-facing messages:
// "-c/--name" if both identifiers are set, otherwise the one that is.
func (id IDPair) Display() string {
	switch {
	case id.EmptyShort():
		return id.longDash()
	case id.EmptyLong():
		return id.shortDash()
	default:
		return id.shortDash() + "/" + id.longDash()
	}
}

// Overlaps reports whether two pairs share a non-empty identifier on
// either side. Two fully empty pairs do not overlap.
func (id IDPair) Overlaps(other IDPair) bool {
	if !id.EmptyShort() && id.Short == other.Short {
		return true
	}
	if !id.EmptyLong() && id.Long == other.Long {
		return true
	}
	return false
}
