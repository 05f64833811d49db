package mutables

// SameKeys reports whether a and b have the same shape: the same keys in
// every mapping and the same length in every sequence, recursively
// wherever both sides are containers. Where either side is a scalar
// nothing is compared, so scalar values and mapping order never matter.
func SameKeys(a, b *Node) bool {
	if !a.IsContainer() || !b.IsContainer() {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case Mapping:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for k, ac := range a.entries {
			bc, ok := b.entries[k]
			if !ok || !SameKeys(ac, bc) {
				return false
			}
		}
	case Sequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !SameKeys(a.items[i], b.items[i]) {
				return false
			}
		}
	}
	return true
}
