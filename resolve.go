package mutables

// Read walks root along p. At a sequence an all-digit segment is an
// index; at a mapping every segment is a key. The walk stops at the first
// segment that does not resolve and reports found=false. An empty Path
// resolves to root itself.
func Read(root *Node, p Path) (*Node, bool) {
	current := root
	for _, segment := range p {
		var ok bool
		switch current.Kind() {
		case Mapping:
			current, ok = current.entries[segment]
		case Sequence:
			var i int
			if i, ok = index(segment); ok {
				current, ok = current.Index(i)
			}
		}
		if !ok {
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Write stores v at p under root, in place, and returns the root. Missing
// or non-container ancestors become empty mappings; in particular a root
// that is not a container is replaced, so callers must keep the returned
// node. An index segment into a sequence grows it with nil scalars as
// needed. A sequence addressed by a non-index segment is replaced by a
// mapping.
func Write(root *Node, p Path, v *Node) *Node {
	if v == nil {
		v = NewScalar(nil)
	}
	return write(root, p, v)
}

func write(n *Node, p Path, v *Node) *Node {
	if len(p) == 0 {
		return v
	}
	segment, rest := p[0], p[1:]
	if n.Kind() == Sequence {
		if i, ok := index(segment); ok {
			n.grow(i + 1)
			n.items[i] = write(n.items[i], rest, v)
			return n
		}
	}
	if n.Kind() != Mapping {
		n = NewMapping()
	}
	n.entries[segment] = write(n.entries[segment], rest, v)
	return n
}

func (n *Node) grow(size int) {
	for len(n.items) < size {
		n.items = append(n.items, NewScalar(nil))
	}
}

// Lookup reads path out of a plain Go value, as built by NewNode, and
// returns the plain Go value found there.
func Lookup(v interface{}, path string) (interface{}, bool) {
	n, ok := Read(NewNode(v), Parse(path))
	if !ok {
		return nil, false
	}
	return n.Value(), true
}
