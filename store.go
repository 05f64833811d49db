package mutables

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mitchellh/mapstructure"
)

// ErrNotFound is returned by helpers that must fail when a path does not
// resolve. Get and Lookup report a missing path with found=false instead.
var ErrNotFound = errors.New("path not found")

// Options controls logging and parsing for a Store. The zero value, or a
// nil *Options, is usable.
type Options struct {
	// Logger receives hook registration notices, and with Debug, a
	// record per Get, Set and Trigger. Defaults to discarding.
	Logger *slog.Logger

	// Debug enables the per-operation records.
	Debug bool

	// PathCache, if set, memoises parsed paths and may be shared across
	// stores.
	PathCache PathCache
}

// Store is a named, mutable value tree with a parallel hooks tree. A
// path whose hooks node is truthy raises the event named after the path
// whenever it is read with Get or written with Set.
//
// A Store is not safe for concurrent use.
type Store struct {
	name      string
	value     *Node
	hooks     *Node
	handlers  map[string][]Handler
	logger    *slog.Logger
	debug     bool
	pathCache PathCache
}

// New returns a store with the given initial value and hooks, either of
// which may be nil for an empty mapping. Both are copied into fresh trees,
// *Nodes included, so the store never shares structure with its caller or
// between its own two trees.
func New(name string, value, hooks interface{}) *Store {
	return NewWithOptions(name, value, hooks, nil)
}

// NewWithOptions is New with logging and path caching configured.
func NewWithOptions(name string, value, hooks interface{}, options *Options) *Store {
	s := &Store{
		name:     name,
		value:    initialTree(value),
		hooks:    initialTree(hooks),
		handlers: map[string][]Handler{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if options != nil {
		if options.Logger != nil {
			s.logger = options.Logger
		}
		s.debug = options.Debug
		s.pathCache = options.PathCache
	}
	return s
}

func initialTree(v interface{}) *Node {
	if v == nil {
		return NewMapping()
	}
	return NewNode(v)
}

// Name returns the name the store was created with.
func (s *Store) Name() string {
	return s.name
}

// Get reads path from the value tree. If the hooks tree has a truthy node
// at the same path, the event named path is triggered with args first,
// and the value is read again afterwards so that changes made by handlers
// are seen. err carries any handler failures.
func (s *Store) Get(path string, args ...interface{}) (value interface{}, found bool, err error) {
	p := s.parse(path)
	if hook, ok := Read(s.hooks, p); ok && hook.Truthy() {
		err = s.Trigger(path, args...)
	}
	n, found := Read(s.value, p)
	if s.debug {
		s.logger.Debug("get", "store", s.name, "path", path, "found", found)
	}
	if !found {
		return nil, false, err
	}
	return n.Value(), true, err
}

// Set writes value at path, and hooks at the same path of the hooks tree,
// creating intermediate mappings as needed. Both are copied first, so a
// node obtained from Lookup may be written back without creating a cycle. If the resulting hooks node
// is truthy, the event named path is triggered with args before Set
// returns. A nil hooks clears any marker at path.
func (s *Store) Set(path string, value, hooks interface{}, args ...interface{}) error {
	p := s.parse(path)
	s.value = Write(s.value, p, NewNode(value))
	s.hooks = Write(s.hooks, p, NewNode(hooks))
	if s.debug {
		s.logger.Debug("set", "store", s.name, "path", path)
	}
	if hook, ok := Read(s.hooks, p); ok && hook.Truthy() {
		return s.Trigger(path, args...)
	}
	return nil
}

// Lookup returns the live node at path without raising any event.
// Changes made through the node are changes to the store.
func (s *Store) Lookup(path string) (*Node, bool) {
	return Read(s.value, s.parse(path))
}

// Value returns a plain-Go copy of the whole value tree.
func (s *Store) Value() interface{} {
	return s.value.Value()
}

// Hooks returns a plain-Go copy of the whole hooks tree.
func (s *Store) Hooks() interface{} {
	return s.hooks.Value()
}

// Decode copies the subtree at path into out, which is usually a pointer
// to a struct, without raising any event.
func (s *Store) Decode(path string, out interface{}) error {
	n, ok := s.Lookup(path)
	if !ok {
		return fmt.Errorf("decode %q: %w", path, ErrNotFound)
	}
	err := mapstructure.Decode(n.Value(), out)
	if err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}
	return nil
}

// Digest returns the content hash of the subtree at path.
func (s *Store) Digest(path string) (string, bool, error) {
	n, ok := s.Lookup(path)
	if !ok {
		return "", false, nil
	}
	d, err := Digest(n)
	if err != nil {
		return "", true, fmt.Errorf("digest %q: %w", path, err)
	}
	return d, true, nil
}

func (s *Store) parse(path string) Path {
	return parseCached(s.pathCache, path)
}
