/*
Package mutables provides a small, mutable, in-memory store of nested
values addressed by dotted paths, which raises named events when hooked
paths are read or written.

Paths

A path like "a.b.0.c" is split at each dot into segments. A literal dot
inside a key is written with a backslash, so "tester\.10.tests" names the
key "tests" inside the key "tester.10". A segment made only of digits
indexes a sequence when its parent is a sequence; against a mapping it is
just a key. Reading a path that doesn't exist reports found=false rather
than failing, and writing a path creates any missing mappings along the
way.

	s := mutables.New("settings", nil, nil)
	s.Set("a.b.c", []interface{}{10, 20}, nil)
	v, found, _ := s.Get("a.b.c.0") // 10, true

Hooks

Every Store keeps a hooks tree shaped like its value tree. Set takes a
hooks marker along with the value; whenever the marker at a path is
truthy, Get and Set trigger the event named by the path, synchronously,
before they return.

	s.Register("user.name", func(s *mutables.Store, args ...interface{}) error {
		fmt.Println("renamed by", args)
		return nil
	})
	s.Set("user.name", "ada", true, "admin")

Handlers run in the order they were added, once per registration. A
handler that returns an error or panics does not stop the others; the
failures come back joined from Trigger, Get or Set.

Despite its name, nothing here is immutable: values are changed in place,
and a Store must not be shared between goroutines without external
locking.
*/
package mutables
