package mutables

// HookRegistry is the registration surface used for path hooks. It
// delegates to the store's Emitter and logs each change.
type HookRegistry interface {
	Register(name string, h Handler)
	Unregister(name string, h Handler)
}

var _ HookRegistry = (*Store)(nil)

// Register subscribes h to the hook called name, which for path hooks is
// the path string exactly as passed to Get and Set.
func (s *Store) Register(name string, h Handler) {
	s.logger.Info("registering hooks", "store", s.name, "hook", name)
	s.On(name, h)
}

// Unregister removes h from the hook called name; a nil h removes every
// handler.
func (s *Store) Unregister(name string, h Handler) {
	s.logger.Info("unregistering hooks", "store", s.name, "hook", name)
	s.Off(name, h)
}
