package mutables

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unsafe"
)

// Handler is called when an event fires. s is the store that triggered
// it, and args are whatever the triggering call was given.
type Handler func(s *Store, args ...interface{}) error

// All may be passed to Off in place of a handler to drop every handler
// for an event.
var All Handler

// ErrHandlerPanic is wrapped by the HandlerError of a handler that
// panicked.
var ErrHandlerPanic = errors.New("handler panicked")

// HandlerError records the failure of one handler during Trigger.
type HandlerError struct {
	Event string
	// Index is the handler's position in registration order.
	Index int
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("event %q handler %d: %v", e.Event, e.Index, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Emitter publishes named events to subscribed handlers.
type Emitter interface {
	// On subscribes h to eventName. Subscribing the same handler twice
	// makes it fire twice.
	On(eventName string, h Handler)
	// Off removes the given handlers from eventName, or all of them if
	// none (or All) are given.
	Off(eventName string, handlers ...Handler)
	// Trigger calls every handler of eventName in subscription order.
	Trigger(eventName string, args ...interface{}) error
}

var _ Emitter = (*Store)(nil)

// On appends h to the handlers of eventName.
func (s *Store) On(eventName string, h Handler) {
	if s.handlers == nil {
		s.handlers = map[string][]Handler{}
	}
	s.handlers[eventName] = append(s.handlers[eventName], h)
}

// Off removes every occurrence of each given handler from eventName, or
// the whole event if no handler or All is given.
func (s *Store) Off(eventName string, handlers ...Handler) {
	existing, ok := s.handlers[eventName]
	if !ok {
		return
	}
	if len(handlers) == 0 || (len(handlers) == 1 && handlers[0] == nil) {
		delete(s.handlers, eventName)
		return
	}
	kept := existing[:0:0]
	for _, h := range existing {
		if !containsHandler(handlers, h) {
			kept = append(kept, h)
		}
	}
	if len(kept) == 0 {
		delete(s.handlers, eventName)
		return
	}
	s.handlers[eventName] = kept
}

// Trigger calls the handlers of eventName synchronously, in the order
// they were added, passing s and args. Triggering an event nobody
// listens to does nothing. A handler that fails or panics does not stop
// the rest; every failure is returned, joined, as a *HandlerError.
func (s *Store) Trigger(eventName string, args ...interface{}) error {
	handlers := s.handlers[eventName]
	if len(handlers) == 0 {
		return nil
	}
	if s.debug {
		s.logger.Debug("trigger", "store", s.name, "event", eventName, "handlers", len(handlers))
	}
	// handlers may subscribe or unsubscribe while we iterate
	snapshot := append([]Handler(nil), handlers...)
	var errs []error
	for i, h := range snapshot {
		if err := s.call(h, args); err != nil {
			errs = append(errs, &HandlerError{Event: eventName, Index: i, Err: err})
		}
	}
	return errors.Join(errs...)
}

// HandlerCount returns how many subscriptions eventName has.
func (s *Store) HandlerCount(eventName string) int {
	return len(s.handlers[eventName])
}

func (s *Store) call(h Handler, args []interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h(s, args...)
}

func containsHandler(handlers []Handler, h Handler) bool {
	for _, candidate := range handlers {
		if sameHandler(candidate, h) {
			return true
		}
	}
	return false
}

// sameHandler compares handler identity. Funcs aren't comparable with ==,
// so this compares the closures the func values point to: two closures
// made by one literal are different handlers unless they are the same
// value. A method value allocates a fresh closure each time it is
// evaluated, so method values match when they bind the same method to the
// same receiver.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ca, cb := closure(a), closure(b)
	if ca == cb {
		return true
	}
	pc := reflect.ValueOf(a).Pointer()
	if pc != reflect.ValueOf(b).Pointer() || !isMethodValue(pc) {
		return false
	}
	return receiver(ca) == receiver(cb)
}

func closure(h Handler) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&h))
}

// receiver returns the first word a method value closure binds after its
// code pointer: the receiver itself for pointer receivers.
func receiver(c unsafe.Pointer) uintptr {
	return *(*uintptr)(unsafe.Add(c, unsafe.Sizeof(uintptr(0))))
}

// isMethodValue reports whether pc is a compiler-generated method value
// wrapper.
func isMethodValue(pc uintptr) bool {
	f := runtime.FuncForPC(pc)
	return f != nil && strings.HasSuffix(f.Name(), "-fm")
}
