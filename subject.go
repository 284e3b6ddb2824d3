package observe

import (
	"log/slog"
	"slices"
)

// Subject calls every attached Observer, in the order they were added, when it is invoked. An
// observer added twice is called twice. The zero value is an empty subject ready to use.
//
// This is a synchronous take on the observer pattern described here:
// https://refactoring.guru/design-patterns/observer
//
// A Subject is not safe for concurrent use. Guard the subject together with its observers if
// they are shared between goroutines.
type Subject[T any] struct {

	// observers in registration order, one entry per AddObserver call.
	observers []*Observer[T]

	// structured logger for structural changes. Nil means discard.
	logger *slog.Logger
}

// NewSubject creates an empty Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		logger: slog.New(slog.DiscardHandler),
	}
}

// AddObserver appends o to the subject and records the subject on o. Adding the same observer
// again creates another, independent registration.
func (s *Subject[T]) AddObserver(o *Observer[T]) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
	o.subjects = append(o.subjects, s)
	s.Logger().Debug("added observer", "observers", len(s.observers))
}

// RemoveObserver removes the first registration of o. If o is not attached it does nothing.
func (s *Subject[T]) RemoveObserver(o *Observer[T]) {
	i := slices.Index(s.observers, o)
	if i < 0 {
		return
	}
	s.observers = slices.Delete(s.observers, i, i+1)
	o.detach(s)
	s.Logger().Debug("removed observer", "observers", len(s.observers))
}

// Clear removes every observer from the subject. The subject can be used again afterwards.
func (s *Subject[T]) Clear() {
	if len(s.observers) == 0 {
		return
	}
	for _, o := range s.observers {
		o.detach(s)
	}
	n := len(s.observers)
	s.observers = nil
	s.Logger().Debug("cleared observers", "removed", n)
}

// Close detaches the subject from all of its observers. It is the same as Clear.
func (s *Subject[T]) Close() {
	s.Clear()
}

// Invoke calls every observer registered when Invoke starts with v, in registration order.
// Changes made by the callbacks apply from the next call. If a callback panics, the panic
// reaches the caller and the remaining observers are not called.
func (s *Subject[T]) Invoke(v T) {
	observers := s.observerSnapshot()

	if len(observers) == 0 {
		s.Logger().Debug("no observers to notify")
		return
	}

	for _, o := range observers {
		o.notify(v)
	}
}

// Len returns the number of registrations, counting an observer once per AddObserver call.
func (s *Subject[T]) Len() int {
	return len(s.observers)
}

// Count returns how many times o is registered with the subject.
func (s *Subject[T]) Count(o *Observer[T]) int {
	n := 0
	for _, x := range s.observers {
		if x == o {
			n++
		}
	}
	return n
}

// Clone returns a new subject holding its own registration for every observer of s, in the
// same order. Invoking either subject calls the same observers.
func (s *Subject[T]) Clone() *Subject[T] {
	dst := &Subject[T]{logger: s.logger}
	for _, o := range s.observers {
		dst.AddObserver(o)
	}
	return dst
}

// CopyFrom clears s and then registers every observer of src with s, in order.
func (s *Subject[T]) CopyFrom(src *Subject[T]) {
	if src == nil || src == s {
		return
	}
	s.Clear()
	for _, o := range src.observers {
		s.AddObserver(o)
	}
}

// Move returns a copy of s made as by Clone and then clears s, so the observers follow the new
// subject.
func (s *Subject[T]) Move() *Subject[T] {
	dst := s.Clone()
	s.Clear()
	return dst
}

// MoveFrom copies src's registrations into s as by CopyFrom and then clears src.
func (s *Subject[T]) MoveFrom(src *Subject[T]) {
	if src == nil || src == s {
		return
	}
	s.CopyFrom(src)
	src.Clear()
}

// SetLogger sets the structured logger for the subject.
func (s *Subject[T]) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Logger returns the structured logger for the subject.
func (s *Subject[T]) Logger() *slog.Logger {
	if s.logger == nil {
		return discardLogger
	}
	return s.logger
}

// replace swaps the first registration of old for nu, keeping its position.
func (s *Subject[T]) replace(old, nu *Observer[T]) {
	if i := slices.Index(s.observers, old); i >= 0 {
		s.observers[i] = nu
	}
}

// observerSnapshot copies the registrations so callbacks can change the subject while it is
// being invoked.
func (s *Subject[T]) observerSnapshot() []*Observer[T] {
	return slices.Clone(s.observers)
}

var discardLogger = slog.New(slog.DiscardHandler)

func removeFirst[E comparable](list []E, e E) []E {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
