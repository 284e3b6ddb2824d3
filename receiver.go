package observe

// Receiver is implemented by types that want to be notified through a method rather than a
// plain function.
type Receiver[T any] interface {
	ReceiveUpdate(T)
}

// ObserverFor creates an Observer that calls r.ReceiveUpdate.
func ObserverFor[T any](r Receiver[T]) *Observer[T] {
	return NewObserver(r.ReceiveUpdate)
}

// ObserveFunc creates an Observer for fn and adds it to s. The caller should Close the returned
// observer when it is no longer interested.
func ObserveFunc[T any](s *Subject[T], fn func(T)) *Observer[T] {
	o := NewObserver(fn)
	s.AddObserver(o)
	return o
}
