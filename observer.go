package observe

// Observer wraps a callback and keeps track of every Subject it is attached to, so that closing
// either side removes the registration from the other. The zero value is an observer with no
// callback and no attachments.
//
// An Observer is not safe for concurrent use, and neither is any Subject it is attached to.
type Observer[T any] struct {

	// fn is called by every attached Subject on Invoke. A nil fn is never called.
	fn func(T)

	// subjects holds one entry per registration. A subject that added this observer twice
	// appears twice.
	subjects []*Subject[T]
}

// NewObserver creates an Observer with the given callback. fn may be nil and set later with SetFunc.
func NewObserver[T any](fn func(T)) *Observer[T] {
	return &Observer[T]{fn: fn}
}

// SetFunc replaces the callback. Existing attachments are kept.
func (o *Observer[T]) SetFunc(fn func(T)) {
	o.fn = fn
}

// Len returns the number of registrations this observer holds, counting a subject once for
// every time it added the observer.
func (o *Observer[T]) Len() int {
	return len(o.subjects)
}

// AttachedTo returns how many times s holds this observer.
func (o *Observer[T]) AttachedTo(s *Subject[T]) int {
	n := 0
	for _, x := range o.subjects {
		if x == s {
			n++
		}
	}
	return n
}

// Close removes the observer from every subject it is attached to. Calling Close more than once
// is harmless, and the observer may be attached again afterwards.
func (o *Observer[T]) Close() {
	for len(o.subjects) > 0 {
		o.subjects[0].RemoveObserver(o)
	}
}

// Clone returns a new observer sharing o's callback. The clone is not attached to any subject.
func (o *Observer[T]) Clone() *Observer[T] {
	return &Observer[T]{fn: o.fn}
}

// CopyFrom detaches o from all of its subjects and takes src's callback. src's attachments are
// not copied.
func (o *Observer[T]) CopyFrom(src *Observer[T]) {
	if src == nil || src == o {
		return
	}
	o.Close()
	o.fn = src.fn
}

// Move returns a new observer that takes over o's callback and every one of its registrations.
// o is left detached with no callback.
func (o *Observer[T]) Move() *Observer[T] {
	dst := &Observer[T]{}
	dst.MoveFrom(o)
	return dst
}

// MoveFrom detaches o from its own subjects, then takes src's callback and registrations. In
// each subject the new entry keeps the position src had. src is left detached with no callback.
func (o *Observer[T]) MoveFrom(src *Observer[T]) {
	if src == nil || src == o {
		return
	}
	o.fn, src.fn = src.fn, nil
	o.Close()

	subjects := src.subjects
	src.subjects = nil
	for _, s := range subjects {
		s.replace(src, o)
		o.subjects = append(o.subjects, s)
	}
}

// notify forwards v to the callback, if there is one.
func (o *Observer[T]) notify(v T) {
	if o.fn == nil {
		return
	}
	o.fn(v)
}

// detach removes the first back-reference to s.
func (o *Observer[T]) detach(s *Subject[T]) {
	o.subjects = removeFirst(o.subjects, s)
}
