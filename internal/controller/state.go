// Package controller holds the per-screen state controllers. Each controller
// owns one observable state value, runs a fixed sequence of session calls per
// action, and collapses every failure into a display message. Actions are not
// guarded against concurrent re-triggering: the last writer wins.
package controller

import "sync"

// Phase is the lifecycle of one asynchronous operation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the tri-state outcome of one load: Idle, Loading, Success with a
// payload, or Error with a display message. Consumers switch on Phase.
type Result[T any] struct {
	Phase   Phase
	Data    T
	Message string
}

func Idle[T any]() Result[T] {
	return Result[T]{Phase: PhaseIdle}
}

func Loading[T any]() Result[T] {
	return Result[T]{Phase: PhaseLoading}
}

func Success[T any](data T) Result[T] {
	return Result[T]{Phase: PhaseSuccess, Data: data}
}

func Failure[T any](message string) Result[T] {
	return Result[T]{Phase: PhaseError, Message: message}
}

// Observable holds a state value and fans it out to watchers. Watchers always
// see the latest value: a slow watcher skips intermediate states instead of
// blocking the publisher.
type Observable[T any] struct {
	mu       sync.Mutex
	value    T
	watchers []chan T
}

func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set publishes a new value to all watchers.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.value = value
	for _, w := range o.watchers {
		select {
		case <-w:
		default:
		}
		select {
		case w <- value:
		default:
		}
	}
}

// Watch returns a channel carrying state updates. The channel keeps only the
// latest unread value.
func (o *Observable[T]) Watch() <-chan T {
	o.mu.Lock()
	defer o.mu.Unlock()

	w := make(chan T, 1)
	o.watchers = append(o.watchers, w)
	return w
}

// errorMessage collapses an error into a display string, falling back when
// the error carries no text.
func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
