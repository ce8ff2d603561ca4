package git

import (
	"slices"
	"sync"
)

// Dispatcher runs a subscriber callback on the caller's chosen execution context.
type Dispatcher func(func())

// SubscribeOption configures a subscription
type SubscribeOption func(*subscription)

// WithDispatcher delivers notifications through d instead of on the publishing goroutine.
func WithDispatcher(d Dispatcher) SubscribeOption {
	return func(s *subscription) {
		s.dispatch = d
	}
}

type subscription struct {
	id       int
	dispatch Dispatcher
}

// Observable holds a current value and notifies observers of every publish,
// including publishes of an unchanged value. Only the owning package can publish.
// Readers and observers receive copies, so they cannot change the held value.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	clone     func(T) T
	nextID    int
	observers []observer[T]
}

type observer[T any] struct {
	subscription
	fn func(T)
}

// newObservable creates an observable. clone copies values handed out to
// readers; nil means values are shared as is.
func newObservable[T any](initial T, clone func(T) T) *Observable[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Observable[T]{value: clone(initial), clone: clone}
}

// Value returns the current value
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.clone(o.value)
}

// Subscribe delivers the current value to fn and then every future update.
// The returned function removes the subscription.
func (o *Observable[T]) Subscribe(fn func(T), opts ...SubscribeOption) (cancel func()) {
	o.mu.Lock()
	obs := observer[T]{fn: fn}
	obs.id = o.nextID
	o.nextID++
	for _, opt := range opts {
		opt(&obs.subscription)
	}
	o.observers = append(o.observers, obs)
	current := o.value
	o.mu.Unlock()

	obs.deliver(o.clone(current))

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			o.observers = slices.DeleteFunc(o.observers, func(other observer[T]) bool {
				return other.id == obs.id
			})
		})
	}
}

func (o *Observable[T]) publish(v T) {
	o.mu.Lock()
	o.value = o.clone(v)
	observers := slices.Clone(o.observers)
	o.mu.Unlock()

	for _, obs := range observers {
		obs.deliver(o.clone(v))
	}
}

func (obs observer[T]) deliver(v T) {
	if obs.dispatch != nil {
		obs.dispatch(func() { obs.fn(v) })
		return
	}
	obs.fn(v)
}

// Snapshot is a point-in-time copy of the repository state
type Snapshot struct {
	CurrentBranch string
	LocalBranches []string
	AllBranches   []string
}

// Store holds the last-known repository state. Fields are refreshed
// independently; there is no atomic update across fields.
type Store struct {
	currentBranch *Observable[string]
	localBranches *Observable[[]string]
	allBranches   *Observable[[]string]
}

func newStore() *Store {
	return &Store{
		currentBranch: newObservable(UnknownBranch, nil),
		localBranches: newObservable([]string{}, cloneNames),
		allBranches:   newObservable([]string{}, cloneNames),
	}
}

func cloneNames(names []string) []string {
	if names == nil {
		return []string{}
	}
	return slices.Clone(names)
}

// CurrentBranch returns the current branch channel
func (s *Store) CurrentBranch() *Observable[string] {
	return s.currentBranch
}

// LocalBranches returns the local branch list channel
func (s *Store) LocalBranches() *Observable[[]string] {
	return s.localBranches
}

// AllBranches returns the local and remote branch list channel
func (s *Store) AllBranches() *Observable[[]string] {
	return s.allBranches
}

// Snapshot copies the three current values
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		CurrentBranch: s.currentBranch.Value(),
		LocalBranches: s.localBranches.Value(),
		AllBranches:   s.allBranches.Value(),
	}
}

func (s *Store) publishBranches(all bool, names []string) {
	if all {
		s.allBranches.publish(names)
		return
	}
	s.localBranches.publish(names)
}
