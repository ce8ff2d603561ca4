package git

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObservable(t *testing.T) {
	t.Run("subscribe delivers current value then updates", func(t *testing.T) {
		o := newObservable("a", nil)
		var got []string
		cancel := o.Subscribe(func(v string) { got = append(got, v) })
		defer cancel()

		o.publish("b")
		o.publish("c")
		require.Equal(t, []string{"a", "b", "c"}, got)
		require.Equal(t, "c", o.Value())
	})

	t.Run("unchanged value still notifies", func(t *testing.T) {
		o := newObservable("main", nil)
		count := 0
		cancel := o.Subscribe(func(string) { count++ })
		defer cancel()

		o.publish("main")
		o.publish("main")
		require.Equal(t, 3, count)
	})

	t.Run("cancel stops delivery and is idempotent", func(t *testing.T) {
		o := newObservable(0, nil)
		var got []int
		cancel := o.Subscribe(func(v int) { got = append(got, v) })
		o.publish(1)
		cancel()
		cancel()
		o.publish(2)
		require.Equal(t, []int{0, 1}, got)
	})

	t.Run("cancel removes only its own subscription", func(t *testing.T) {
		o := newObservable(0, nil)
		var first, second []int
		cancelFirst := o.Subscribe(func(v int) { first = append(first, v) })
		cancelSecond := o.Subscribe(func(v int) { second = append(second, v) })
		defer cancelSecond()

		cancelFirst()
		o.publish(7)
		require.Equal(t, []int{0}, first)
		require.Equal(t, []int{0, 7}, second)
	})

	t.Run("dispatcher receives every notification", func(t *testing.T) {
		o := newObservable("x", nil)
		var queued []func()
		dispatch := func(fn func()) { queued = append(queued, fn) }

		var got []string
		cancel := o.Subscribe(func(v string) { got = append(got, v) }, WithDispatcher(dispatch))
		defer cancel()
		o.publish("y")

		require.Empty(t, got)
		require.Len(t, queued, 2)
		for _, fn := range queued {
			fn()
		}
		require.Equal(t, []string{"x", "y"}, got)
	})

	t.Run("readers get copies of slice values", func(t *testing.T) {
		o := newObservable([]string{"main"}, cloneNames)
		cancel := o.Subscribe(func(names []string) {
			names[0] = "changed-by-observer"
		})
		defer cancel()

		published := []string{"main", "feature"}
		o.publish(published)
		published[0] = "changed-by-publisher"

		value := o.Value()
		require.Equal(t, []string{"main", "feature"}, value)
		value[1] = "changed-by-reader"
		require.Equal(t, []string{"main", "feature"}, o.Value())
	})

	t.Run("concurrent publish and subscribe", func(t *testing.T) {
		o := newObservable(0, nil)
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func(n int) {
				defer wg.Done()
				o.publish(n)
			}(i)
			go func() {
				defer wg.Done()
				cancel := o.Subscribe(func(int) {})
				cancel()
			}()
		}
		wg.Wait()
		require.GreaterOrEqual(t, o.Value(), 0)
	})
}

func TestStore(t *testing.T) {
	s := newStore()
	require.Equal(t, Snapshot{
		CurrentBranch: UnknownBranch,
		LocalBranches: []string{},
		AllBranches:   []string{},
	}, s.Snapshot())

	s.publishBranches(false, []string{"main"})
	s.publishBranches(true, []string{"main", "remotes/origin/main"})
	s.currentBranch.publish("main")

	s.LocalBranches().Subscribe(func(names []string) {
		names[0] = "hijacked"
	})()
	require.Equal(t, []string{"main"}, s.LocalBranches().Value())

	snap := s.Snapshot()
	require.Equal(t, "main", snap.CurrentBranch)
	require.Equal(t, []string{"main"}, snap.LocalBranches)
	require.Equal(t, []string{"main", "remotes/origin/main"}, snap.AllBranches)

	snap.LocalBranches[0] = "mutated"
	require.Equal(t, []string{"main"}, s.LocalBranches().Value())
}
