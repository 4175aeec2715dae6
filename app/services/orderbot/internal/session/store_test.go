package session

import (
	"sync"
	"testing"
	"time"

	"CluckAI/app/services/orderbot/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreatesOnFirstUpdate(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	_, ok, err := s.Get("s1")
	require.NoError(t, err)
	assert.False(t, ok)

	err = s.Update("s1", func(sess *Session) error {
		assert.Equal(t, "s1", sess.ID)
		assert.Equal(t, PhaseIdle, sess.State.Phase)
		sess.State.LastItem = "Chicken Sandwich"
		return nil
	})
	require.NoError(t, err)

	got, ok, err := s.Get("s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Chicken Sandwich", got.State.LastItem)
}

func TestMemoryStoreSerializesUpdates(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := s.Update("busy", func(sess *Session) error {
				li, err := cart.NewLineItem("Chocolate Chunk Cookie", 1)
				if err != nil {
					return err
				}
				sess.Cart.Append(li)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, ok, err := s.Get("busy")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got.Cart.Items, workers, "no update may be lost")
}

func TestMemoryStoreGetReturnsDetachedSnapshot(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	require.NoError(t, s.Update("s1", func(sess *Session) error {
		for _, name := range []string{"Chicken Sandwich", "Waffle Potato Fries (Large)"} {
			li, err := cart.NewLineItem(name, 1)
			if err != nil {
				return err
			}
			li.Removed = []string{"pickle slices"}
			sess.Cart.Append(li)
		}
		return nil
	}))

	snap, ok, err := s.Get("s1")
	require.NoError(t, err)
	require.True(t, ok)

	// an in-place remove on the live record must not reach the snapshot
	require.NoError(t, s.Update("s1", func(sess *Session) error {
		sess.Cart.RemoveMatching("chicken sandwich")
		sess.Cart.Items[0].Removed[0] = "lettuce"
		return nil
	}))

	require.Len(t, snap.Cart.Items, 2)
	assert.Equal(t, "Chicken Sandwich", snap.Cart.Items[0].Name)
	assert.Equal(t, []string{"pickle slices"}, snap.Cart.Items[0].Removed)
}

func TestMemoryStoreConcurrentGetAndRemove(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			err := s.Update("busy", func(sess *Session) error {
				li, err := cart.NewLineItem("Chocolate Chunk Cookie", 1)
				if err != nil {
					return err
				}
				sess.Cart.Append(li)
				if i%2 == 1 {
					sess.Cart.RemoveMatching("cookie")
				}
				return nil
			})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			snap, ok, err := s.Get("busy")
			assert.NoError(t, err)
			if !ok {
				continue
			}
			for _, item := range snap.Cart.Items {
				assert.Equal(t, "Chocolate Chunk Cookie", item.Name)
			}
		}
	}()
	time.Sleep(100 * time.Millisecond)
	close(done)
	wg.Wait()
}

func TestMemoryStoreUpdateErrorDiscardsNothing(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	require.NoError(t, s.Update("s1", func(sess *Session) error {
		sess.State.LastItem = "Cobb Salad"
		return nil
	}))

	err := s.Update("s1", func(sess *Session) error {
		return assert.AnError
	})
	assert.Error(t, err)

	got, ok, _ := s.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "Cobb Salad", got.State.LastItem)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	require.NoError(t, s.Update("gone", func(*Session) error { return nil }))
	require.NoError(t, s.Delete("gone"))

	_, ok, err := s.Get("gone")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreEvictsIdleSessions(t *testing.T) {
	if testing.Short() {
		t.Skip("eviction rides the one-second timing wheel")
	}

	s := NewMemoryStore(time.Second)
	defer s.Stop()

	require.NoError(t, s.Update("idle", func(*Session) error { return nil }))

	assert.Eventually(t, func() bool {
		_, ok, _ := s.Get("idle")
		return !ok
	}, 10*time.Second, 200*time.Millisecond)
}
