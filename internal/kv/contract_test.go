package kv

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour every backend has to share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "nobody@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "a@x.com", "1"))
		require.NoError(t, s.Put(ctx, "a@x.com", "2"))

		v, err := s.Get(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "2", v)
	})

	t.Run("put if absent keeps first value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.PutIfAbsent(ctx, "position:1", "a@x.com"))
		require.ErrorIs(t, s.PutIfAbsent(ctx, "position:1", "b@x.com"), ErrKeyExists)

		v, err := s.Get(ctx, "position:1")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", v)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "verify:abc", "a@x.com"))
		require.NoError(t, s.Delete(ctx, "verify:abc"))
		require.NoError(t, s.Delete(ctx, "verify:abc"))

		_, err := s.Get(ctx, "verify:abc")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by prefix in lexical order", func(t *testing.T) {
		s := newStore(t)
		for _, k := range []string{"position:2", "b@x.com", "position:10", "a@x.com", "position:1", "wallet:0xab"} {
			require.NoError(t, s.Put(ctx, k, "v"))
		}

		keys, err := s.List(ctx, "position:")
		require.NoError(t, err)
		assert.Equal(t, []string{"position:1", "position:10", "position:2"}, keys)

		all, err := s.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 6)
		assert.Equal(t, "a@x.com", all[0])
	})

	t.Run("list treats glob characters literally", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "we*ird@x.com", "v"))
		require.NoError(t, s.Put(ctx, "weXXird@x.com", "v"))

		keys, err := s.List(ctx, "we*")
		require.NoError(t, err)
		assert.Equal(t, []string{"we*ird@x.com"}, keys)
	})

	t.Run("list treats sql wildcards literally", func(t *testing.T) {
		s := newStore(t)
		for _, k := range []string{"a_b@x.com", "aXb@x.com", "c%d@x.com", "cYYd@x.com"} {
			require.NoError(t, s.Put(ctx, k, "v"))
		}

		keys, err := s.List(ctx, "a_")
		require.NoError(t, err)
		assert.Equal(t, []string{"a_b@x.com"}, keys)

		keys, err = s.List(ctx, "c%")
		require.NoError(t, err)
		assert.Equal(t, []string{"c%d@x.com"}, keys)
	})

	t.Run("concurrent put if absent has one winner", func(t *testing.T) {
		s := newStore(t)

		const writers = 16
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := s.PutIfAbsent(ctx, "position:7", fmt.Sprintf("user%d@x.com", i))
				if err == nil {
					mu.Lock()
					wins++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, ErrKeyExists)
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 1, wins)
	})
}
