package store_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"subdomainCrawler/domain/store"
)

func TestUrlStore_Visit(t *testing.T) {
	t.Run("first visit is new, second is not", func(t *testing.T) {
		s := store.NewUrlStore()

		assert.True(t, s.Visit("https://monzo.com/"))
		assert.False(t, s.Visit("https://monzo.com/"))
		assert.Equal(t, 1, s.Len())
	})
	t.Run("only one of many concurrent visitors wins", func(t *testing.T) {
		s := store.NewUrlStore()

		var (
			wg   sync.WaitGroup
			wins int64
		)
		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if s.Visit("https://monzo.com/blog") {
					atomic.AddInt64(&wins, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), wins)
		assert.Equal(t, 1, s.Len())
	})
	t.Run("added urls are no longer new", func(t *testing.T) {
		s := store.NewUrlStore()
		assert.NoError(t, s.Add("https://monzo.com/a"))

		assert.False(t, s.Visit("https://monzo.com/a"))
		assert.True(t, s.Visit("https://monzo.com/b"))
	})
}
