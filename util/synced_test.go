package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounter(t *testing.T) {
	t.Run("Basic Operations", func(t *testing.T) {
		sc := NewSafeCounter()
		assert.Equal(t, 0, sc.Value())
		assert.Equal(t, 1, sc.Increment())
		assert.Equal(t, 2, sc.Increment())
		assert.Equal(t, 2, sc.Value())
	})

	t.Run("Concurrency", func(t *testing.T) {
		sc := NewSafeCounter()
		var wg sync.WaitGroup
		iterations := 1000

		wg.Add(iterations)
		for i := 0; i < iterations; i++ {
			go func() {
				defer wg.Done()
				sc.Increment()
			}()
		}
		wg.Wait()
		assert.Equal(t, iterations, sc.Value())
	})
}

func TestSafeFlag(t *testing.T) {
	t.Run("TrySet and Clear", func(t *testing.T) {
		sf := NewSafeFlag()
		assert.False(t, sf.Value())

		assert.True(t, sf.TrySet())
		assert.True(t, sf.Value())
		assert.False(t, sf.TrySet(), "second TrySet should lose")

		sf.Clear()
		assert.False(t, sf.Value())
		assert.True(t, sf.TrySet())
	})

	t.Run("Single Winner", func(t *testing.T) {
		sf := NewSafeFlag()
		winners := NewSafeCounter()
		var wg sync.WaitGroup

		wg.Add(50)
		for i := 0; i < 50; i++ {
			go func() {
				defer wg.Done()
				if sf.TrySet() {
					winners.Increment()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, winners.Value())
	})
}
