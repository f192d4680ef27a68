package idx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempIDUnique(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := g.TempID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestTempIDUniqueConcurrent(t *testing.T) {
	g := NewGenerator()

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]struct{})

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := g.TempID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestGeneratorsDoNotCollide(t *testing.T) {
	a := NewGenerator()
	b := NewGenerator()
	assert.NotEqual(t, a.TempID(), b.TempID())
}

func TestIsTemp(t *testing.T) {
	g := NewGenerator()
	assert.True(t, IsTemp(g.TempID()))
	assert.False(t, IsTemp("64f1c0ffee"))
	assert.False(t, IsTemp(""))
}
