package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/longpath/core"
)

// TestConcurrentReadersDuringInsert runs readers against a graph that is
// still being written. Run with -race; assertions stay on the main goroutine.
func TestConcurrentReadersDuringInsert(t *testing.T) {
	g := core.NewGraph(NRounds + 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < NRounds; i++ {
			_ = g.InsertEdge(i, i+1, float64(i))
		}
	}()
	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				_, _ = g.Neighbors(r % (NRounds + 1))
				_ = g.Adjacency()
				_ = g.Size()
			}
		}(r)
	}
	wg.Wait()

	assert.Equal(t, NRounds, g.Size())
	assert.Equal(t, NRounds+1, g.Order())
}
