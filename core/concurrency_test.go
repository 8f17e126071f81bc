package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/katalvlaran/socnet/core"
)

// TestGraph_ConcurrentAddAndRead runs writers and readers side by side; the
// race detector is the real assertion here. Errors are collected on a channel
// so *testing.T is never used from a goroutine.
func TestGraph_ConcurrentAddAndRead(t *testing.T) {
	g := core.NewMultiDigraph()
	errCh := make(chan error, NConcurrentAdds)

	var wg sync.WaitGroup
	for i := 0; i < NConcurrentAdds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := g.AddEdge(VertexA, "v"+strconv.Itoa(i%10)); err != nil {
				errCh <- err
			}
		}(i)
	}
	for i := 0; i < NReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_ = g.Edges()
			_, _, _ = g.Degree(VertexA)
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		MustNoError(t, err, "concurrent AddEdge")
	}
	MustEqualInt(t, g.EdgeCount(), NConcurrentAdds, "EdgeCount")
	MustEqualInt(t, g.VertexCount(), 11, "VertexCount")
}
