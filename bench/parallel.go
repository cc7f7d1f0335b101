package bench

import "sync"

// Parallel returns a case body that calls fn from n goroutines at once and waits
// for all of them. It models several call sites sharing one selector.
func Parallel(n int, fn func()) func() {
	if n < 1 {
		n = 1
	}
	return func() {
		wg := &sync.WaitGroup{}
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				fn()
			}()
		}
		wg.Wait()
	}
}
