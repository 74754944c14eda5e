package client

import (
	"sync"
	"time"
)

// Poll exécute fn immédiatement puis à chaque intervalle, et retourne une
// fonction d'arrêt. L'arrêt est idempotent et bloque jusqu'à la fin du
// tick en cours.
func Poll(interval time.Duration, fn func()) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	var once sync.Once

	wg.Add(1)
	go func() {
		defer wg.Done()
		fn()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
		wg.Wait()
	}
}
