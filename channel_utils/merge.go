package channel_utils

import (
	"sync"

	"github.com/irademos/ai-news-song/application/ports/outbound"
)

// FanIn merges the given channels into a single channel that closes once
// every input is drained. Drain goroutines run on the shared worker pool.
func FanIn[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	merged := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(channels))

	for _, c := range channels {
		ch := c
		err := workerPool.Submit(func() {
			defer wg.Done()
			for val := range ch {
				merged <- val
			}
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	if err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	}); err != nil {
		return nil, err
	}

	return merged, nil
}
