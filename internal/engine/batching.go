package engine

import (
	"sync"
	"time"
)

const (
	ingestBatchSize    = 10
	ingestBatchTimeout = 5 * time.Second
)

// batchBuffer accumulates pending index writes so the worker can flush
// them in groups instead of locking the store per review.
type batchBuffer[T any] struct {
	buffer     []T
	bufferLock sync.Mutex
}

func newBatchBuffer[T any]() *batchBuffer[T] {
	return &batchBuffer[T]{
		buffer: make([]T, 0, ingestBatchSize),
	}
}

func (b *batchBuffer[T]) Add(item T) {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()

	b.buffer = append(b.buffer, item)
}

func (b *batchBuffer[T]) GetAndClear() []T {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()

	if len(b.buffer) == 0 {
		return nil
	}

	batch := b.buffer
	b.buffer = make([]T, 0, ingestBatchSize)
	return batch
}

func (b *batchBuffer[T]) Size() int {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()
	return len(b.buffer)
}
