package reconciler

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, id int64, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks keyed by entity id. A second task for an id that is
// still queued or running is rejected, one reconcile per entity at a time.
type WorkerPool struct {
	pool     chan job
	inFlight sync.Map
}

type job struct {
	id   int64
	task Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan job, size)}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for j := range wp.pool {
		if err := j.task(); err != nil {
			zap.L().Error("Task execution failed", zap.Int64("id", j.id), zap.Error(err))
		}
		wp.inFlight.Delete(j.id)
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, id int64, task Task) error {
	if _, loaded := wp.inFlight.LoadOrStore(id, struct{}{}); loaded {
		return nil
	}
	select {
	case <-ctx.Done():
		wp.inFlight.Delete(id)
		return ctx.Err()
	case wp.pool <- job{id: id, task: task}:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}
