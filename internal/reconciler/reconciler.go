// Package reconciler keeps the persistent cache mirror honest. The sync
// engine writes through to the cache on its own mutations, but entities
// removed or changed by other clients would linger there forever. The
// reconciler periodically diffs the mirror against the authoritative store
// and repairs drift.
package reconciler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hangmanlive/hangmanlive/internal/domain"
	"github.com/hangmanlive/hangmanlive/internal/syncer"
)

type Service struct {
	remote         syncer.EntityStore[domain.Transaction, int64, domain.NewTransaction]
	cache          syncer.Cache[domain.Transaction, int64]
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(remote syncer.EntityStore[domain.Transaction, int64, domain.NewTransaction], cache syncer.Cache[domain.Transaction, int64]) *Service {
	return &Service{
		remote:         remote,
		cache:          cache,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.Reconcile(ctx)
		}
	}
}

// Reconcile diffs one snapshot of the authoritative store against the cache.
// Stale or missing entries get rewritten, strays get deleted. When the
// authoritative store is unreachable the cache is left exactly as it is,
// it may be the only copy anyone has.
func (s *Service) Reconcile(ctx context.Context) {
	authoritative, err := s.remote.List(ctx)
	if err != nil {
		zap.L().Warn("Skipping reconcile, authoritative store unreachable", zap.Error(err))
		return
	}

	cached, err := s.cache.List(ctx)
	if err != nil {
		zap.L().Error("Failed to list cache for reconcile", zap.Error(err))
		return
	}

	want := make(map[int64]domain.Transaction, len(authoritative))
	for _, txn := range authoritative {
		want[txn.ID] = txn
	}
	have := make(map[int64]domain.Transaction, len(cached))
	for _, txn := range cached {
		have[txn.ID] = txn
	}

	var g errgroup.Group
	for id, txn := range want {
		txn := txn
		if got, ok := have[id]; ok && got == txn {
			continue
		}
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, txn.ID, func() error {
				return s.cache.Put(ctx, txn)
			})
		})
	}
	for id := range have {
		id := id
		if _, ok := want[id]; ok {
			continue
		}
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, id, func() error {
				return s.cache.Delete(ctx, id)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling reconcile tasks", zap.Error(err))
	}
}
