// Package syncer keeps a reactive collection consistent across three
// sources: a network entity store (the system of record), a persistent
// cache (an offline mirror) and the in-memory store all observers read.
//
// The policy is invalidate-and-refetch: every successful mutation offers a
// completion signal, and the merged save/remove signals trigger a full
// authoritative reload. Nothing ever patches the collection incrementally.
package syncer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hangmanlive/hangmanlive/internal/store"
	"github.com/hangmanlive/hangmanlive/pkg/validate"
)

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 100
)

// EntityStore is the network collaborator. It is the single source of
// truth for reads; a failed write here means the mutation did not happen.
type EntityStore[T any, ID comparable, D any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Delete(ctx context.Context, id ID) error
}

// Cache is the persistent offline mirror. It is written after every
// successful network mutation and read only when the network is down;
// it never wins a disagreement while the network answers.
type Cache[T any, ID comparable] interface {
	List(ctx context.Context) ([]T, error)
	Put(ctx context.Context, entity T) error
	Delete(ctx context.Context, id ID) error
}

type loadEvent struct {
	ctx context.Context
}

type saveEvent[D any] struct {
	ctx   context.Context
	draft D
}

type removeEvent[ID comparable] struct {
	ctx context.Context
	id  ID
}

type Engine[T any, ID comparable, D any] struct {
	collection *store.Store[[]T]
	draft      *store.Store[D]
	remote     EntityStore[T, ID, D]
	cache      Cache[T, ID]
	validate   func(D) []validate.Message

	load   func(loadEvent)
	save   func(saveEvent[D])
	remove func(removeEvent[ID])

	saved   *store.Signal[struct{}]
	removed *store.Signal[struct{}]
	msgs    *store.Signal[[]validate.Message]
	errs    *store.Signal[error]
}

func New[T any, ID comparable, D any](
	remote EntityStore[T, ID, D],
	cache Cache[T, ID],
	validateFn func(D) []validate.Message,
) *Engine[T, ID, D] {
	var zeroDraft D
	e := &Engine[T, ID, D]{
		collection: store.New([]T(nil)),
		draft:      store.New(zeroDraft),
		remote:     remote,
		cache:      cache,
		validate:   validateFn,
		msgs:       store.NewSignal[[]validate.Message](),
		errs:       store.NewSignal[error](),
	}

	e.load = store.Handle(e.collection, e.loadTransform)
	e.save, e.saved = store.HandleWithOffer(e.draft, e.saveTransform)
	e.remove, e.removed = store.HandleWithOffer(e.collection, e.removeTransform)

	return e
}

// Load replaces the collection with the network store's full listing. The
// replacement is atomic: observers see either the old collection or the
// new one, never a partial patch. When the network stays down after
// retries, the cache mirror is served instead; when even that fails, the
// prior collection is kept and the error surfaced.
func (e *Engine[T, ID, D]) Load(ctx context.Context) {
	e.load(loadEvent{ctx: ctx})
}

// Save validates the draft, then creates the entity remotely, mirrors it
// into the cache and offers a completion signal. An invalid draft is
// rejected before any I/O: validation messages are published and the draft
// value stays as it was. A failed network write leaves cache, draft and
// signals untouched.
func (e *Engine[T, ID, D]) Save(ctx context.Context, draft D) {
	e.save(saveEvent[D]{ctx: ctx, draft: draft})
}

// Remove deletes the entity from the network store and the cache, then
// offers a completion signal. The in-memory collection is not touched
// here; the triggered reload refreshes it from the source of truth.
func (e *Engine[T, ID, D]) Remove(ctx context.Context, id ID) {
	e.remove(removeEvent[ID]{ctx: ctx, id: id})
}

// Run wires the merged save/remove completion signals to Load, so every
// successful mutation is followed by an authoritative reload. It returns
// after starting the trigger loop; ctx stops it.
func (e *Engine[T, ID, D]) Run(ctx context.Context) {
	trigger := store.Merge(e.saved, e.removed)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-trigger:
				e.Load(ctx)
			}
		}
	}()
}

// Collection is the store observers subscribe to for the entity list.
func (e *Engine[T, ID, D]) Collection() *store.Store[[]T] {
	return e.collection
}

// Draft is the store holding the in-progress draft; Save resets it to the
// zero draft on success.
func (e *Engine[T, ID, D]) Draft() *store.Store[D] {
	return e.draft
}

func (e *Engine[T, ID, D]) Saved() *store.Signal[struct{}] {
	return e.saved
}

func (e *Engine[T, ID, D]) Removed() *store.Signal[struct{}] {
	return e.removed
}

// Messages publishes the validation failures of rejected drafts.
func (e *Engine[T, ID, D]) Messages() *store.Signal[[]validate.Message] {
	return e.msgs
}

// Errors publishes network failures that survived the retry policy.
func (e *Engine[T, ID, D]) Errors() *store.Signal[error] {
	return e.errs
}

func (e *Engine[T, ID, D]) Close() {
	e.collection.Close()
	e.draft.Close()
}

func (e *Engine[T, ID, D]) loadTransform(current []T, ev loadEvent) []T {
	var listed []T
	err := e.withRetry(ev.ctx, "list", func() error {
		var err error
		listed, err = e.remote.List(ev.ctx)
		return err
	})
	if err != nil {
		zap.L().Warn("network list failed, serving cache mirror", zap.Error(err))
		cached, cerr := e.cache.List(ev.ctx)
		if cerr != nil {
			e.errs.Publish(fmt.Errorf("load: %w", err))
			return current
		}
		return cached
	}

	e.refreshMirror(ev.ctx, listed)
	return listed
}

func (e *Engine[T, ID, D]) saveTransform(current D, ev saveEvent[D], offer func(struct{})) D {
	if msgs := e.validate(ev.draft); len(msgs) > 0 {
		e.msgs.Publish(msgs)
		return current
	}

	var created T
	err := e.withRetry(ev.ctx, "create", func() error {
		var err error
		created, err = e.remote.Create(ev.ctx, ev.draft)
		return err
	})
	if err != nil {
		e.errs.Publish(fmt.Errorf("save: %w", err))
		return current
	}

	if err := e.cache.Put(ev.ctx, created); err != nil {
		// remote write already succeeded; the mirror is stale until the
		// next full load, not wrong
		zap.L().Warn("cache put failed after create", zap.Error(err))
	}

	offer(struct{}{})
	var zero D
	return zero
}

func (e *Engine[T, ID, D]) removeTransform(current []T, ev removeEvent[ID], offer func(struct{})) []T {
	err := e.withRetry(ev.ctx, "delete", func() error {
		return e.remote.Delete(ev.ctx, ev.id)
	})
	if err != nil {
		e.errs.Publish(fmt.Errorf("remove: %w", err))
		return current
	}

	if err := e.cache.Delete(ev.ctx, ev.id); err != nil {
		zap.L().Warn("cache delete failed after remove", zap.Error(err))
	}

	offer(struct{}{})
	return current
}

func (e *Engine[T, ID, D]) refreshMirror(ctx context.Context, entities []T) {
	g, ctx := errgroup.WithContext(ctx)
	for _, entity := range entities {
		entity := entity
		g.Go(func() error {
			return e.cache.Put(ctx, entity)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("cache mirror refresh incomplete", zap.Error(err))
	}
}

func (e *Engine[T, ID, D]) withRetry(ctx context.Context, op string, fn func() error) error {
	backoff := retryInterval
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == maxRetries {
			break
		}
		zap.L().Warn("network operation failed, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("%s failed after %d attempts: %w", op, maxRetries, err)
}
