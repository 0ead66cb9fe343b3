// Package cache is the persistent offline mirror of the transaction
// collection. It shadows the authoritative network store under the fixed
// "txns" namespace and is only ever read when the network is unreachable.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hangmanlive/hangmanlive/internal/domain"
)

const (
	keyTransaction = "txns:%d"
	keyIndex       = "txns:index"
)

var ErrNotFound = errors.New("not found")

type TransactionCache struct {
	client *redis.Client
}

func New(client *redis.Client) *TransactionCache {
	return &TransactionCache{client: client}
}

func (c *TransactionCache) Put(ctx context.Context, txn domain.Transaction) error {
	data, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("can't marshal transaction: %w", err)
	}

	if err := c.client.Set(ctx, fmt.Sprintf(keyTransaction, txn.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("can't cache transaction: %w", err)
	}
	if err := c.client.SAdd(ctx, keyIndex, txn.ID).Err(); err != nil {
		return fmt.Errorf("can't index transaction: %w", err)
	}
	return nil
}

func (c *TransactionCache) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(keyTransaction, id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't read cached transaction: %w", err)
	}

	var txn domain.Transaction
	if err := json.Unmarshal([]byte(data), &txn); err != nil {
		return nil, fmt.Errorf("can't unmarshal cached transaction: %w", err)
	}
	return &txn, nil
}

func (c *TransactionCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, fmt.Sprintf(keyTransaction, id)).Err(); err != nil {
		return fmt.Errorf("can't delete cached transaction: %w", err)
	}
	if err := c.client.SRem(ctx, keyIndex, id).Err(); err != nil {
		return fmt.Errorf("can't unindex transaction: %w", err)
	}
	return nil
}

func (c *TransactionCache) List(ctx context.Context) ([]domain.Transaction, error) {
	ids, err := c.client.SMembers(ctx, keyIndex).Result()
	if err != nil {
		return nil, fmt.Errorf("can't read cache index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := c.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, "txns:"+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("can't bulk get cached transactions: %w", err)
	}

	var txns []domain.Transaction
	for _, cmd := range cmds {
		data, err := cmd.Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			continue
		}
		var txn domain.Transaction
		if err := json.Unmarshal([]byte(data), &txn); err != nil {
			zap.L().Warn("skipping undecodable cached transaction", zap.Error(err))
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
