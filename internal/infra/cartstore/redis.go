package cartstore

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/KingCastle/Javan/internal/domain/cart"
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cart:event:"

	fieldEventID   = "event_id"
	fieldQuantity  = "quantity"
	fieldUnitPrice = "unit_price_cents"
)

// RedisCartStore keeps one event line item per user in a hash that expires
// after the configured idle TTL.
type RedisCartStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCartStore(client redis.Cmdable, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func (s *RedisCartStore) Load(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error) {
	key := cartKey(userID)
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return cart.EmptySnapshot(), errs.Wrapf(err, "load cart %s", key)
	}
	if len(fields) == 0 {
		return cart.EmptySnapshot(), nil
	}

	item, err := decodeLineItem(fields)
	if err != nil {
		// An unreadable cart is dropped rather than blocking the user.
		slog.Warn("discarding malformed cart", "user_id", userID.String(), "error", err.Error())
		if delErr := s.client.Del(ctx, key).Err(); delErr != nil {
			return cart.EmptySnapshot(), errs.Wrapf(delErr, "discard cart %s", key)
		}
		return cart.EmptySnapshot(), nil
	}
	return cart.NewSnapshot(item), nil
}

func (s *RedisCartStore) Put(ctx context.Context, userID uuid.UUID, item cart.LineItem) error {
	key := cartKey(userID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			fieldEventID, item.EventID.String(),
			fieldQuantity, item.Quantity,
			fieldUnitPrice, item.UnitPriceCents,
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return errs.Wrapf(err, "store cart %s", key)
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, userID uuid.UUID) error {
	key := cartKey(userID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errs.Wrapf(err, "clear cart %s", key)
	}
	return nil
}

func decodeLineItem(fields map[string]string) (cart.LineItem, error) {
	eventID, err := uuid.Parse(fields[fieldEventID])
	if err != nil {
		return cart.LineItem{}, errs.Wrap(err, fieldEventID)
	}
	quantity, err := strconv.Atoi(fields[fieldQuantity])
	if err != nil {
		return cart.LineItem{}, errs.Wrap(err, fieldQuantity)
	}
	unitPrice, err := strconv.ParseInt(fields[fieldUnitPrice], 10, 64)
	if err != nil {
		return cart.LineItem{}, errs.Wrap(err, fieldUnitPrice)
	}
	return cart.NewLineItem(eventID, quantity, unitPrice)
}
