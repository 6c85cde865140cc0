package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const keyPrefix = "referearn:session:"

// updateAttempts bounds how often Update retries after another writer touched the key.
const updateAttempts = 50

// Redis shares sessions between instances.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Dial connects to addr and pings it.
func Dial(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "failed to reach redis at %s", addr)
	}
	return NewRedis(client, ttl), nil
}

func (r *Redis) Get(ctx context.Context, id string) (Session, error) {
	return get(ctx, r.client, keyPrefix+id)
}

// Update runs fn inside a WATCH/MULTI transaction on the session key and retries
// when another request changed the key in between.
func (r *Redis) Update(ctx context.Context, id string, fn UpdateFunc) (Session, error) {
	key := keyPrefix + id
	var out Session

	txf := func(tx *redis.Tx) error {
		s, err := get(ctx, tx, key)
		if errors.Is(err, ErrNotFound) {
			s = NewSession()
		} else if err != nil {
			return err
		}
		fn(&s)

		raw, err := json.Marshal(s)
		if err != nil {
			return errors.Wrap(err, "encode session")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, r.ttl)
			return nil
		})
		if err == nil {
			out = s
		}
		return err
	}

	for i := 0; i < updateAttempts; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return out, errors.Wrap(err, "redis update")
	}
	return out, errors.Errorf("redis update: key %s changed %d times in a row", key, updateAttempts)
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func get(ctx context.Context, c getter, key string) (Session, error) {
	var s Session
	raw, err := c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return s, ErrNotFound
	}
	if err != nil {
		return s, errors.Wrap(err, "redis get")
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, errors.Wrap(err, "decode session")
	}
	return s, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
