package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	DefaultKeyPrefix  = "room:"
	DefaultMaxRetries = 5
)

// MutateFunc - changes a loaded room in memory. Returning an error aborts the write.
type MutateFunc = func(room *entity.Room) error

type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Room, error)

	// CreateOrUpdate - applies mutate to the stored room, or to a new empty room when none exists.
	CreateOrUpdate(ctx context.Context, id string, mutate MutateFunc) (*entity.Room, error)
	// Update - applies mutate to the stored room. Fails with apperror.ErrRoomNotFound when it does not exist.
	Update(ctx context.Context, id string, mutate MutateFunc) (*entity.Room, error)
}

type Options struct {
	TTL        time.Duration
	MaxRetries int
	KeyPrefix  string
}

type dbRoom struct {
	client *redis.Client

	ttl        time.Duration
	maxRetries int
	keyPrefix  string
}

// NewRoomRepository - Redis-backed rooms. Every write is a WATCH/MULTI transaction that also refreshes the TTL.
func NewRoomRepository(client *redis.Client, opts Options) RoomRepository {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}

	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultKeyPrefix
	}

	return &dbRoom{
		client:     client,
		ttl:        opts.TTL,
		maxRetries: opts.MaxRetries,
		keyPrefix:  opts.KeyPrefix,
	}
}

func (that *dbRoom) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	return that.load(ctx, that.client, id)
}

func (that *dbRoom) CreateOrUpdate(ctx context.Context, id string, mutate MutateFunc) (*entity.Room, error) {
	return that.mutate(ctx, id, true, mutate)
}

func (that *dbRoom) Update(ctx context.Context, id string, mutate MutateFunc) (*entity.Room, error) {
	return that.mutate(ctx, id, false, mutate)
}

// mutate - optimistic read-modify-write. EXEC fails when another writer touched the key after WATCH,
// in which case the whole cycle runs again on a fresh snapshot.
func (that *dbRoom) mutate(ctx context.Context, id string, create bool, mutate MutateFunc) (*entity.Room, error) {
	key := that.key(id)

	var result *entity.Room

	txf := func(tx *redis.Tx) error {
		room, err := that.load(ctx, tx, id)
		switch {
		case errors.Is(err, apperror.ErrRoomNotFound) && create:
			room = entity.NewRoom(id)
		case err != nil:
			return err
		}

		if err = mutate(room); err != nil {
			return err
		}

		roomJSON, err := json.Marshal(room)
		if err != nil {
			return fmt.Errorf("could not marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, roomJSON, that.ttl)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to set room: %w", err)
		}

		result = room

		return nil
	}

	for attempt := 0; attempt < that.maxRetries; attempt++ {
		err := that.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return nil, err
	}

	return nil, fmt.Errorf("%w: room %s after %d attempts", apperror.ErrConflict, id, that.maxRetries)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (that *dbRoom) load(ctx context.Context, conn getter, id string) (*entity.Room, error) {
	response, err := conn.Get(ctx, that.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	room := &entity.Room{}
	if err = json.Unmarshal(response, room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	room.ID = id

	return room, nil
}

func (that *dbRoom) key(id string) string {
	return that.keyPrefix + id
}
