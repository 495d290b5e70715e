package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryRoom - process-local rooms for running without Redis. Values are kept serialized,
// so callers never share a *entity.Room, and each room id has its own lock.
type memoryRoom struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	locks   map[string]*sync.Mutex

	ttl time.Duration
	now func() time.Time
}

func NewMemoryRoomRepository(ttl time.Duration) RoomRepository {
	return &memoryRoom{
		entries: make(map[string]memoryEntry),
		locks:   make(map[string]*sync.Mutex),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (that *memoryRoom) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return that.load(id)
}

func (that *memoryRoom) CreateOrUpdate(ctx context.Context, id string, mutate MutateFunc) (*entity.Room, error) {
	return that.mutate(ctx, id, true, mutate)
}

func (that *memoryRoom) Update(ctx context.Context, id string, mutate MutateFunc) (*entity.Room, error) {
	return that.mutate(ctx, id, false, mutate)
}

func (that *memoryRoom) mutate(ctx context.Context, id string, create bool, mutate MutateFunc) (*entity.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	room, err := that.load(id)
	switch {
	case errors.Is(err, apperror.ErrRoomNotFound) && create:
		room = entity.NewRoom(id)
	case err != nil:
		return nil, err
	}

	if err = mutate(room); err != nil {
		return nil, err
	}

	roomJSON, err := json.Marshal(room)
	if err != nil {
		return nil, fmt.Errorf("could not marshal room: %w", err)
	}

	entry := memoryEntry{value: roomJSON}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	that.entries[id] = entry
	that.mu.Unlock()

	return room, nil
}

func (that *memoryRoom) load(id string) (*entity.Room, error) {
	that.mu.Lock()
	entry, ok := that.entries[id]
	if ok && !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt) {
		delete(that.entries, id)
		ok = false
	}
	that.mu.Unlock()

	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	room := &entity.Room{}
	if err := json.Unmarshal(entry.value, room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	room.ID = id

	return room, nil
}

func (that *memoryRoom) lockFor(id string) *sync.Mutex {
	that.mu.Lock()
	defer that.mu.Unlock()

	lock, ok := that.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[id] = lock
	}

	return lock
}
