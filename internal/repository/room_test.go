package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
)

const roomTTL = time.Minute

func addUser(userID string) MutateFunc {
	return func(room *entity.Room) error {
		_, err := room.AddUser(userID)
		return err
	}
}

func TestRoomRepository_CreateOrUpdate(t *testing.T) {
	t.Run("Creates a missing room with TTL", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL})

		// When: the first user joins an unknown room
		room, err := roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-a"))

		// Then: the room is stored under its key with an expiration
		require.NoError(t, err)
		assert.Equal(t, "abc", room.ID)
		assert.Equal(t, []string{"User-a"}, room.Users)

		ttl, err := st.Storage.TTL(ctx, DefaultKeyPrefix+"abc").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, roomTTL)
	})

	t.Run("Rejected mutation writes nothing", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL})

		// Given: a full room
		_, err := roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-a"))
		require.NoError(t, err)
		_, err = roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-b"))
		require.NoError(t, err)

		// When: a third user tries to join
		_, err = roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-c"))

		// Then: ErrRoomFull is returned and the stored room is unchanged
		require.ErrorIs(t, err, apperror.ErrRoomFull)

		stored, err := roomRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, []string{"User-a", "User-b"}, stored.Users)
		assert.Equal(t, 2, stored.LastEventID())
	})

	t.Run("Concurrent joins never lose an update", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL, MaxRetries: 50})

		// When: many users join the same room at once
		const joiners = 10

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			joined  int
			failure []error
		)

		for i := 0; i < joiners; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				_, err := roomRepo.CreateOrUpdate(ctx, "race", addUser(fmt.Sprintf("User-%d", i)))

				mu.Lock()
				defer mu.Unlock()

				if err == nil {
					joined++
					return
				}
				failure = append(failure, err)
			}(i)
		}
		wg.Wait()

		// Then: exactly two joins succeed and the log matches the membership
		assert.Equal(t, entity.MaxUsers, joined)
		for _, err := range failure {
			assert.True(t, errors.Is(err, apperror.ErrRoomFull) || errors.Is(err, apperror.ErrConflict), err)
		}

		stored, err := roomRepo.GetByID(ctx, "race")
		require.NoError(t, err)
		assert.Len(t, stored.Users, entity.MaxUsers)
		assert.Equal(t, entity.MaxUsers, stored.LastEventID())
	})
}

func TestRoomRepository_Update(t *testing.T) {
	t.Run("Missing room", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL})

		// When: a move is applied to a room that was never created
		_, err := roomRepo.Update(ctx, "nope", func(room *entity.Room) error {
			_, err := room.MakeMove("User-a", 0, 0)
			return err
		})

		// Then: ErrRoomNotFound is returned and nothing is created
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)

		exists, err := st.Storage.Exists(ctx, DefaultKeyPrefix+"nope").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})

	t.Run("Refreshes TTL on every write", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL})

		// Given: a started room whose key is about to expire
		_, err := roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-a"))
		require.NoError(t, err)
		_, err = roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-b"))
		require.NoError(t, err)
		require.NoError(t, st.Storage.Expire(ctx, DefaultKeyPrefix+"abc", 5*time.Second).Err())

		// When: a move is written
		room, err := roomRepo.Update(ctx, "abc", func(room *entity.Room) error {
			_, err := room.MakeMove("User-a", 7, 7)
			return err
		})

		// Then: the move is stored and the TTL is back to the full value
		require.NoError(t, err)
		assert.Equal(t, "User-b", room.CurrentTurn)

		ttl, err := st.Storage.TTL(ctx, DefaultKeyPrefix+"abc").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 5*time.Second)
	})
}

func TestRoomRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL, KeyPrefix: "gomoku:"})

		_, err := roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-a"))
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		room, err := roomRepo.GetByID(ctx, "abc")

		// Then: the retrieved room should match the saved room
		require.NoError(t, err)
		assert.Equal(t, "abc", room.ID)
		assert.Equal(t, "User-a", room.CurrentTurn)
		require.Len(t, room.Messages, 1)
		assert.Equal(t, entity.EventUserJoined, room.Messages[0].Type())

		exists, err := st.Storage.Exists(ctx, "gomoku:abc").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL})

		room, err := roomRepo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		assert.Nil(t, room)
	})

	t.Run("GetByID_CorruptValue", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL})
		require.NoError(t, st.Storage.Set(ctx, DefaultKeyPrefix+"bad", "not json", 0).Err())

		_, err := roomRepo.GetByID(ctx, "bad")

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrRoomNotFound)
	})
}

func TestRoomRepository_CanceledContext(t *testing.T) {
	_, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage, Options{TTL: roomTTL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := roomRepo.CreateOrUpdate(ctx, "abc", addUser("User-a"))

	require.Error(t, err)
}
