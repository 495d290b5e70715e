package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/gomoku-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

type mutateFunc = func(room *entity.Room) error

func newTestManager(t *testing.T, repo roomRepo, ids ...string) *RoomManager {
	t.Helper()

	manager := NewRoomManager(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

	next := 0
	manager.generateUserID = func() string {
		require.Less(t, next, len(ids), "unexpected user id request")
		id := ids[next]
		next++
		return id
	}

	return manager
}

// applyTo - makes the mocked repository run the mutation against the given room, like the real store does.
func applyTo(room *entity.Room) func(context.Context, string, mutateFunc) (*entity.Room, error) {
	return func(_ context.Context, _ string, mutate mutateFunc) (*entity.Room, error) {
		if err := mutate(room); err != nil {
			return nil, err
		}

		return room, nil
	}
}

func startedRoom(t *testing.T) *entity.Room {
	t.Helper()

	room := entity.NewRoom("abc")
	_, err := room.AddUser("User-a")
	require.NoError(t, err)
	_, err = room.AddUser("User-b")
	require.NoError(t, err)

	return room
}

func TestRoomManager_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("First user creates the room and gets the turn", func(t *testing.T) {
		// Given: a repository without the room
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo, "User-a")

		mockRoomRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(entity.NewRoom("abc"))).
			Once()

		// When: a user joins
		result, err := manager.Join(ctx, "abc")

		// Then: the user is alone and holds the turn
		require.NoError(t, err)
		assert.Equal(t, &JoinResult{UserID: "User-a", Users: []string{"User-a"}, CurrentTurn: "User-a"}, result)
	})

	t.Run("Second user sees the first user's turn", func(t *testing.T) {
		// Given: a room with one member
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo, "User-b")

		room := entity.NewRoom("abc")
		_, err := room.AddUser("User-a")
		require.NoError(t, err)

		mockRoomRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(room)).
			Once()

		// When: a second user joins
		result, err := manager.Join(ctx, "abc")

		// Then: both are members and the first user still holds the turn
		require.NoError(t, err)
		assert.Equal(t, "User-b", result.UserID)
		assert.Equal(t, []string{"User-a", "User-b"}, result.Users)
		assert.Equal(t, "User-a", result.CurrentTurn)
		assert.Equal(t, 2, room.LastEventID())
	})

	t.Run("Full room", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo, "User-c")

		mockRoomRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(startedRoom(t))).
			Once()

		result, err := manager.Join(ctx, "abc")

		require.ErrorIs(t, err, apperror.ErrRoomFull)
		assert.Nil(t, result)
	})

	t.Run("Storage failure", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo, "User-a")

		mockRoomRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "abc", mock.Anything).
			Return(nil, errRedisDown).
			Once()

		result, err := manager.Join(ctx, "abc")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, result)
	})

	t.Run("Empty room id", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)

		_, err := manager.Join(ctx, "")

		require.ErrorIs(t, err, ErrEmptyRoomID)
	})
}

func TestRoomManager_SubmitMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted move passes the turn", func(t *testing.T) {
		// Given: a started room
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)
		room := startedRoom(t)

		mockRoomRepo.EXPECT().
			Update(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(room)).
			Once()

		// When: the first user moves
		move, err := manager.SubmitMove(ctx, "abc", "User-a", 7, 7)

		// Then: the move is recorded and the turn passes
		require.NoError(t, err)
		assert.Equal(t, entity.Move{ID: 3, UserID: "User-a", X: 7, Y: 7}, move)
		assert.Equal(t, "User-b", room.CurrentTurn)
	})

	t.Run("Move out of turn does not touch the board", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)
		room := startedRoom(t)

		mockRoomRepo.EXPECT().
			Update(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(room)).
			Once()

		_, err := manager.SubmitMove(ctx, "abc", "User-b", 7, 7)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.True(t, room.Board.IsEmpty(7, 7))
		assert.Equal(t, "User-a", room.CurrentTurn)
	})

	t.Run("Missing room", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)

		mockRoomRepo.EXPECT().
			Update(mock.Anything, "nope", mock.Anything).
			Return(nil, apperror.ErrRoomNotFound).
			Once()

		_, err := manager.SubmitMove(ctx, "nope", "User-a", 0, 0)

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Conflict is surfaced", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)

		mockRoomRepo.EXPECT().
			Update(mock.Anything, "abc", mock.Anything).
			Return(nil, apperror.ErrConflict).
			Once()

		_, err := manager.SubmitMove(ctx, "abc", "User-a", 0, 0)

		require.ErrorIs(t, err, apperror.ErrConflict)
	})

	t.Run("Winning move", func(t *testing.T) {
		// Given: A has four stones on row 7 and holds the turn
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)
		room := startedRoom(t)
		for i := 0; i < 4; i++ {
			_, err := room.MakeMove("User-a", 7+i, 7)
			require.NoError(t, err)
			_, err = room.MakeMove("User-b", 7+i, 8)
			require.NoError(t, err)
		}

		mockRoomRepo.EXPECT().
			Update(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(room)).
			Once()

		// When: A places the fifth stone
		move, err := manager.SubmitMove(ctx, "abc", "User-a", 11, 7)

		// Then: the move carries the winner
		require.NoError(t, err)
		assert.Equal(t, "User-a", move.Winner)
		assert.True(t, room.IsFinished())
	})
}

func TestRoomManager_Leave(t *testing.T) {
	ctx := context.Background()

	t.Run("Member leaves", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)
		room := startedRoom(t)

		mockRoomRepo.EXPECT().
			Update(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(room)).
			Once()

		err := manager.Leave(ctx, "abc", "User-a")

		require.NoError(t, err)
		assert.Equal(t, []string{"User-b"}, room.Users)
		assert.Equal(t, entity.EventUserLeft, room.Messages[len(room.Messages)-1].Type())
	})

	t.Run("Stranger cannot leave", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)

		mockRoomRepo.EXPECT().
			Update(mock.Anything, "abc", mock.Anything).
			RunAndReturn(applyTo(startedRoom(t))).
			Once()

		err := manager.Leave(ctx, "abc", "User-x")

		require.ErrorIs(t, err, apperror.ErrUserNotInRoom)
	})
}

func TestRoomManager_Poll(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns events after the cursor", func(t *testing.T) {
		// Given: a room with two joins and a move
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)
		room := startedRoom(t)
		_, err := room.MakeMove("User-a", 0, 0)
		require.NoError(t, err)

		mockRoomRepo.EXPECT().
			GetByID(mock.Anything, "abc").
			Return(room, nil).
			Once()

		// When: a client polls with cursor 1
		result, err := manager.Poll(ctx, "abc", 1)

		// Then: it gets events 2 and 3 with the current state
		require.NoError(t, err)
		require.Len(t, result.Messages, 2)
		assert.Equal(t, 2, result.Messages[0].EventID())
		assert.Equal(t, 3, result.Messages[1].EventID())
		assert.Equal(t, []string{"User-a", "User-b"}, result.Users)
		assert.Equal(t, "User-b", result.CurrentTurn)
	})

	t.Run("Missing room", func(t *testing.T) {
		mockRoomRepo := mockedUseCase.NewMockroomRepo(t)
		manager := newTestManager(t, mockRoomRepo)

		mockRoomRepo.EXPECT().
			GetByID(mock.Anything, "nope").
			Return(nil, apperror.ErrRoomNotFound).
			Once()

		result, err := manager.Poll(ctx, "nope", 0)

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		assert.Nil(t, result)
	})
}
