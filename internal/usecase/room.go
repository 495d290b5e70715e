package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

var ErrEmptyRoomID = errors.New("room id is empty")

type RoomUseCase interface {
	Join(ctx context.Context, roomID string) (*JoinResult, error)
	Leave(ctx context.Context, roomID, userID string) error

	SubmitMove(ctx context.Context, roomID, userID string, x, y int) (entity.Move, error)

	Poll(ctx context.Context, roomID string, sinceID int) (*PollResult, error)
}

type roomRepo interface {
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	CreateOrUpdate(ctx context.Context, id string, mutate func(room *entity.Room) error) (*entity.Room, error)
	Update(ctx context.Context, id string, mutate func(room *entity.Room) error) (*entity.Room, error)
}

type JoinResult struct {
	UserID      string
	Users       []string
	CurrentTurn string
}

type PollResult struct {
	Messages    entity.EventLog
	Users       []string
	CurrentTurn string
}

var _ RoomUseCase = (*RoomManager)(nil)

type RoomManager struct {
	logger   *slog.Logger
	roomRepo roomRepo

	generateUserID func() string
}

func NewRoomManager(logger *slog.Logger, roomRepo roomRepo) *RoomManager {
	return &RoomManager{
		logger:   logger.With("component", "room-manager"),
		roomRepo: roomRepo,

		generateUserID: pkg.GenerateUserID,
	}
}

// Join - adds a new user to the room, creating the room on first use.
func (that *RoomManager) Join(ctx context.Context, roomID string) (*JoinResult, error) {
	log := that.logger.With("method", "Join", "roomID", roomID)

	if roomID == "" {
		return nil, ErrEmptyRoomID
	}

	userID := that.generateUserID()

	room, err := that.roomRepo.CreateOrUpdate(ctx, roomID, func(room *entity.Room) error {
		_, err := room.AddUser(userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join room: %w", err)
	}

	log.Info("user joined", "userID", userID, "users", len(room.Users))

	return &JoinResult{
		UserID:      userID,
		Users:       room.Users,
		CurrentTurn: room.CurrentTurn,
	}, nil
}

// Leave - removes the user from the room and records it in the log.
func (that *RoomManager) Leave(ctx context.Context, roomID, userID string) error {
	log := that.logger.With("method", "Leave", "roomID", roomID)

	room, err := that.roomRepo.Update(ctx, roomID, func(room *entity.Room) error {
		_, err := room.RemoveUser(userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to leave room: %w", err)
	}

	log.Info("user left", "userID", userID, "users", len(room.Users))

	return nil
}

// SubmitMove - validates and applies a move in one conditional write.
func (that *RoomManager) SubmitMove(ctx context.Context, roomID, userID string, x, y int) (entity.Move, error) {
	log := that.logger.With("method", "SubmitMove", "roomID", roomID, "userID", userID)

	var move entity.Move

	_, err := that.roomRepo.Update(ctx, roomID, func(room *entity.Room) error {
		var err error
		move, err = room.MakeMove(userID, x, y)
		return err
	})
	if err != nil {
		log.Debug("move rejected", "x", x, "y", y, "error", err)
		return entity.Move{}, fmt.Errorf("failed to make move: %w", err)
	}

	if move.IsWinning() {
		log.Info("game finished", "winner", move.Winner, "eventID", move.ID)
	}

	return move, nil
}

// Poll - events newer than sinceID plus the current membership and turn.
func (that *RoomManager) Poll(ctx context.Context, roomID string, sinceID int) (*PollResult, error) {
	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &PollResult{
		Messages:    room.EventsSince(sinceID),
		Users:       room.Users,
		CurrentTurn: room.CurrentTurn,
	}, nil
}
