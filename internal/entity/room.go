package entity

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const MaxUsers = 2

// Room - the whole state of one game: members, board, turn pointer and event log.
// It is always loaded and stored as one unit.
type Room struct {
	ID          string
	Users       []string
	Board       gomoku.Board
	CurrentTurn string
	Winner      string
	Messages    EventLog
}

func NewRoom(id string) *Room {
	return &Room{
		ID:       id,
		Users:    []string{},
		Messages: EventLog{},
	}
}

func (that *Room) IsFull() bool {
	return len(that.Users) >= MaxUsers
}

func (that *Room) IsFinished() bool {
	return that.Winner != ""
}

func (that *Room) HasUser(userID string) bool {
	return slices.Contains(that.Users, userID)
}

// Opponent - returns the other member of the room, or "" if there is none.
func (that *Room) Opponent(userID string) string {
	for _, user := range that.Users {
		if user != userID {
			return user
		}
	}

	return ""
}

// LastEventID - the id of the newest event, 0 for an empty log.
func (that *Room) LastEventID() int {
	return len(that.Messages)
}

// AddUser - puts a new member into the room. The first member gets the first move.
func (that *Room) AddUser(userID string) (UserJoined, error) {
	if that.IsFull() {
		return UserJoined{}, apperror.ErrRoomFull
	}

	that.Users = append(that.Users, userID)
	if len(that.Users) == 1 {
		that.CurrentTurn = userID
	}

	event := UserJoined{
		ID:     that.nextEventID(),
		UserID: userID,
		Users:  slices.Clone(that.Users),
	}
	that.Messages = append(that.Messages, event)

	return event, nil
}

// RemoveUser - takes a member out of the room and hands the turn to whoever is left.
func (that *Room) RemoveUser(userID string) (UserLeft, error) {
	idx := slices.Index(that.Users, userID)
	if idx < 0 {
		return UserLeft{}, apperror.ErrUserNotInRoom
	}

	that.Users = slices.Delete(that.Users, idx, idx+1)

	if that.CurrentTurn == userID {
		that.CurrentTurn = that.Opponent(userID)
	}

	event := UserLeft{
		ID:     that.nextEventID(),
		UserID: userID,
		Users:  slices.Clone(that.Users),
	}
	that.Messages = append(that.Messages, event)

	return event, nil
}

// MakeMove - validates and applies a move, then records it in the log.
// A winning move keeps the turn pointer where it was and finishes the game.
func (that *Room) MakeMove(userID string, x, y int) (Move, error) {
	if err := that.validateMove(userID, x, y); err != nil {
		return Move{}, err
	}

	that.Board.Set(x, y, userID)

	event := Move{
		ID:     that.nextEventID(),
		UserID: userID,
		X:      x,
		Y:      y,
	}

	if gomoku.HasFiveInLine(&that.Board, x, y, userID) {
		event.Winner = userID
		that.Winner = userID
	} else {
		that.CurrentTurn = that.Opponent(userID)
	}

	that.Messages = append(that.Messages, event)

	return event, nil
}

func (that *Room) validateMove(userID string, x, y int) error {
	if that.IsFinished() {
		return apperror.ErrGameOver
	}

	if !that.IsFull() {
		return apperror.ErrGameNotStarted
	}

	if userID == "" || that.CurrentTurn != userID {
		return apperror.ErrNotYourTurn
	}

	if !gomoku.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	if !that.Board.IsEmpty(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, x, y)
	}

	return nil
}

// EventsSince - events with id greater than cursor, oldest first.
func (that *Room) EventsSince(cursor int) EventLog {
	events := EventLog{}

	for _, event := range that.Messages {
		if event.EventID() > cursor {
			events = append(events, event)
		}
	}

	return events
}

func (that *Room) nextEventID() int {
	return len(that.Messages) + 1
}

// roomRecord - the persisted layout of a room.
type roomRecord struct {
	Users       []string     `json:"users"`
	Messages    EventLog     `json:"messages"`
	Board       gomoku.Board `json:"board"`
	CurrentTurn *string      `json:"currentTurn"`
	Winner      string       `json:"winner,omitempty"`
}

func (that *Room) MarshalJSON() ([]byte, error) {
	rec := roomRecord{
		Users:    that.Users,
		Messages: that.Messages,
		Board:    that.Board,
		Winner:   that.Winner,
	}

	if rec.Users == nil {
		rec.Users = []string{}
	}

	if rec.Messages == nil {
		rec.Messages = EventLog{}
	}

	if that.CurrentTurn != "" {
		turn := that.CurrentTurn
		rec.CurrentTurn = &turn
	}

	return json.Marshal(rec)
}

// UnmarshalJSON - restores everything except ID, which is the storage key and not part of the value.
func (that *Room) UnmarshalJSON(data []byte) error {
	var rec roomRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal room: %w", err)
	}

	that.Users = rec.Users
	if that.Users == nil {
		that.Users = []string{}
	}

	that.Messages = rec.Messages
	if that.Messages == nil {
		that.Messages = EventLog{}
	}

	that.Board = rec.Board
	that.Winner = rec.Winner
	that.CurrentTurn = ""

	if rec.CurrentTurn != nil {
		that.CurrentTurn = *rec.CurrentTurn
	}

	return nil
}
