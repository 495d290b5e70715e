package rest

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

type newRoomResponse struct {
	RoomID string `json:"roomId"`
}

type joinResponse struct {
	UserID      string   `json:"userId"`
	Users       []string `json:"users"`
	CurrentTurn *string  `json:"currentTurn"`
}

type pollResponse struct {
	Messages    entity.EventLog `json:"messages"`
	Users       []string        `json:"users"`
	CurrentTurn *string         `json:"currentTurn"`
}

type sendRequest struct {
	Type   string `json:"type" validate:"required,oneof=move leave"`
	UserID string `json:"userId" validate:"required"`
	X      *int   `json:"x" validate:"required_if=Type move"`
	Y      *int   `json:"y" validate:"required_if=Type move"`
}

type sendResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// nullable - an unset turn is sent as null.
func nullable(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
