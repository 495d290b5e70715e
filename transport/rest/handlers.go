package rest

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

const (
	sendTypeMove  = "move"
	sendTypeLeave = "leave"

	maxBodyBytes = 1 << 10
)

//go:embed static/index.html
var indexPage []byte

// handlerFunc - a handler that reports failures by returning them, see handle.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (that *Server) handle(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			that.writeError(w, r, err)
		}
	}
}

func (that *Server) pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}

func (that *Server) newRoomHandler(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, newRoomResponse{RoomID: pkg.GenerateRoomID()})
}

func (that *Server) joinHandler(w http.ResponseWriter, r *http.Request) error {
	result, err := that.rooms.Join(r.Context(), chi.URLParam(r, "roomID"))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, joinResponse{
		UserID:      result.UserID,
		Users:       result.Users,
		CurrentTurn: nullable(result.CurrentTurn),
	})
}

func (that *Server) pollHandler(w http.ResponseWriter, r *http.Request) error {
	sinceID, err := strconv.Atoi(chi.URLParam(r, "sinceID"))
	if err != nil {
		return badRequest(fmt.Errorf("cursor must be an integer: %w", err))
	}

	result, err := that.rooms.Poll(r.Context(), chi.URLParam(r, "roomID"), sinceID)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, pollResponse{
		Messages:    result.Messages,
		Users:       result.Users,
		CurrentTurn: nullable(result.CurrentTurn),
	})
}

func (that *Server) sendHandler(w http.ResponseWriter, r *http.Request) error {
	roomID := chi.URLParam(r, "roomID")

	var req sendRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		return badRequest(err)
	}

	if err := that.validate.Struct(req); err != nil {
		return badRequest(err)
	}

	switch req.Type {
	case sendTypeMove:
		if _, err := that.rooms.SubmitMove(r.Context(), roomID, req.UserID, *req.X, *req.Y); err != nil {
			return err
		}
	case sendTypeLeave:
		if err := that.rooms.Leave(r.Context(), roomID, req.UserID); err != nil {
			return err
		}
	default:
		return badRequest(errors.New("unsupported message type"))
	}

	return writeJSON(w, http.StatusOK, sendResponse{Success: true})
}
