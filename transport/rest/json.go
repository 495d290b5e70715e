package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

var errBadRequest = errors.New("bad request")

func badRequest(err error) error {
	return fmt.Errorf("%w: %w", errBadRequest, err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

// statusFor - maps domain errors to HTTP status codes. Unknown errors are internal.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, usecase.ErrEmptyRoomID), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrUserNotInRoom):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrOutOfBounds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrRoomFull),
		errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrGameOver),
		errors.Is(err, apperror.ErrGameNotStarted),
		errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicErrors - errors whose own text is safe to show to clients, most specific first.
var publicErrors = []error{
	apperror.ErrRoomFull,
	apperror.ErrRoomNotFound,
	apperror.ErrUserNotInRoom,
	apperror.ErrGameNotStarted,
	apperror.ErrGameOver,
	apperror.ErrConflict,
	apperror.ErrNotYourTurn,
	apperror.ErrOutOfBounds,
	apperror.ErrCellOccupied,
	usecase.ErrEmptyRoomID,
}

// publicMessage - the text sent to clients; internal details stay in the log.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "Internal Server Error"
	}

	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return err.Error()
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}

	resp := errorResponse{Success: false, Error: publicMessage(err, status)}
	if writeErr := writeJSON(w, status, resp); writeErr != nil {
		that.logger.Error("failed to write error response", "error", writeErr)
	}
}
