package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var (
	errMissingBoard  = errors.New("board is required")
	errMissingAction = errors.New("action is required")
)

type solveService interface {
	Solve(ctx context.Context, board entity.Board) (*entity.Solution, error)
	Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error)
	Move(ctx context.Context, board entity.Board, action entity.Action) (*entity.Position, error)
}

type boardRequest struct {
	Board *entity.Board `json:"board"`
}

type moveRequest struct {
	Board  *entity.Board  `json:"board"`
	Action *entity.Action `json:"action"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type solveHandler struct {
	logger  *slog.Logger
	service solveService
}

func (that *solveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeRequest(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Board == nil {
		that.writeError(w, fmt.Errorf("%w: %w", apperror.ErrInvalidNotation, errMissingBoard))
		return
	}

	solution, err := that.service.Solve(r.Context(), *req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, solution)
}

func (that *solveHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeRequest(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Board == nil {
		that.writeError(w, fmt.Errorf("%w: %w", apperror.ErrInvalidNotation, errMissingBoard))
		return
	}

	analysis, err := that.service.Analyze(r.Context(), *req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, analysis)
}

func (that *solveHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeRequest(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Board == nil {
		that.writeError(w, fmt.Errorf("%w: %w", apperror.ErrInvalidNotation, errMissingBoard))
		return
	}

	if req.Action == nil {
		that.writeError(w, fmt.Errorf("%w: %w", apperror.ErrInvalidCell, errMissingAction))
		return
	}

	position, err := that.service.Move(r.Context(), *req.Board, *req.Action)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, position)
}

// requestError marks a body that could not be decoded.
type requestError struct {
	err error
}

func (that requestError) Error() string {
	return "invalid request body: " + that.err.Error()
}

func (that requestError) Unwrap() error {
	return that.err
}

func decodeRequest(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return requestError{err: err}
	}

	return nil
}

func statusFor(err error) int {
	var reqErr requestError

	// an off-board cell also wraps ErrInvalidMove, so the 400 cases come first
	switch {
	case errors.As(err, &reqErr),
		errors.Is(err, apperror.ErrInvalidNotation),
		errors.Is(err, apperror.ErrInvalidCell):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *solveHandler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *solveHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
