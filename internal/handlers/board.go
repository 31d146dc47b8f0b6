package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minefield/minefield-server/internal/board"
	"github.com/minefield/minefield-server/internal/config"
	"github.com/minefield/minefield-server/internal/middleware"
	"github.com/minefield/minefield-server/internal/repository"
)

type BoardHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewBoardHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *BoardHandler {
	return &BoardHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

// badParams reports whether err comes from input validation rather
// than game state, deciding between 400 and 500.
func badParams(err error) bool {
	return errors.Is(err, board.ErrBadValue) ||
		errors.Is(err, board.ErrOutOfDomain) ||
		errors.Is(err, board.ErrOutOfRange)
}

func (h BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseBoardParamsDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	b, err := board.New(dto.Size(), dto.MineCount, h.rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	var playerId *int64
	if claims, ok := middleware.PlayerClaims(r); ok {
		playerId = &claims.PlayerId
	}

	session, err := h.repo.CreateBoardSession(r.Context(), repository.CreateBoardSessionParams{
		PlayerId: playerId,
		Board:    b,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create board session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewBoardSessionDTO(session, b, nil))
}

// loadSession fetches the session by its public id path value and
// decodes the stored board.
func (h BoardHandler) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.BoardSession, *board.Board, bool) {
	publicId, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("invalid session id")))
		return nil, nil, false
	}

	session, err := h.repo.FetchBoardSession(r.Context(), publicId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch board session", "error", err)
		return nil, nil, false
	}

	b, err := board.Decode(session.State, h.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to decode board state",
			"sessionId", session.PublicId, "error", err)
		return nil, nil, false
	}
	return session, b, true
}

func (h BoardHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, b, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.logger, NewBoardSessionDTO(session, b, nil))
}

// saveAndReply persists the mutated board and answers with the
// session DTO carrying the drained change batches.
func (h BoardHandler) saveAndReply(
	w http.ResponseWriter, r *http.Request,
	session *repository.BoardSession, b *board.Board,
) {
	changes := b.Modifications().DrainAll()

	params := repository.UpdateBoardSessionParams{Board: b}
	if b.Outcome().Over() && !session.EndedAt.Valid {
		now := time.Now()
		params.EndedAt = &now
	} else if !b.Outcome().Over() && session.EndedAt.Valid {
		params.ClearEndedAt = true
	}

	updated, err := h.repo.UpdateBoardSession(r.Context(), session.PublicId, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update board session",
			"sessionId", session.PublicId, "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewBoardSessionDTO(updated, b, changes))
}

// Move applies one of the three mutating operations, selected by the
// "command" query param: dig, chord or mark.
func (h BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pos, err := ParsePosition(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	session, b, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	switch command := query.Get("command"); command {
	case "dig":
		err = b.DigFieldAt(pos)
	case "chord":
		err = b.DigPerimeterAt(pos)
	case "mark":
		err = b.MarkFieldAt(pos)
	default:
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(
			fmt.Errorf("unknown command %q", command)))
		return
	}
	if err != nil {
		if badParams(err) {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
		} else {
			w.WriteHeader(http.StatusInternalServerError)
			h.logger.Error("move failed", "error", err)
		}
		return
	}

	h.saveAndReply(w, r, session, b)
}

func (h BoardHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	session, b, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	b.Rebuild()
	h.saveAndReply(w, r, session, b)
}

func (h BoardHandler) Resize(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseBoardParamsDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	session, b, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	if err := b.Resize(dto.Size(), dto.MineCount); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	h.saveAndReply(w, r, session, b)
}

func (h BoardHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HighscoreFilter{}

	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if sizeStr := query.Get("size"); sizeStr != "" {
		size, err := board.ParsePoint(sizeStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
		filter.Size = &size
	}
	if countStr := query.Get("mine_count"); countStr != "" {
		count, err := strconv.Atoi(countStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(
				fmt.Errorf("%w: mine_count %q is not an integer",
					board.ErrBadValue, countStr)))
			return
		}
		filter.MineCount = &count
	}

	highscores, err := h.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch highscores", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, highscores)
}
