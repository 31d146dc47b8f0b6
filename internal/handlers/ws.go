package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/minefield/minefield-server/internal/board"
	"github.com/minefield/minefield-server/internal/repository"
)

var wsCommandNargs = map[string]int{
	"g": 0, // fetch full grid
	"d": 2, // dig
	"c": 2, // chord
	"m": 2, // mark
	"r": 0, // rebuild
}

func parseWsPosition(args []string) (board.Point, error) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return board.Point{}, fmt.Errorf("first argument must be an int")
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return board.Point{}, fmt.Errorf("second argument must be an int")
	}
	return board.Point{X: x, Y: y}, nil
}

// applyWsCommand runs one text command against the board. Commands
// mirror the HTTP move surface: "d x y", "c x y", "m x y", "r" and
// "g" for a full repaint request.
func applyWsCommand(b *board.Board, command string) error {
	parts := strings.Split(strings.TrimSpace(command), " ")

	nargs, ok := wsCommandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("command %q takes %d arguments", parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return nil
	case "r":
		b.Rebuild()
		return nil
	}

	pos, err := parseWsPosition(parts[1:])
	if err != nil {
		return err
	}
	switch parts[0] {
	case "d":
		return b.DigFieldAt(pos)
	case "c":
		return b.DigPerimeterAt(pos)
	case "m":
		return b.MarkFieldAt(pos)
	}
	return fmt.Errorf("invalid command")
}

func (h BoardHandler) persistWs(
	ctx context.Context, session *repository.BoardSession, b *board.Board,
) (*repository.BoardSession, error) {
	params := repository.UpdateBoardSessionParams{Board: b}
	if b.Outcome().Over() && !session.EndedAt.Valid {
		now := time.Now()
		params.EndedAt = &now
	} else if !b.Outcome().Over() && session.EndedAt.Valid {
		params.ClearEndedAt = true
	}
	return h.repo.UpdateBoardSession(ctx, session.PublicId, params)
}

// ConnectWS upgrades the request and serves the text command protocol
// over one session: every command answers with a session frame whose
// change batches let the client repaint incrementally, column by
// column if it wants the animated effect.
func (h BoardHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	publicId, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.repo.FetchBoardSession(r.Context(), publicId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch board session", "error", err)
		return
	}

	b, err := board.Decode(session.State, h.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to decode board state", "error", err)
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure,
				websocket.CloseGoingAway) {
				h.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		if err := applyWsCommand(b, string(message)); err != nil {
			if writeErr := c.WriteJSON(wrapError(err)); writeErr != nil {
				return
			}
			continue
		}

		updated, err := h.persistWs(r.Context(), session, b)
		if err != nil {
			h.logger.Error("unable to persist ws move", slog.Any("error", err))
			return
		}
		session = updated

		frame := NewBoardSessionDTO(session, b, b.Modifications().DrainAll())
		if err := c.WriteJSON(frame); err != nil {
			return
		}
	}
}
