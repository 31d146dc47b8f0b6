package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/minefield/minefield-server/internal/board"
)

// BoardSession is one stored game: its dimensions, derived outcome and
// the gob-encoded board snapshot.
type BoardSession struct {
	BoardSessionId int64
	PublicId       uuid.UUID
	PlayerId       *int64
	Width          int
	Height         int
	MineCount      int
	Outcome        string
	State          []byte
	StartedAt      pgtype.Timestamptz
	EndedAt        pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type CreateBoardSessionParams struct {
	PlayerId *int64
	Board    *board.Board
}

func (q *Queries) CreateBoardSession(
	ctx context.Context, params CreateBoardSessionParams,
) (*BoardSession, error) {
	state, err := params.Board.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"public_id":  uuid.New(),
		"player_id":  params.PlayerId,
		"width":      params.Board.Size().X,
		"height":     params.Board.Size().Y,
		"mine_count": params.Board.MineCount(),
		"outcome":    params.Board.Outcome().String(),
		"state":      state,
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO board_session (
			public_id, player_id, width, height, mine_count, outcome, state
		)
		VALUES (
			@public_id, @player_id, @width, @height, @mine_count, @outcome, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[BoardSession])
}

func (q *Queries) FetchBoardSession(
	ctx context.Context, publicId uuid.UUID,
) (*BoardSession, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM board_session WHERE public_id = $1", publicId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[BoardSession])
}

type UpdateBoardSessionParams struct {
	Board        *board.Board
	EndedAt      *time.Time
	ClearEndedAt bool
}

// UpdateBoardSession stores the board's current snapshot, dimensions
// and outcome. EndedAt is only written when the caller supplies it;
// ClearEndedAt nulls it out again when a finished game is rebuilt.
func (q *Queries) UpdateBoardSession(
	ctx context.Context, publicId uuid.UUID, params UpdateBoardSessionParams,
) (*BoardSession, error) {
	state, err := params.Board.Bytes()
	if err != nil {
		return nil, err
	}

	parts := []string{
		"width = @width",
		"height = @height",
		"mine_count = @mine_count",
		"outcome = @outcome",
		"state = @state",
		"updated_at = now()",
	}
	args := pgx.NamedArgs{
		"public_id":  publicId,
		"width":      params.Board.Size().X,
		"height":     params.Board.Size().Y,
		"mine_count": params.Board.MineCount(),
		"outcome":    params.Board.Outcome().String(),
		"state":      state,
	}
	if params.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *params.EndedAt
	} else if params.ClearEndedAt {
		parts = append(parts, "ended_at = NULL")
	}

	rows, _ := q.db.Query(
		ctx,
		"UPDATE board_session SET "+strings.Join(parts, ", ")+
			" WHERE public_id = @public_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[BoardSession])
}

// DeleteStaleAnonymousSessions drops unfinished anonymous games not
// touched for the given duration and reports how many went away.
func (q *Queries) DeleteStaleAnonymousSessions(
	ctx context.Context, idle time.Duration,
) (int64, error) {
	tag, err := q.db.Exec(
		ctx,
		`DELETE FROM board_session
		WHERE player_id IS NULL
			AND outcome = 'undefined'
			AND updated_at < now() - make_interval(secs => $1)`,
		idle.Seconds(),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
