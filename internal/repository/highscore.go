package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/minefield/minefield-server/internal/board"
)

type Highscore struct {
	PublicId   string  `json:"session_id"`
	Username   *string `json:"username"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	MineCount  int     `json:"mine_count"`
	PlaytimeMs float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username  *string
	Size      *board.Point
	MineCount *int
}

func (f HighscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Size != nil {
		clauses = append(clauses, "width = @width", "height = @height")
		args["width"] = f.Size.X
		args["height"] = f.Size.Y
	}
	if f.MineCount != nil {
		clauses = append(clauses, "mine_count = @mine_count")
		args["mine_count"] = *f.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

// GetHighscores lists won sessions ordered by playtime, optionally
// narrowed to a player and board parameters.
func (q *Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		public_id,
		username,
		width,
		height,
		mine_count,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM board_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		outcome = 'victory'
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
