package handlers

import (
	"github.com/gorilla/schema"

	"github.com/minefield/minefield-server/internal/board"
	"github.com/minefield/minefield-server/internal/repository"
)

type BoardParamsDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func (dto BoardParamsDTO) Size() board.Point {
	return board.Point{X: dto.Width, Y: dto.Height}
}

func ParseBoardParamsDTO(src map[string][]string) (BoardParamsDTO, error) {
	var dto BoardParamsDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func ParsePosition(src map[string][]string) (board.Point, error) {
	var p board.Point
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&p, src)
	return p, err
}

// BoardSessionDTO is the JSON projection of a session: the encoded
// grid for full repaints plus the drained change batches for
// incremental ones.
type BoardSessionDTO struct {
	SessionId string            `json:"session_id"`
	Grid      []board.CellState `json:"grid"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	MineCount int               `json:"mine_count"`
	Outcome   string            `json:"outcome"`
	StartedAt int64             `json:"started_at"`
	EndedAt   *int64            `json:"ended_at,omitempty"`
	Changes   []board.Batch     `json:"changes,omitempty"`
}

func NewBoardSessionDTO(
	session *repository.BoardSession,
	b *board.Board,
	changes []board.Batch,
) *BoardSessionDTO {
	dto := &BoardSessionDTO{
		SessionId: session.PublicId.String(),
		Grid:      b.States(),
		Width:     b.Size().X,
		Height:    b.Size().Y,
		MineCount: b.MineCount(),
		Outcome:   b.Outcome().String(),
		StartedAt: session.StartedAt.Time.UnixMilli(),
		Changes:   changes,
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}
