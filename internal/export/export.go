// Package export writes JSON snapshots of a board to a local file or an
// S3-compatible bucket.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/board/internal/models"
	boardservice "github.com/thenoetrevino/board/internal/services/board"
	cardservice "github.com/thenoetrevino/board/internal/services/card"
)

// Snapshot is the exported state of one board
type Snapshot struct {
	Board      *models.Board    `json:"board"`
	Columns    []ColumnSnapshot `json:"columns"`
	ExportedAt time.Time        `json:"exported_at"`
}

// ColumnSnapshot is a column with the cards it held at export time
type ColumnSnapshot struct {
	ID       int                   `json:"id"`
	Name     string                `json:"name"`
	Position int                   `json:"position"`
	Kind     models.ColumnKind     `json:"kind"`
	Cards    []*models.CardSummary `json:"cards"`
}

// Sink stores an encoded snapshot and reports where it went
type Sink interface {
	Put(ctx context.Context, data []byte) (string, error)
}

// Exporter builds snapshots from the board and card services
type Exporter struct {
	boards boardservice.Service
	cards  cardservice.Service
	now    func() time.Time
}

// New creates an Exporter
func New(boards boardservice.Service, cards cardservice.Service) *Exporter {
	return &Exporter{
		boards: boards,
		cards:  cards,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Snapshot collects the board, its columns in order and their cards
func (e *Exporter) Snapshot(ctx context.Context, boardID int) (*Snapshot, error) {
	details, err := e.boards.GetBoardDetails(ctx, boardID)
	if err != nil {
		return nil, err
	}
	cards, err := e.cards.ListCardsByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	byColumn := make(map[int][]*models.CardSummary, len(details.Columns))
	for _, c := range cards {
		byColumn[c.ColumnID] = append(byColumn[c.ColumnID], c)
	}

	snap := &Snapshot{
		Board: &models.Board{
			ID:        details.ID,
			Name:      details.Name,
			CreatedAt: details.CreatedAt,
		},
		Columns:    make([]ColumnSnapshot, 0, len(details.Columns)),
		ExportedAt: e.now(),
	}
	for _, col := range details.Columns {
		colCards := byColumn[col.ID]
		if colCards == nil {
			colCards = []*models.CardSummary{}
		}
		snap.Columns = append(snap.Columns, ColumnSnapshot{
			ID:       col.ID,
			Name:     col.Name,
			Position: col.Position,
			Kind:     col.Kind,
			Cards:    colCards,
		})
	}
	return snap, nil
}

// Export snapshots a board and hands the indented JSON to sink.
// It returns the location reported by the sink.
func (e *Exporter) Export(ctx context.Context, boardID int, sink Sink) (string, error) {
	snap, err := e.Snapshot(ctx, boardID)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	location, err := sink.Put(ctx, append(data, '\n'))
	if err != nil {
		return "", err
	}
	slog.Info("board exported", "board_id", boardID, "location", location, "bytes", len(data))
	return location, nil
}
