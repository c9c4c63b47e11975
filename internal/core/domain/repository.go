package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrBoardConflict = errors.New("board version conflict")
)

type BoardRepository interface {
	// Create stores a new board. The board starts at Version 1.
	Create(ctx context.Context, board *Board) error

	// GetByID returns a snapshot of the board. Callers may keep the snapshot;
	// later edits never change it.
	GetByID(ctx context.Context, id string) (*Board, error)

	// List returns every board ordered by creation time.
	List(ctx context.Context) ([]*Board, error)

	// Update replaces a board. Implementations must reject the write with
	// ErrBoardConflict when board.Version is not the stored version, and bump
	// the version on success.
	Update(ctx context.Context, board *Board) error

	Delete(ctx context.Context, id string) error

	// GetChanges returns boards modified after since, oldest first.
	GetChanges(ctx context.Context, since time.Time) ([]*Board, error)
}
