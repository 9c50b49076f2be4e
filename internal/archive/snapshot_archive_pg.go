package archive

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotArchive keeps a history of encoded inventory snapshots so a fresh
// instance can restore the latest state on startup.
type SnapshotArchive interface {
	Save(ctx context.Context, format string, payload []byte) error
	LoadLatest(ctx context.Context, format string) ([]byte, time.Time, error)
}

type PGSnapshotArchive struct {
	db *pgxpool.Pool
}

func NewSnapshotArchive(db *pgxpool.Pool) SnapshotArchive {
	return &PGSnapshotArchive{db: db}
}

func (a *PGSnapshotArchive) Save(ctx context.Context, format string, payload []byte) error {
	_, err := a.db.Exec(ctx, `INSERT INTO snapshots (format, payload, taken_at) VALUES ($1, $2, now())`, format, payload)
	return err
}

// LoadLatest returns the newest snapshot stored in the given format.
// pgx.ErrNoRows is returned unchanged when the archive is empty.
func (a *PGSnapshotArchive) LoadLatest(ctx context.Context, format string) ([]byte, time.Time, error) {
	row := a.db.QueryRow(ctx, `SELECT payload, taken_at FROM snapshots WHERE format=$1 ORDER BY taken_at DESC, id DESC LIMIT 1`, format)
	var payload []byte
	var takenAt time.Time
	if err := row.Scan(&payload, &takenAt); err != nil {
		return nil, time.Time{}, err
	}
	return payload, takenAt, nil
}

var _ SnapshotArchive = (*PGSnapshotArchive)(nil)
