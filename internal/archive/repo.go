package archive

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ysys/soundtime/internal/ledger"
)

// ArchivedEntry is a settlement entry plus its archive batch metadata.
type ArchivedEntry struct {
	ledger.Entry
	BatchID    string
	ArchivedAt time.Time
}

// Repo handles the settlement archive table.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// Archive inserts the entries as one batch and returns its id. An empty
// snapshot is a no-op.
func (r *Repo) Archive(ctx context.Context, entries []ledger.Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	batchID := uuid.NewString()
	archivedAt := time.Now().UTC().Truncate(time.Second)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO settlement_archive(
		 id, cid, batch_id, archived_at, project_name, producer, date,
		 duration_seconds, amount, calculation_method)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
		`,
			e.ID, e.CID, batchID, archivedAt, e.ProjectName, e.Producer,
			e.Date.Format(time.DateOnly), e.DurationSeconds, e.Amount, string(e.Method))
		if err != nil {
			_ = tx.Rollback()
			return "", err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return batchID, nil
}

// List returns the archive newest batch first, preserving insertion order
// within a batch.
func (r *Repo) List(ctx context.Context) ([]ArchivedEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, cid, batch_id, archived_at, project_name, producer, date,
	       duration_seconds, amount, calculation_method
	FROM settlement_archive
	ORDER BY archived_at DESC, batch_id, rowid;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArchivedEntry
	for rows.Next() {
		var a ArchivedEntry
		var date, method string
		if err := rows.Scan(&a.ID, &a.CID, &a.BatchID, &a.ArchivedAt,
			&a.ProjectName, &a.Producer, &date, &a.DurationSeconds, &a.Amount, &method); err != nil {
			return nil, err
		}
		if d, err := time.Parse(time.DateOnly, date); err == nil {
			a.Date = d
		}
		a.Method = ledger.Method(method)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Batches counts distinct archive batches.
func (r *Repo) Batches(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT batch_id) FROM settlement_archive`).Scan(&n)
	return n, err
}
