// Package sqlite implements ports.PredictionLog on an embedded SQLite
// database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PredictionLog = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS predictions (
    id                  TEXT PRIMARY KEY,
    description         TEXT NOT NULL,
    priority            TEXT NOT NULL,
    status              TEXT NOT NULL,
    source              TEXT NOT NULL,
    confidence          REAL NOT NULL,
    priority_confidence REAL,
    status_confidence   REAL,
    created_at          TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_predictions_created ON predictions(created_at);
`

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store is an append-only prediction log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema. path may be ":memory:".
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite: empty database path")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: applying schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Record implements ports.PredictionLog.
func (s *Store) Record(ctx context.Context, description string, result classification.Result) (*ports.Prediction, error) {
	p := &ports.Prediction{
		ID:          uuid.NewString(),
		Description: description,
		Result:      result,
		CreatedAt:   s.now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO predictions
		   (id, description, priority, status, source, confidence, priority_confidence, status_confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, description,
		result.Priority.String(), result.Status.String(), result.Source.String(),
		result.Confidence, nullable(result.PriorityConfidence), nullable(result.StatusConfidence),
		p.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: recording prediction: %w", err)
	}
	return p, nil
}

// Recent implements ports.PredictionLog.
func (s *Store) Recent(ctx context.Context, limit int) ([]ports.Prediction, error) {
	if limit <= 0 {
		return []ports.Prediction{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, priority, status, source, confidence, priority_confidence, status_confidence, created_at
		 FROM predictions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing predictions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]ports.Prediction, 0, limit)
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: listing predictions: %w", err)
	}
	return out, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "prediction-history" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: ping: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanPrediction(rows *sql.Rows) (ports.Prediction, error) {
	var (
		p                        ports.Prediction
		priority, status, source string
		pc, sc                   sql.NullFloat64
		createdAt                string
	)
	if err := rows.Scan(&p.ID, &p.Description, &priority, &status, &source,
		&p.Result.Confidence, &pc, &sc, &createdAt); err != nil {
		return ports.Prediction{}, fmt.Errorf("sqlite: scanning prediction: %w", err)
	}

	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return ports.Prediction{}, fmt.Errorf("sqlite: prediction %s: bad created_at %q: %w", p.ID, createdAt, err)
	}

	p.Result.Priority = classification.Priority(priority)
	p.Result.Status = classification.Status(status)
	p.Result.Source = classification.Source(source)
	p.Result.PriorityConfidence = pointer(pc)
	p.Result.StatusConfidence = pointer(sc)
	p.CreatedAt = ts
	return p, nil
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func pointer(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
