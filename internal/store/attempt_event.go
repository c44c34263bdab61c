package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempts (sequence, session_id, exercise_id, kind, passed, diagnostic, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.ExerciseID, data.Kind, data.Passed, data.Diagnostic, data.Score, ts.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) Attempts(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	where, args := opts.where()
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, session_id, exercise_id, kind, passed, diagnostic, score, created_at
		 FROM attempts`+where+` ORDER BY sequence DESC`+opts.limit(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var millis int64
		if err := rows.Scan(&a.Sequence, &a.SessionID, &a.ExerciseID, &a.Kind, &a.Passed, &a.Diagnostic, &a.Score, &millis); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Timestamp = time.UnixMilli(millis)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Stats(ctx context.Context, opts QueryOpts) (AttemptStats, error) {
	where, args := opts.where()
	var st AttemptStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(passed), 0), COUNT(DISTINCT exercise_id) FROM attempts`+where,
		args...,
	).Scan(&st.Attempts, &st.Passed, &st.Exercises)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("query attempt stats: %w", err)
	}
	return st, nil
}
