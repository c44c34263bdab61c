package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO mastery_events (sequence, session_id, exercise_id, from_state, to_state, trigger_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.ExerciseID, data.FromState, data.ToState, data.Trigger, ts.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) MasteryEvents(ctx context.Context, opts QueryOpts) ([]MasteryEvent, error) {
	where, args := opts.where()
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, session_id, exercise_id, from_state, to_state, trigger_name, created_at
		 FROM mastery_events`+where+` ORDER BY sequence ASC`+opts.limit(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}
	defer rows.Close()

	var out []MasteryEvent
	for rows.Next() {
		var e MasteryEvent
		var millis int64
		if err := rows.Scan(&e.Sequence, &e.SessionID, &e.ExerciseID, &e.FromState, &e.ToState, &e.Trigger, &millis); err != nil {
			return nil, fmt.Errorf("scan mastery event: %w", err)
		}
		e.Timestamp = time.UnixMilli(millis)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mastery events: %w", err)
	}
	return out, nil
}
