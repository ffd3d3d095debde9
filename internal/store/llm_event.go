package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMEventData is the payload recorded for one LLM request.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request with its identity and timestamp.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryOpts bounds event queries.
type QueryOpts struct {
	Limit int
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	const q = `
INSERT INTO llm_events
	(provider, model, purpose, input_tokens, output_tokens, latency_ms,
	 success, error_message, request_body, response_body)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	const q = `
SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
       latency_ms, success, error_message, request_body, response_body
FROM llm_events ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	const q = `
SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
       latency_ms, success, error_message, request_body, response_body
FROM llm_events WHERE id = ?`

	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanEvent(rows)
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	const q = `
SELECT purpose, COUNT(*), COALESCE(SUM(input_tokens), 0),
       COALESCE(SUM(output_tokens), 0), COALESCE(AVG(latency_ms), 0)
FROM llm_events GROUP BY purpose ORDER BY purpose`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	defer rows.Close()

	var stats []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		var avg float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		stats = append(stats, u)
	}
	return stats, rows.Err()
}

func scanEvent(rows *sql.Rows) (*LLMEvent, error) {
	var e LLMEvent
	err := rows.Scan(
		&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs,
		&e.Success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		return nil, fmt.Errorf("scan llm event: %w", err)
	}
	return &e, nil
}
