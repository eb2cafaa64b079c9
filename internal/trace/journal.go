package trace

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Step is one recorded Compute invocation.
type Step struct {
	Seq          int64 `json:"seq"`
	Base         int   `json:"base"`
	Adjustment   int   `json:"adjustment"`
	Result       int   `json:"result"`
	CounterAfter int64 `json:"counter_after"`
}

// TokenGenerator produces run tokens. The default is UUIDv7; tests inject
// fixed generators for deterministic golden comparison.
type TokenGenerator interface {
	Generate() (string, error)
}

// UUIDv7Generator generates time-ordered UUID run tokens, so tokens sort by
// creation time.
type UUIDv7Generator struct{}

// Generate implements TokenGenerator.
func (UUIDv7Generator) Generate() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("new run token: %w", err)
	}
	return id.String(), nil
}

// Recorder journals the steps of a single run.
//
// Each recorder owns a fresh run token and a monotonic step sequence. Safe
// for concurrent Record calls, though the entry point drives it
// single-threaded.
type Recorder struct {
	store *Store
	token string
	seq   atomic.Int64
}

// NewRecorder registers a new run under a UUIDv7 token and returns its
// recorder.
func (s *Store) NewRecorder(ctx context.Context, app, version, platform string) (*Recorder, error) {
	return s.NewRecorderWith(ctx, app, version, platform, UUIDv7Generator{})
}

// NewRecorderWith registers a new run using the supplied token generator.
func (s *Store) NewRecorderWith(ctx context.Context, app, version, platform string, gen TokenGenerator) (*Recorder, error) {
	token, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (token, app, version, platform) VALUES (?, ?, ?, ?)
	`, token, app, version, platform)
	if err != nil {
		return nil, fmt.Errorf("register run: %w", err)
	}

	return &Recorder{store: s, token: token}, nil
}

// Token returns the run token this recorder writes under.
func (r *Recorder) Token() string {
	return r.token
}

// Record journals one step. The step's Seq is assigned by the recorder;
// the caller fills the remaining fields.
func (r *Recorder) Record(ctx context.Context, step Step) error {
	step.Seq = r.seq.Add(1)

	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO steps (run_token, seq, base, adjustment, result, counter_after)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.token, step.Seq, step.Base, step.Adjustment, step.Result, step.CounterAfter)
	if err != nil {
		return fmt.Errorf("record step: %w", err)
	}
	return nil
}

// ReadSnapshot loads a run's metadata and all of its steps.
func (s *Store) ReadSnapshot(ctx context.Context, runToken string) (*Snapshot, error) {
	snap := &Snapshot{RunToken: runToken}
	err := s.db.QueryRowContext(ctx, `
		SELECT app, version, platform FROM runs WHERE token = ?
	`, runToken).Scan(&snap.App, &snap.Version, &snap.Platform)
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", runToken, err)
	}

	steps, err := s.Steps(ctx, runToken)
	if err != nil {
		return nil, err
	}
	snap.Steps = steps
	return snap, nil
}

// Steps returns all steps of a run in sequence order.
func (s *Store) Steps(ctx context.Context, runToken string) ([]Step, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, base, adjustment, result, counter_after
		FROM steps WHERE run_token = ? ORDER BY seq
	`, runToken)
	if err != nil {
		return nil, fmt.Errorf("read steps: %w", err)
	}
	defer rows.Close()

	var steps []Step
	for rows.Next() {
		var st Step
		if err := rows.Scan(&st.Seq, &st.Base, &st.Adjustment, &st.Result, &st.CounterAfter); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		steps = append(steps, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read steps: %w", err)
	}
	return steps, nil
}
