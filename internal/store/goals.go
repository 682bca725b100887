package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Goal is a sales target over a date range. Progress is recomputed from
// the sales table whenever an import commits.
type Goal struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Metric      string    `json:"metric"`
	Target      string    `json:"target"`
	Progress    string    `json:"progress"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	Achieved    bool      `json:"achieved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Trophy marks an achieved goal.
type Trophy struct {
	ID        uuid.UUID `json:"id"`
	GoalID    uuid.UUID `json:"goalId"`
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awardedAt"`
}

// GoalInput is the payload for creating a goal.
type GoalInput struct {
	Name        string    `json:"name"`
	Metric      string    `json:"metric"`
	Target      string    `json:"target"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

// Validate checks a goal payload before insert.
func (g *GoalInput) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	switch g.Metric {
	case "revenue", "profit", "units":
	default:
		return fmt.Errorf("metric must be revenue, profit, or units")
	}
	if !g.PeriodEnd.After(g.PeriodStart) {
		return fmt.Errorf("period end must be after period start")
	}
	return nil
}

// CreateGoal inserts a new goal and returns it with progress computed
// from existing sales.
func (s *Store) CreateGoal(ctx context.Context, input GoalInput) (*Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin goal tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	if err := tx.QueryRow(ctx, `
		INSERT INTO goals (name, metric, target, period_start, period_end)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, input.Name, input.Metric, pgNumeric(input.Target),
		input.PeriodStart, input.PeriodEnd).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	if _, err := refreshGoalProgress(ctx, tx); err != nil {
		return nil, err
	}

	var goal Goal
	if err := tx.QueryRow(ctx, `
		SELECT id, name, metric, target::text, progress::text,
			period_start, period_end, achieved, created_at
		FROM goals WHERE id = $1
	`, id).Scan(&goal.ID, &goal.Name, &goal.Metric, &goal.Target,
		&goal.Progress, &goal.PeriodStart, &goal.PeriodEnd,
		&goal.Achieved, &goal.CreatedAt); err != nil {
		return nil, fmt.Errorf("read back goal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit goal tx: %w", err)
	}

	return &goal, nil
}

// ListGoals returns all goals, newest first.
func (s *Store) ListGoals(ctx context.Context) ([]Goal, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, metric, target::text, progress::text,
			period_start, period_end, achieved, created_at
		FROM goals
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.Name, &g.Metric, &g.Target,
			&g.Progress, &g.PeriodStart, &g.PeriodEnd,
			&g.Achieved, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}

	return goals, nil
}

// ListTrophies returns awarded trophies, newest first.
func (s *Store) ListTrophies(ctx context.Context) ([]Trophy, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, goal_id, name, awarded_at
		FROM trophies
		ORDER BY awarded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list trophies: %w", err)
	}
	defer rows.Close()

	var trophies []Trophy
	for rows.Next() {
		var t Trophy
		if err := rows.Scan(&t.ID, &t.GoalID, &t.Name, &t.AwardedAt); err != nil {
			return nil, fmt.Errorf("scan trophy: %w", err)
		}
		trophies = append(trophies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trophies: %w", err)
	}

	return trophies, nil
}

// refreshGoalProgress recomputes progress for every goal from the sales
// in its period, flips achieved where the target is met, and awards one
// trophy per newly achieved goal. Returns the number of goals that
// became achieved in this call.
func refreshGoalProgress(ctx context.Context, tx pgx.Tx) (int, error) {
	if _, err := tx.Exec(ctx, `
		UPDATE goals g
		SET progress = COALESCE((
			SELECT CASE g.metric
				WHEN 'revenue' THEN SUM(s.total_revenue)
				WHEN 'profit'  THEN SUM(s.profit)
				WHEN 'units'   THEN SUM(s.quantity)::numeric
			END
			FROM sales s
			WHERE s.sale_date BETWEEN g.period_start AND g.period_end
		), 0)
	`); err != nil {
		return 0, fmt.Errorf("refresh goal progress: %w", err)
	}

	rows, err := tx.Query(ctx, `
		UPDATE goals
		SET achieved = TRUE
		WHERE NOT achieved AND progress >= target
		RETURNING id, name
	`)
	if err != nil {
		return 0, fmt.Errorf("mark achieved goals: %w", err)
	}

	type achieved struct {
		id   uuid.UUID
		name string
	}
	var newlyAchieved []achieved
	for rows.Next() {
		var a achieved
		if err := rows.Scan(&a.id, &a.name); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan achieved goal: %w", err)
		}
		newlyAchieved = append(newlyAchieved, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate achieved goals: %w", err)
	}

	for _, a := range newlyAchieved {
		if _, err := tx.Exec(ctx, `
			INSERT INTO trophies (goal_id, name)
			VALUES ($1, $2)
			ON CONFLICT (goal_id) DO NOTHING
		`, a.id, a.name); err != nil {
			return 0, fmt.Errorf("award trophy for goal %s: %w", a.id, err)
		}
	}

	return len(newlyAchieved), nil
}
