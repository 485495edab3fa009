package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/lib/pq"
)

var (
	ErrGoalNotFound     = errors.New("goal event not found")
	ErrGoalInvalidMatch = errors.New("invalid match reference")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *models.MatchGoal) error
	// ListByMatch упорядочен по минуте по возрастанию;
	// голы без минуты идут последними.
	ListByMatch(ctx context.Context, matchID int) ([]models.MatchGoal, error)
	Delete(ctx context.Context, id int) error
}

type postgresGoalRepository struct {
	db *sql.DB
}

func NewPostgresGoalRepository(db *sql.DB) GoalRepository {
	return &postgresGoalRepository{db: db}
}

func (r *postgresGoalRepository) Create(ctx context.Context, g *models.MatchGoal) error {
	query := `
		INSERT INTO match_goals (match_id, player_name, team_name, minute, goal_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		g.MatchID, g.PlayerName, g.TeamName, g.Minute, g.GoalType,
	).Scan(&g.ID, &g.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrGoalInvalidMatch
		}
		return err
	}
	return nil
}

func (r *postgresGoalRepository) ListByMatch(ctx context.Context, matchID int) ([]models.MatchGoal, error) {
	query := `
		SELECT id, match_id, player_name, team_name, minute, goal_type, created_at
		FROM match_goals
		WHERE match_id = $1
		ORDER BY minute ASC NULLS LAST, id ASC`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.MatchGoal, 0)
	for rows.Next() {
		var g models.MatchGoal
		if scanErr := rows.Scan(
			&g.ID, &g.MatchID, &g.PlayerName, &g.TeamName, &g.Minute, &g.GoalType, &g.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *postgresGoalRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM match_goals WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal event %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrGoalNotFound)
}
