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
	ErrMatchNotFound            = errors.New("match not found")
	ErrMatchInvalidChampionship = errors.New("invalid championship reference")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByChampionship(ctx context.Context, championshipID *int) ([]models.Match, error)
	ListByStage(ctx context.Context, championshipID int, stage string) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, championship_id, round, date, match_time, home_team, away_team,
	home_score, away_score, is_finished, cup_stage,
	is_technical_defeat, technical_winner,
	penalty_home, penalty_away, penalty_winner, created_at
`

const matchSelect = `SELECT` + matchColumns + `FROM matches`

func scanMatch(row interface{ Scan(...interface{}) error }, m *models.Match) error {
	return row.Scan(
		&m.ID, &m.ChampionshipID, &m.Round, &m.Date, &m.MatchTime,
		&m.HomeTeam, &m.AwayTeam, &m.HomeScore, &m.AwayScore,
		&m.IsFinished, &m.CupStage,
		&m.IsTechnicalDefeat, &m.TechnicalWinner,
		&m.PenaltyHome, &m.PenaltyAway, &m.PenaltyWinner, &m.CreatedAt,
	)
}

func (r *postgresMatchRepository) Create(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (
			championship_id, round, date, match_time, home_team, away_team,
			home_score, away_score, is_finished, cup_stage,
			is_technical_defeat, technical_winner,
			penalty_home, penalty_away, penalty_winner
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		m.ChampionshipID, m.Round, m.Date, m.MatchTime, m.HomeTeam, m.AwayTeam,
		m.HomeScore, m.AwayScore, m.IsFinished, m.CupStage,
		m.IsTechnicalDefeat, m.TechnicalWinner,
		m.PenaltyHome, m.PenaltyAway, m.PenaltyWinner,
	).Scan(&m.ID, &m.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := matchSelect + ` WHERE id = $1`

	m := &models.Match{}
	err := scanMatch(r.db.QueryRowContext(ctx, query, id), m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Match, error) {
	query := matchSelect + ` WHERE 1=1`

	args := []interface{}{}
	if championshipID != nil {
		query += " AND championship_id = $1"
		args = append(args, *championshipID)
	}
	query += " ORDER BY round ASC, date ASC, id ASC"

	return r.queryMatches(ctx, query, args...)
}

func (r *postgresMatchRepository) ListByStage(ctx context.Context, championshipID int, stage string) ([]models.Match, error) {
	query := matchSelect + `
		WHERE championship_id = $1 AND cup_stage = $2
		ORDER BY date ASC, id ASC`

	return r.queryMatches(ctx, query, championshipID, stage)
}

func (r *postgresMatchRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := scanMatch(rows, &m); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, m *models.Match) error {
	query := `
		UPDATE matches SET
			championship_id = $1,
			round = $2,
			date = $3,
			match_time = $4,
			home_team = $5,
			away_team = $6,
			home_score = $7,
			away_score = $8,
			is_finished = $9,
			cup_stage = $10,
			is_technical_defeat = $11,
			technical_winner = $12,
			penalty_home = $13,
			penalty_away = $14,
			penalty_winner = $15
		WHERE id = $16`

	result, err := r.db.ExecContext(ctx, query,
		m.ChampionshipID, m.Round, m.Date, m.MatchTime, m.HomeTeam, m.AwayTeam,
		m.HomeScore, m.AwayScore, m.IsFinished, m.CupStage,
		m.IsTechnicalDefeat, m.TechnicalWinner,
		m.PenaltyHome, m.PenaltyAway, m.PenaltyWinner,
		m.ID,
	)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	// События голов матча удаляются каскадом.
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" {
			return ErrMatchInvalidChampionship
		}
	}
	return err
}
