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
	ErrPlayerNotFound            = errors.New("player not found")
	ErrPlayerInvalidChampionship = errors.New("invalid championship reference")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	// Список упорядочен по голам по убыванию: это и есть список бомбардиров.
	ListByChampionship(ctx context.Context, championshipID *int) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (name, team, goals, championship_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Team, p.Goals, p.ChampionshipID,
	).Scan(&p.ID, &p.CreatedAt)

	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT id, name, team, goals, championship_id, created_at
		FROM players
		WHERE id = $1`

	p := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Team, &p.Goals, &p.ChampionshipID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresPlayerRepository) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Player, error) {
	query := `
		SELECT id, name, team, goals, championship_id, created_at
		FROM players
		WHERE 1=1`

	args := []interface{}{}
	if championshipID != nil {
		query += " AND championship_id = $1"
		args = append(args, *championshipID)
	}
	query += " ORDER BY goals DESC, name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(
			&p.ID, &p.Name, &p.Team, &p.Goals, &p.ChampionshipID, &p.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	query := `
		UPDATE players SET
			name = $1,
			team = $2,
			goals = $3,
			championship_id = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Team, p.Goals, p.ChampionshipID, p.ID,
	)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM players WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" {
			return ErrPlayerInvalidChampionship
		}
	}
	return err
}
