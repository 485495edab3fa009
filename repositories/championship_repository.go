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
	ErrChampionshipNotFound     = errors.New("championship not found")
	ErrNoActiveChampionship     = errors.New("no active championship")
	ErrChampionshipNameConflict = errors.New("championship name conflict for this season")
)

type ChampionshipRepository interface {
	Create(ctx context.Context, c *models.Championship) error
	GetByID(ctx context.Context, id int) (*models.Championship, error)
	// GetActive возвращает ErrNoActiveChampionship, если активного нет.
	GetActive(ctx context.Context) (*models.Championship, error)
	List(ctx context.Context) ([]models.Championship, error)
	Update(ctx context.Context, c *models.Championship) error
	Delete(ctx context.Context, id int) error
}

type postgresChampionshipRepository struct {
	db *sql.DB
}

func NewPostgresChampionshipRepository(db *sql.DB) ChampionshipRepository {
	return &postgresChampionshipRepository{db: db}
}

func (r *postgresChampionshipRepository) Create(ctx context.Context, c *models.Championship) error {
	query := `
		INSERT INTO championships (name, season, is_active, tournament_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Season, c.IsActive, c.TournamentType,
	).Scan(&c.ID, &c.CreatedAt)

	return r.handleChampionshipError(err)
}

func (r *postgresChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	query := `
		SELECT id, name, season, is_active, tournament_type, created_at
		FROM championships
		WHERE id = $1`

	c := &models.Championship{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Season, &c.IsActive, &c.TournamentType, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresChampionshipRepository) GetActive(ctx context.Context) (*models.Championship, error) {
	// Активным по соглашению бывает не более одного; при нескольких
	// берём последний созданный.
	query := `
		SELECT id, name, season, is_active, tournament_type, created_at
		FROM championships
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT 1`

	c := &models.Championship{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&c.ID, &c.Name, &c.Season, &c.IsActive, &c.TournamentType, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveChampionship
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresChampionshipRepository) List(ctx context.Context) ([]models.Championship, error) {
	query := `
		SELECT id, name, season, is_active, tournament_type, created_at
		FROM championships
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	championships := make([]models.Championship, 0)
	for rows.Next() {
		var c models.Championship
		if scanErr := rows.Scan(
			&c.ID, &c.Name, &c.Season, &c.IsActive, &c.TournamentType, &c.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		championships = append(championships, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return championships, nil
}

func (r *postgresChampionshipRepository) Update(ctx context.Context, c *models.Championship) error {
	query := `
		UPDATE championships SET
			name = $1,
			season = $2,
			is_active = $3,
			tournament_type = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		c.Name, c.Season, c.IsActive, c.TournamentType, c.ID,
	)
	if err != nil {
		return r.handleChampionshipError(err)
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) Delete(ctx context.Context, id int) error {
	// Команды, матчи и игроки чемпионата удаляются каскадом (ON DELETE CASCADE).
	query := `DELETE FROM championships WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete championship %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) handleChampionshipError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23505" {
			return ErrChampionshipNameConflict
		}
	}
	return err
}
