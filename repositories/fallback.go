package repositories

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alinapilipuk-web/kspro/models"
)

// Fallback-обёртки деградируют чтение к фиксированному набору данных,
// когда основное хранилище отвечает ошибкой: страница всегда должна
// что-то отрисовать. Ошибки чтения логируются и не всплывают наружу.
// Записи, наоборот, идут только в основное хранилище и возвращают
// ошибку как есть — админка обязана её показать, тихая подмена
// записи в памяти в сконфигурированной среде недопустима.

type fallbackChampionshipRepository struct {
	primary  ChampionshipRepository
	fallback ChampionshipRepository
	logger   *slog.Logger
}

func NewFallbackChampionshipRepository(primary, fallback ChampionshipRepository, logger *slog.Logger) ChampionshipRepository {
	return &fallbackChampionshipRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *fallbackChampionshipRepository) Create(ctx context.Context, c *models.Championship) error {
	return r.primary.Create(ctx, c)
}

func (r *fallbackChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	c, err := r.primary.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrChampionshipNotFound) {
		r.logger.Warn("championship read failed, using fixture data", slog.Any("error", err))
		return r.fallback.GetByID(ctx, id)
	}
	return c, err
}

func (r *fallbackChampionshipRepository) GetActive(ctx context.Context) (*models.Championship, error) {
	c, err := r.primary.GetActive(ctx)
	if err != nil && !errors.Is(err, ErrNoActiveChampionship) {
		r.logger.Warn("active championship read failed, using fixture data", slog.Any("error", err))
		return r.fallback.GetActive(ctx)
	}
	return c, err
}

func (r *fallbackChampionshipRepository) List(ctx context.Context) ([]models.Championship, error) {
	list, err := r.primary.List(ctx)
	if err != nil {
		r.logger.Warn("championship list failed, using fixture data", slog.Any("error", err))
		return r.fallback.List(ctx)
	}
	return list, nil
}

func (r *fallbackChampionshipRepository) Update(ctx context.Context, c *models.Championship) error {
	return r.primary.Update(ctx, c)
}

func (r *fallbackChampionshipRepository) Delete(ctx context.Context, id int) error {
	return r.primary.Delete(ctx, id)
}

type fallbackTeamRepository struct {
	primary  TeamRepository
	fallback TeamRepository
	logger   *slog.Logger
}

func NewFallbackTeamRepository(primary, fallback TeamRepository, logger *slog.Logger) TeamRepository {
	return &fallbackTeamRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *fallbackTeamRepository) Create(ctx context.Context, t *models.Team) error {
	return r.primary.Create(ctx, t)
}

func (r *fallbackTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	t, err := r.primary.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrTeamNotFound) {
		r.logger.Warn("team read failed, using fixture data", slog.Any("error", err))
		return r.fallback.GetByID(ctx, id)
	}
	return t, err
}

func (r *fallbackTeamRepository) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Team, error) {
	teams, err := r.primary.ListByChampionship(ctx, championshipID)
	if err != nil {
		r.logger.Warn("team list failed, using fixture data", slog.Any("error", err))
		return r.fallback.ListByChampionship(ctx, championshipID)
	}
	return teams, nil
}

func (r *fallbackTeamRepository) Update(ctx context.Context, t *models.Team) error {
	return r.primary.Update(ctx, t)
}

func (r *fallbackTeamRepository) UpdateLogoKey(ctx context.Context, teamID int, logoKey *string) error {
	return r.primary.UpdateLogoKey(ctx, teamID, logoKey)
}

func (r *fallbackTeamRepository) Delete(ctx context.Context, id int) error {
	return r.primary.Delete(ctx, id)
}

type fallbackMatchRepository struct {
	primary  MatchRepository
	fallback MatchRepository
	logger   *slog.Logger
}

func NewFallbackMatchRepository(primary, fallback MatchRepository, logger *slog.Logger) MatchRepository {
	return &fallbackMatchRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *fallbackMatchRepository) Create(ctx context.Context, m *models.Match) error {
	return r.primary.Create(ctx, m)
}

func (r *fallbackMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	m, err := r.primary.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrMatchNotFound) {
		r.logger.Warn("match read failed, using fixture data", slog.Any("error", err))
		return r.fallback.GetByID(ctx, id)
	}
	return m, err
}

func (r *fallbackMatchRepository) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Match, error) {
	matches, err := r.primary.ListByChampionship(ctx, championshipID)
	if err != nil {
		r.logger.Warn("match list failed, using fixture data", slog.Any("error", err))
		return r.fallback.ListByChampionship(ctx, championshipID)
	}
	return matches, nil
}

func (r *fallbackMatchRepository) ListByStage(ctx context.Context, championshipID int, stage string) ([]models.Match, error) {
	matches, err := r.primary.ListByStage(ctx, championshipID, stage)
	if err != nil {
		r.logger.Warn("stage match list failed, using fixture data", slog.Any("error", err))
		return r.fallback.ListByStage(ctx, championshipID, stage)
	}
	return matches, nil
}

func (r *fallbackMatchRepository) Update(ctx context.Context, m *models.Match) error {
	return r.primary.Update(ctx, m)
}

func (r *fallbackMatchRepository) Delete(ctx context.Context, id int) error {
	return r.primary.Delete(ctx, id)
}

type fallbackPlayerRepository struct {
	primary  PlayerRepository
	fallback PlayerRepository
	logger   *slog.Logger
}

func NewFallbackPlayerRepository(primary, fallback PlayerRepository, logger *slog.Logger) PlayerRepository {
	return &fallbackPlayerRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *fallbackPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	return r.primary.Create(ctx, p)
}

func (r *fallbackPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	p, err := r.primary.GetByID(ctx, id)
	if err != nil && !errors.Is(err, ErrPlayerNotFound) {
		r.logger.Warn("player read failed, using fixture data", slog.Any("error", err))
		return r.fallback.GetByID(ctx, id)
	}
	return p, err
}

func (r *fallbackPlayerRepository) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Player, error) {
	players, err := r.primary.ListByChampionship(ctx, championshipID)
	if err != nil {
		r.logger.Warn("player list failed, using fixture data", slog.Any("error", err))
		return r.fallback.ListByChampionship(ctx, championshipID)
	}
	return players, nil
}

func (r *fallbackPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	return r.primary.Update(ctx, p)
}

func (r *fallbackPlayerRepository) Delete(ctx context.Context, id int) error {
	return r.primary.Delete(ctx, id)
}

type fallbackGoalRepository struct {
	primary  GoalRepository
	fallback GoalRepository
	logger   *slog.Logger
}

func NewFallbackGoalRepository(primary, fallback GoalRepository, logger *slog.Logger) GoalRepository {
	return &fallbackGoalRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *fallbackGoalRepository) Create(ctx context.Context, g *models.MatchGoal) error {
	return r.primary.Create(ctx, g)
}

func (r *fallbackGoalRepository) ListByMatch(ctx context.Context, matchID int) ([]models.MatchGoal, error) {
	goals, err := r.primary.ListByMatch(ctx, matchID)
	if err != nil {
		r.logger.Warn("goal list failed, using fixture data", slog.Any("error", err))
		return r.fallback.ListByMatch(ctx, matchID)
	}
	return goals, nil
}

func (r *fallbackGoalRepository) Delete(ctx context.Context, id int) error {
	return r.primary.Delete(ctx, id)
}
