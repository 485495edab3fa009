package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
)

var (
	ErrChampionshipNameRequired = errors.New("championship name is required")
	ErrChampionshipBadType      = errors.New("tournament type must be league or cup")
	ErrChampionshipNameTaken    = errors.New("championship with this name already exists for the season")
	ErrChampionshipCreateFailed = errors.New("failed to create championship")
	ErrChampionshipUpdateFailed = errors.New("failed to update championship")
	ErrChampionshipDeleteFailed = errors.New("failed to delete championship")
)

type ChampionshipService interface {
	List(ctx context.Context) ([]models.Championship, error)
	GetByID(ctx context.Context, id int) (*models.Championship, error)
	// GetActive возвращает (nil, nil), когда активного чемпионата нет:
	// это поддерживаемое состояние, а не ошибка.
	GetActive(ctx context.Context) (*models.Championship, error)
	Create(ctx context.Context, input CreateChampionshipInput) (*models.Championship, error)
	Update(ctx context.Context, id int, input UpdateChampionshipInput) (*models.Championship, error)
	Delete(ctx context.Context, id int) error
}

type CreateChampionshipInput struct {
	Name           string                `json:"name"`
	Season         string                `json:"season"`
	IsActive       bool                  `json:"is_active"`
	TournamentType models.TournamentType `json:"tournament_type"`
}

type UpdateChampionshipInput struct {
	Name           *string                `json:"name,omitempty"`
	Season         *string                `json:"season,omitempty"`
	IsActive       *bool                  `json:"is_active,omitempty"`
	TournamentType *models.TournamentType `json:"tournament_type,omitempty"`
}

type championshipService struct {
	championshipRepo repositories.ChampionshipRepository
}

func NewChampionshipService(championshipRepo repositories.ChampionshipRepository) ChampionshipService {
	return &championshipService{championshipRepo: championshipRepo}
}

func (s *championshipService) List(ctx context.Context) ([]models.Championship, error) {
	championships, err := s.championshipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list championships: %w", err)
	}
	if championships == nil {
		return []models.Championship{}, nil
	}
	return championships, nil
}

func (s *championshipService) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	c, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship %d: %w", id, err)
	}
	return c, nil
}

func (s *championshipService) GetActive(ctx context.Context) (*models.Championship, error) {
	c, err := s.championshipRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNoActiveChampionship) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active championship: %w", err)
	}
	return c, nil
}

func (s *championshipService) Create(ctx context.Context, input CreateChampionshipInput) (*models.Championship, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrChampionshipNameRequired
	}
	if !input.TournamentType.Valid() {
		return nil, ErrChampionshipBadType
	}

	c := &models.Championship{
		Name:           name,
		Season:         strings.TrimSpace(input.Season),
		IsActive:       input.IsActive,
		TournamentType: input.TournamentType,
	}

	if err := s.championshipRepo.Create(ctx, c); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNameConflict) {
			return nil, ErrChampionshipNameTaken
		}
		return nil, fmt.Errorf("%w: %w", ErrChampionshipCreateFailed, err)
	}
	return c, nil
}

func (s *championshipService) Update(ctx context.Context, id int, input UpdateChampionshipInput) (*models.Championship, error) {
	c, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship %d for update: %w", id, err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrChampionshipNameRequired
		}
		c.Name = name
	}
	if input.Season != nil {
		c.Season = strings.TrimSpace(*input.Season)
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	if input.TournamentType != nil {
		if !input.TournamentType.Valid() {
			return nil, ErrChampionshipBadType
		}
		c.TournamentType = *input.TournamentType
	}

	if err := s.championshipRepo.Update(ctx, c); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		if errors.Is(err, repositories.ErrChampionshipNameConflict) {
			return nil, ErrChampionshipNameTaken
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrChampionshipUpdateFailed, id, err)
	}
	return c, nil
}

func (s *championshipService) Delete(ctx context.Context, id int) error {
	if err := s.championshipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return ErrChampionshipNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrChampionshipDeleteFailed, id, err)
	}
	return nil
}
