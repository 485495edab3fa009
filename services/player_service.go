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
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrPlayerUnknownTeam  = errors.New("player references a team not in this championship")
	ErrPlayerCreateFailed = errors.New("failed to create player")
	ErrPlayerUpdateFailed = errors.New("failed to update player")
	ErrPlayerDeleteFailed = errors.New("failed to delete player")
)

type PlayerService interface {
	// ListByChampionship — список бомбардиров: упорядочен по голам по убыванию.
	ListByChampionship(ctx context.Context, championshipID *int) ([]models.Player, error)
	GetByID(ctx context.Context, id int) (*models.Player, error)
	Create(ctx context.Context, input PlayerInput) (*models.Player, error)
	Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	Delete(ctx context.Context, id int) error
}

type PlayerInput struct {
	Name           string `json:"name"`
	Team           string `json:"team"`
	Goals          int    `json:"goals"`
	ChampionshipID int    `json:"championship_id"`
}

type playerService struct {
	playerRepo       repositories.PlayerRepository
	teamRepo         repositories.TeamRepository
	championshipRepo repositories.ChampionshipRepository
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	teamRepo repositories.TeamRepository,
	championshipRepo repositories.ChampionshipRepository,
) PlayerService {
	return &playerService{
		playerRepo:       playerRepo,
		teamRepo:         teamRepo,
		championshipRepo: championshipRepo,
	}
}

func (s *playerService) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Player, error) {
	players, err := s.playerRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	p, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return p, nil
}

func (s *playerService) validate(ctx context.Context, input *PlayerInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Team = strings.TrimSpace(input.Team)

	if input.Name == "" {
		return ErrPlayerNameRequired
	}
	if input.Team == "" {
		return ErrPlayerTeamRequired
	}

	if _, err := s.championshipRepo.GetByID(ctx, input.ChampionshipID); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return ErrNoChampionship
		}
		return fmt.Errorf("failed to check championship %d: %w", input.ChampionshipID, err)
	}

	teams, err := s.teamRepo.ListByChampionship(ctx, &input.ChampionshipID)
	if err != nil {
		return fmt.Errorf("failed to list teams of championship %d: %w", input.ChampionshipID, err)
	}
	for _, t := range teams {
		if t.Name == input.Team {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPlayerUnknownTeam, input.Team)
}

func (s *playerService) Create(ctx context.Context, input PlayerInput) (*models.Player, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	p := &models.Player{
		Name:           input.Name,
		Team:           input.Team,
		Goals:          input.Goals,
		ChampionshipID: input.ChampionshipID,
	}
	if err := s.playerRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrPlayerInvalidChampionship) {
			return nil, ErrNoChampionship
		}
		return nil, fmt.Errorf("%w: %w", ErrPlayerCreateFailed, err)
	}
	return p, nil
}

func (s *playerService) Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	p := &models.Player{
		ID:             id,
		Name:           input.Name,
		Team:           input.Team,
		Goals:          input.Goals,
		ChampionshipID: input.ChampionshipID,
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrPlayerUpdateFailed, id, err)
	}
	return p, nil
}

func (s *playerService) Delete(ctx context.Context, id int) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrPlayerDeleteFailed, id, err)
	}
	return nil
}
