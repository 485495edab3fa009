package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
	"github.com/alinapilipuk-web/kspro/storage"
)

var (
	ErrTeamCreateFailed     = errors.New("failed to create team")
	ErrTeamUpdateFailed     = errors.New("failed to update team")
	ErrTeamDeleteFailed     = errors.New("failed to delete team")
	ErrTeamLogoUploadFailed = errors.New("failed to upload team logo")
)

type TeamService interface {
	ListByChampionship(ctx context.Context, championshipID *int) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	Create(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	Update(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error)
	Delete(ctx context.Context, id int) error
	UploadLogo(ctx context.Context, teamID int, file io.Reader, contentType string) (*models.Team, error)
}

type CreateTeamInput struct {
	Name           string `json:"name"`
	ChampionshipID int    `json:"championship_id"`
}

type UpdateTeamInput struct {
	Name *string `json:"name,omitempty"`
}

type teamService struct {
	teamRepo         repositories.TeamRepository
	championshipRepo repositories.ChampionshipRepository
	uploader         storage.FileUploader
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	championshipRepo repositories.ChampionshipRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo:         teamRepo,
		championshipRepo: championshipRepo,
		uploader:         uploader,
	}
}

func (s *teamService) populateLogoURL(t *models.Team) {
	if t.LogoKey != nil {
		url := s.uploader.GetPublicURL(*t.LogoKey)
		if url != "" {
			t.LogoURL = &url
		}
	}
}

func (s *teamService) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	for i := range teams {
		s.populateLogoURL(&teams[i])
	}
	return teams, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	s.populateLogoURL(t)
	return t, nil
}

func (s *teamService) Create(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	// Нельзя завести команду без чемпионата.
	if _, err := s.championshipRepo.GetByID(ctx, input.ChampionshipID); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrNoChampionship
		}
		return nil, fmt.Errorf("failed to check championship %d: %w", input.ChampionshipID, err)
	}

	t := &models.Team{
		Name:           name,
		ChampionshipID: input.ChampionshipID,
	}
	if err := s.teamRepo.Create(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrTeamInvalidChampionship) {
			return nil, ErrNoChampionship
		}
		return nil, fmt.Errorf("%w: %w", ErrTeamCreateFailed, err)
	}
	return t, nil
}

func (s *teamService) Update(ctx context.Context, id int, input UpdateTeamInput) (*models.Team, error) {
	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d for update: %w", id, err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTeamNameRequired
		}
		// Переименование не каскадирует в матчи и игроков: они ссылаются
		// на команду по имени и продолжат указывать на старое.
		t.Name = name
	}

	if err := s.teamRepo.Update(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrTeamUpdateFailed, id, err)
	}
	s.populateLogoURL(t)
	return t, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team %d for delete: %w", id, err)
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrTeamDeleteFailed, id, err)
	}

	// Команда уже удалена, ошибка чистки хранилища её не вернёт.
	if t.LogoKey != nil {
		_ = s.uploader.Delete(ctx, *t.LogoKey)
	}
	return nil
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, file io.Reader, contentType string) (*models.Team, error) {
	t, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d for logo upload: %w", teamID, err)
	}

	key := fmt.Sprintf("teams/%d/logo", teamID)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTeamLogoUploadFailed, err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTeamLogoUploadFailed, err)
	}
	t.LogoKey = &result.Key
	s.populateLogoURL(t)
	return t, nil
}
