package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
)

var (
	ErrMatchDateRequired  = errors.New("match date is required")
	ErrMatchTeamsRequired = errors.New("both match teams are required")
	ErrMatchUnknownTeam   = errors.New("match references a team not in this championship")
	ErrMatchCreateFailed  = errors.New("failed to create match")
	ErrMatchUpdateFailed  = errors.New("failed to update match")
	ErrMatchDeleteFailed  = errors.New("failed to delete match")
)

type MatchService interface {
	ListByChampionship(ctx context.Context, championshipID *int) ([]models.Match, error)
	ListByStage(ctx context.Context, championshipID int, stage string) ([]models.Match, error)
	GetByID(ctx context.Context, id int) (*models.Match, error)
	Create(ctx context.Context, input MatchInput) (*models.Match, error)
	Update(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	Delete(ctx context.Context, id int) error
}

// MatchInput покрывает и создание, и редактирование: админ-форма всегда
// отправляет матч целиком.
type MatchInput struct {
	ChampionshipID int       `json:"championship_id"`
	Round          int       `json:"round"`
	Date           time.Time `json:"date"`
	MatchTime      *string   `json:"match_time,omitempty"`
	HomeTeam       string    `json:"home_team"`
	AwayTeam       string    `json:"away_team"`
	HomeScore      *int      `json:"home_score"`
	AwayScore      *int      `json:"away_score"`
	IsFinished     bool      `json:"is_finished"`
	CupStage       *string   `json:"cup_stage,omitempty"`

	IsTechnicalDefeat bool    `json:"is_technical_defeat"`
	TechnicalWinner   *string `json:"technical_winner,omitempty"`
	PenaltyHome       *int    `json:"penalty_home,omitempty"`
	PenaltyAway       *int    `json:"penalty_away,omitempty"`
	PenaltyWinner     *string `json:"penalty_winner,omitempty"`
}

type matchService struct {
	matchRepo        repositories.MatchRepository
	teamRepo         repositories.TeamRepository
	championshipRepo repositories.ChampionshipRepository
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	championshipRepo repositories.ChampionshipRepository,
) MatchService {
	return &matchService{
		matchRepo:        matchRepo,
		teamRepo:         teamRepo,
		championshipRepo: championshipRepo,
	}
}

func (s *matchService) ListByChampionship(ctx context.Context, championshipID *int) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) ListByStage(ctx context.Context, championshipID int, stage string) ([]models.Match, error) {
	matches, err := s.matchRepo.ListByStage(ctx, championshipID, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for stage %q: %w", stage, err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) GetByID(ctx context.Context, id int) (*models.Match, error) {
	m, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return m, nil
}

// validate проверяет бизнес-правила матча до обращения к хранилищу:
// никакая частичная мутация не должна пройти при невалидной форме.
func (s *matchService) validate(ctx context.Context, input *MatchInput) error {
	input.HomeTeam = strings.TrimSpace(input.HomeTeam)
	input.AwayTeam = strings.TrimSpace(input.AwayTeam)

	if input.HomeTeam == "" || input.AwayTeam == "" {
		return ErrMatchTeamsRequired
	}
	if input.HomeTeam == input.AwayTeam {
		return ErrSameTeams
	}
	if input.Date.IsZero() {
		return ErrMatchDateRequired
	}

	if _, err := s.championshipRepo.GetByID(ctx, input.ChampionshipID); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return ErrNoChampionship
		}
		return fmt.Errorf("failed to check championship %d: %w", input.ChampionshipID, err)
	}

	// Связь матч→команда идёт по имени; существование проверяем на
	// записи, чтобы не плодить «осиротевшие» стороны в таблице.
	teams, err := s.teamRepo.ListByChampionship(ctx, &input.ChampionshipID)
	if err != nil {
		return fmt.Errorf("failed to list teams of championship %d: %w", input.ChampionshipID, err)
	}
	known := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		known[t.Name] = struct{}{}
	}
	if _, ok := known[input.HomeTeam]; !ok {
		return fmt.Errorf("%w: %s", ErrMatchUnknownTeam, input.HomeTeam)
	}
	if _, ok := known[input.AwayTeam]; !ok {
		return fmt.Errorf("%w: %s", ErrMatchUnknownTeam, input.AwayTeam)
	}

	if input.IsTechnicalDefeat {
		if input.TechnicalWinner == nil ||
			(*input.TechnicalWinner != input.HomeTeam && *input.TechnicalWinner != input.AwayTeam) {
			return ErrInvalidTechWinner
		}
		// Техническое поражение играется без счёта.
		input.HomeScore = nil
		input.AwayScore = nil
		input.PenaltyHome = nil
		input.PenaltyAway = nil
		input.PenaltyWinner = nil
	}

	hasPenalty := input.PenaltyHome != nil || input.PenaltyAway != nil || input.PenaltyWinner != nil
	if hasPenalty && (!input.IsFinished || input.IsTechnicalDefeat) {
		return ErrPenaltyNotApplicable
	}
	if input.PenaltyWinner != nil &&
		*input.PenaltyWinner != input.HomeTeam && *input.PenaltyWinner != input.AwayTeam {
		return ErrInvalidPenaltyWinner
	}

	return nil
}

func (s *matchService) fromInput(input MatchInput, id int) *models.Match {
	return &models.Match{
		ID:                id,
		ChampionshipID:    input.ChampionshipID,
		Round:             input.Round,
		Date:              input.Date,
		MatchTime:         input.MatchTime,
		HomeTeam:          input.HomeTeam,
		AwayTeam:          input.AwayTeam,
		HomeScore:         input.HomeScore,
		AwayScore:         input.AwayScore,
		IsFinished:        input.IsFinished,
		CupStage:          input.CupStage,
		IsTechnicalDefeat: input.IsTechnicalDefeat,
		TechnicalWinner:   input.TechnicalWinner,
		PenaltyHome:       input.PenaltyHome,
		PenaltyAway:       input.PenaltyAway,
		PenaltyWinner:     input.PenaltyWinner,
	}
}

func (s *matchService) Create(ctx context.Context, input MatchInput) (*models.Match, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	m := s.fromInput(input, 0)
	if err := s.matchRepo.Create(ctx, m); err != nil {
		if errors.Is(err, repositories.ErrMatchInvalidChampionship) {
			return nil, ErrNoChampionship
		}
		return nil, fmt.Errorf("%w: %w", ErrMatchCreateFailed, err)
	}
	return m, nil
}

func (s *matchService) Update(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	m := s.fromInput(input, id)
	if err := s.matchRepo.Update(ctx, m); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrMatchUpdateFailed, id, err)
	}
	return m, nil
}

func (s *matchService) Delete(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrMatchDeleteFailed, id, err)
	}
	return nil
}
